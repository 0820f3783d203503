package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsistencyConstants(t *testing.T) {
	assert.Equal(t, Consistency(0x01), One)
	assert.Equal(t, Consistency(0x04), Quorum)
	assert.Equal(t, Consistency(0x06), LocalQuorum)
}

func TestConsistencyString(t *testing.T) {
	assert.Equal(t, "QUORUM", Quorum.String())
	assert.Equal(t, "LOCAL_QUORUM", LocalQuorum.String())
	assert.Equal(t, "UNKNOWN_0x00FF", Consistency(0xFF).String())
}

func TestParseConsistency(t *testing.T) {
	tests := []struct {
		in   string
		want Consistency
	}{
		{"QUORUM", Quorum},
		{"quorum", Quorum},
		{"LOCAL_QUORUM", LocalQuorum},
		{"local_quorum", LocalQuorum},
		{"LocalQuorum", LocalQuorum},
		{"one", One},
		{"EACH_QUORUM", EachQuorum},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConsistency(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConsistencyUnknown(t *testing.T) {
	_, err := ParseConsistency("eventual")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eventual")
}

func TestStatementKindConstants(t *testing.T) {
	assert.Equal(t, StatementKind("query"), StatementQuery)
	assert.Equal(t, StatementKind("mutation"), StatementMutation)
}
