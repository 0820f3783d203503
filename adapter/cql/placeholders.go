package cql

// CountPlaceholders returns the number of positional ? placeholders in a
// CQL statement.
//
// The gocql drivers prepare statements lazily and expose no bind-metadata
// API, so both adapters derive the count from the template text. The scan
// is literal- and comment-aware: question marks inside single-quoted string
// literals, double-quoted identifiers, line comments (-- and //) and block
// comments (/* */) are not counted. Named markers (:name) are not CQL and
// are not recognized.
func CountPlaceholders(stmt string) int {
	count := 0
	for i := 0; i < len(stmt); i++ {
		switch stmt[i] {
		case '?':
			count++
		case '\'':
			i = skipQuoted(stmt, i, '\'')
		case '"':
			i = skipQuoted(stmt, i, '"')
		case '-':
			if i+1 < len(stmt) && stmt[i+1] == '-' {
				i = skipLine(stmt, i)
			}
		case '/':
			if i+1 < len(stmt) {
				switch stmt[i+1] {
				case '/':
					i = skipLine(stmt, i)
				case '*':
					i = skipBlockComment(stmt, i)
				}
			}
		}
	}

	return count
}

// skipQuoted advances past a quoted region starting at stmt[start].
// A doubled quote character is the CQL escape for a literal quote.
func skipQuoted(stmt string, start int, quote byte) int {
	for i := start + 1; i < len(stmt); i++ {
		if stmt[i] != quote {
			continue
		}
		if i+1 < len(stmt) && stmt[i+1] == quote {
			i++ // escaped quote
			continue
		}

		return i
	}

	return len(stmt)
}

// skipLine advances to the end of the current line.
func skipLine(stmt string, start int) int {
	for i := start; i < len(stmt); i++ {
		if stmt[i] == '\n' {
			return i
		}
	}

	return len(stmt)
}

// skipBlockComment advances past a /* */ comment starting at stmt[start].
func skipBlockComment(stmt string, start int) int {
	for i := start + 2; i+1 < len(stmt); i++ {
		if stmt[i] == '*' && stmt[i+1] == '/' {
			return i + 1
		}
	}

	return len(stmt)
}
