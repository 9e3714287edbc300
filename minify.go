package jsontree

// Minify compacts JSON-with-comments in place and returns the shortened
// prefix of b. It removes spaces, tabs, carriage returns, and newlines
// outside of strings, // comments through end of line, and /* */ comments.
// Bytes inside double-quoted strings pass through untouched, with \" kept
// from terminating the string early. This is the only part of the library
// that tolerates comments; [Parse] rejects them.
func Minify(b []byte) []byte {
	var w int

	r := 0
	for r < len(b) {
		switch c := b[r]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			r++

		case c == '/' && r+1 < len(b) && b[r+1] == '/':
			for r < len(b) && b[r] != '\n' {
				r++
			}

		case c == '/' && r+1 < len(b) && b[r+1] == '*':
			for r < len(b) && !(b[r] == '*' && r+1 < len(b) && b[r+1] == '/') {
				r++
			}

			if r += 2; r > len(b) {
				r = len(b)
			}

		case c == '"':
			b[w] = c
			w++
			r++

			for r < len(b) && b[r] != '"' {
				if b[r] == '\\' {
					b[w] = b[r]
					w++
					r++

					if r >= len(b) {
						break
					}
				}

				b[w] = b[r]
				w++
				r++
			}

			if r < len(b) {
				b[w] = b[r]
				w++
				r++
			}

		default:
			b[w] = c
			w++
			r++
		}
	}

	return b[:w]
}
