package db

import "strings"

// translatePlaceholders rewrites $N markers into the ? form the embedded
// engine understands. Quoted segments are copied verbatim, so a literal "$1"
// inside string data is never touched. Substitution happens in textual
// order and never reorders markers; the output contains no $N markers, so
// applying the rewrite twice is a no-op.
func translatePlaceholders(query string) string {
	var b strings.Builder
	b.Grow(len(query))

	for i := 0; i < len(query); {
		c := query[i]
		switch c {
		case '\'', '"':
			quote := c
			b.WriteByte(c)
			i++
			for i < len(query) {
				b.WriteByte(query[i])
				if query[i] == quote {
					// doubled quote is an escaped quote, stay inside
					if i+1 < len(query) && query[i+1] == quote {
						b.WriteByte(query[i+1])
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
		case '$':
			j := i + 1
			for j < len(query) && query[j] >= '0' && query[j] <= '9' {
				j++
			}
			if j > i+1 {
				b.WriteByte('?')
				i = j
			} else {
				b.WriteByte(c)
				i++
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
