package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatePlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single marker",
			in:   "SELECT id FROM users WHERE email = $1",
			want: "SELECT id FROM users WHERE email = ?",
		},
		{
			name: "order preserved",
			in:   "INSERT INTO users (username, email) VALUES ($1, $2)",
			want: "INSERT INTO users (username, email) VALUES (?, ?)",
		},
		{
			name: "multi digit marker",
			in:   "UPDATE t SET a=$1, b=$2, c=$10, d=$11",
			want: "UPDATE t SET a=?, b=?, c=?, d=?",
		},
		{
			name: "marker inside single quoted literal untouched",
			in:   "SELECT * FROM t WHERE a = '$1' AND b = $2",
			want: "SELECT * FROM t WHERE a = '$1' AND b = ?",
		},
		{
			name: "marker inside double quoted identifier untouched",
			in:   `SELECT "$1" FROM t WHERE b = $1`,
			want: `SELECT "$1" FROM t WHERE b = ?`,
		},
		{
			name: "escaped quote stays inside literal",
			in:   "SELECT * FROM t WHERE a = 'it''s $1' AND b = $1",
			want: "SELECT * FROM t WHERE a = 'it''s $1' AND b = ?",
		},
		{
			name: "bare dollar untouched",
			in:   "SELECT price, '$' FROM t WHERE id = $1",
			want: "SELECT price, '$' FROM t WHERE id = ?",
		},
		{
			name: "no markers",
			in:   "SELECT 1",
			want: "SELECT 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := translatePlaceholders(tt.in)
			assert.Equal(t, tt.want, got)

			// rewriting again must change nothing
			assert.Equal(t, got, translatePlaceholders(got))
		})
	}
}
