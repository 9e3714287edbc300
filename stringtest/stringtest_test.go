package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/jsontree/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		lines []string
		want  string
	}{
		"empty": {
			lines: nil,
			want:  "",
		},
		"single line": {
			lines: []string{"only"},
			want:  "only",
		},
		"multiple lines": {
			lines: []string{"a", "b", "c"},
			want:  "a\nb\nc",
		},
		"blank lines kept": {
			lines: []string{"a", "", "c"},
			want:  "a\n\nc",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.JoinLF(tc.lines...))
		})
	}
}

func TestTabs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", stringtest.Tabs(0))
	assert.Equal(t, "\t\t\t", stringtest.Tabs(3))
}
