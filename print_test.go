package jsontree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jsontree"
	"go.jacobcolvin.com/jsontree/stringtest"
)

func TestPrintNumbers(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input float64
		want  string
	}{
		"zero":             {input: 0, want: "0"},
		"small integer":    {input: 24, want: "24"},
		"negative integer": {input: -1, want: "-1"},
		"int32 max":        {input: 2147483647, want: "2147483647"},
		"int32 min":        {input: -2147483648, want: "-2147483648"},
		"fixed form":       {input: 1.5, want: "1.500000"},
		"fixed form small": {input: 1e-5, want: "0.000010"},
		"fixed form long":  {input: 123.456, want: "123.456000"},
		"scientific small": {input: 1e-7, want: "1.000000e-07"},
		"scientific large": {input: 1e60, want: "1.000000e+60"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := jsontree.Number(tc.input).Print(false)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestPrintStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"plain": {
			input: "hello",
			want:  `"hello"`,
		},
		"empty": {
			input: "",
			want:  `""`,
		},
		"quote and backslash": {
			input: `a"b\c`,
			want:  `"a\"b\\c"`,
		},
		"control aliases": {
			input: "\b\f\n\r\t",
			want:  `"\b\f\n\r\t"`,
		},
		"other control bytes": {
			input: "\x01\x1f",
			want:  `"\u0001\u001f"`,
		},
		"delete passes through": {
			input: "\x7f",
			want:  "\"\x7f\"",
		},
		"multibyte passes through": {
			input: "café",
			want:  `"café"`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := jsontree.String(tc.input).Print(false)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestEscapeClosure(t *testing.T) {
	t.Parallel()

	// Every byte below 0x20 must leave the serializer escaped; nothing
	// else is escaped except the quote and the backslash.
	var payload []byte
	for c := range byte(0x20) {
		payload = append(payload, c)
	}

	out := jsontree.String(string(payload)).Print(false)

	for i, c := range out {
		assert.GreaterOrEqual(t, c, byte(0x20), "raw control byte at %d", i)
	}

	plain := jsontree.String("plain text, no escapes!").Print(false)
	assert.NotContains(t, string(plain), `\`)
}

func TestPrintPrettyArrays(t *testing.T) {
	t.Parallel()

	// Pretty arrays stay on one line, with ", " separators.
	v, err := jsontree.Parse([]byte(`[1,true,null,"x"]`))
	require.NoError(t, err)

	assert.Equal(t, `[1, true, null, "x"]`, string(v.Print(true)))
	assert.Equal(t, "[]", string(jsontree.Array().Print(true)))
}

func TestPrintPrettyObjects(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"flat": {
			input: `{"a":1,"b":[true,null]}`,
			want: stringtest.JoinLF(
				"{",
				"\t\"a\":\t1,",
				"\t\"b\":\t[true, null]",
				"}",
			),
		},
		"nested": {
			input: `{"o":{"x":1}}`,
			want: stringtest.JoinLF(
				"{",
				"\t\"o\":\t{",
				"\t\t\"x\":\t1",
				"\t}",
				"}",
			),
		},
		"empty at root": {
			input: "{}",
			want: stringtest.JoinLF(
				"{",
				"}",
			),
		},
		// The closing brace of a nested empty object is indented one level
		// shallower than a non-empty object's closing brace would be.
		"empty nested": {
			input: `{"e":{}}`,
			want: stringtest.JoinLF(
				"{",
				"\t\"e\":\t{",
				"}",
				"}",
			),
		},
		"deep indentation": {
			input: `{"a":{"b":{"c":1}}}`,
			want: stringtest.JoinLF(
				"{",
				"\t\"a\":\t{",
				stringtest.Tabs(2)+"\"b\":\t{",
				stringtest.Tabs(3)+"\"c\":\t1",
				stringtest.Tabs(2)+"}",
				"\t}",
				"}",
			),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := jsontree.Parse([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(v.Print(true)))
		})
	}
}

func TestPrintModesProduceIdenticalBytes(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"null",
		"0",
		"123.456",
		`"some \"escaped\" text\nwith lines"`,
		"[]",
		"{}",
		`[1,[2,[3,[4]]]]`,
		`{"a":{"b":{"c":[1,2,3]}},"d":null,"e":{}}`,
	}

	for _, input := range inputs {
		v, err := jsontree.Parse([]byte(input))
		require.NoError(t, err)

		for _, pretty := range []bool{false, true} {
			perNode := v.Print(pretty)

			for _, prebuffer := range []int{0, 5, 4096} {
				buffered := v.PrintBuffered(prebuffer, pretty)
				assert.Equal(t, string(perNode), string(buffered),
					"input %q pretty=%v prebuffer=%d", input, pretty, prebuffer)
			}
		}
	}
}

func TestPrintNil(t *testing.T) {
	t.Parallel()

	var v *jsontree.Value

	assert.Nil(t, v.Print(true))
	assert.Nil(t, v.PrintBuffered(16, false))
}

func TestValueStringRendersCompact(t *testing.T) {
	t.Parallel()

	obj := jsontree.Object()
	obj.AddNumber("n", 1)
	obj.AddString("s", "x")

	assert.Equal(t, `{"n":1,"s":"x"}`, obj.String())
	assert.Equal(t, "payload", jsontree.String("payload").String())
}
