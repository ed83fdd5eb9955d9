package strview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrefixSuffixContains(t *testing.T) {
	sv := New("Hello, World!")

	assert.True(t, sv.StartsWith("Hello"))
	assert.True(t, sv.StartsWithByte('H'))
	assert.False(t, sv.StartsWith("abcd"))
	assert.True(t, sv.StartsWith(""))

	assert.True(t, sv.EndsWith("World!"))
	assert.True(t, sv.EndsWithByte('!'))
	assert.False(t, sv.EndsWith("abcd"))
	assert.True(t, sv.EndsWith(""))

	assert.True(t, sv.Contains("World"))
	assert.True(t, sv.ContainsByte('W'))
	assert.False(t, sv.Contains("abcd"))
}

func TestFindBytes(t *testing.T) {
	sv := New("Hello, World!")

	assert.Equal(t, 7, sv.FindByte('W'))
	assert.Equal(t, 2, sv.FindByte('l'))
	assert.Equal(t, Npos, sv.FindByte('z'))

	assert.Equal(t, 10, sv.RFindByte('l'))
	assert.Equal(t, 8, sv.RFindByte('o'))
	assert.Equal(t, Npos, sv.RFindByte('z'))
}

func TestFindEmptyNeedle(t *testing.T) {
	sv := New("abc")
	assert.Equal(t, 0, sv.Find(""))
	assert.Equal(t, 3, sv.RFind(""))

	empty := New("")
	assert.Equal(t, 0, empty.Find(""))
	assert.Equal(t, 0, empty.RFind(""))
	assert.Equal(t, Npos, empty.Find("a"))
	assert.Equal(t, Npos, empty.RFind("a"))
}

// searchCasesYAML mirrors the search battery of the compatibility tests.
const searchCasesYAML = `
- {text: "Hello, World!", op: find, arg: "World", want: 7}
- {text: "Hello, World!", op: find, arg: "W", want: 7}
- {text: "Hello, World!", op: find, arg: "Hello, World!!", want: -1}
- {text: "Hello, World!", op: rfind, arg: "l", want: 10}
- {text: "Hello, World!", op: rfind, arg: "o, W", want: 4}
- {text: "Hello, World!", op: rfind, arg: "abcd", want: -1}
- {text: "Hello, World!", op: first_of, arg: "l", want: 2}
- {text: "Hello, World!", op: first_of, arg: "abcd", want: 11}
- {text: "Hello, World!", op: first_of, arg: "fgu", want: -1}
- {text: "Hello, World!", op: last_of, arg: "l", want: 10}
- {text: "Hello, World!", op: last_of, arg: "abcd", want: 11}
- {text: "Hello, World!", op: last_of, arg: "fgu", want: -1}
- {text: "Hello, World!", op: first_not_of, arg: "H", want: 1}
- {text: "Hello, World!", op: first_not_of, arg: "feHl", want: 4}
- {text: "Hello, World!", op: first_not_of, arg: "Helo, Wrd!", want: -1}
- {text: "Hello, World!", op: last_not_of, arg: "!", want: 11}
- {text: "Hello, World!", op: last_not_of, arg: "qlkldr!", want: 8}
- {text: "Hello, World!", op: last_not_of, arg: "Helo, Wrd!", want: -1}
- {text: "", op: first_of, arg: "abc", want: -1}
- {text: "", op: last_of, arg: "abc", want: -1}
- {text: "a", op: last_not_of, arg: "b", want: 0}
- {text: "a", op: last_not_of, arg: "a", want: -1}
- {text: "aaa", op: last_of, arg: "a", want: 2}
`

type searchCase struct {
	Text string `yaml:"text"`
	Op   string `yaml:"op"`
	Arg  string `yaml:"arg"`
	Want int    `yaml:"want"`
}

func TestSearchTable(t *testing.T) {
	var cases []searchCase
	require.NoError(t, yaml.Unmarshal([]byte(searchCasesYAML), &cases))
	require.NotEmpty(t, cases)

	for _, c := range cases {
		sv := New(c.Text)
		var got int
		switch c.Op {
		case "find":
			got = sv.Find(c.Arg)
		case "rfind":
			got = sv.RFind(c.Arg)
		case "first_of":
			got = sv.FindFirstOf(c.Arg)
		case "last_of":
			got = sv.FindLastOf(c.Arg)
		case "first_not_of":
			got = sv.FindFirstNotOf(c.Arg)
		case "last_not_of":
			got = sv.FindLastNotOf(c.Arg)
		default:
			t.Fatalf("unknown op %q", c.Op)
		}
		assert.Equalf(t, c.Want, got, "%s(%q) on %q", c.Op, c.Arg, c.Text)
	}
}

// The strings package does plain byte-wise search for these operations,
// so it serves as an oracle for arbitrary inputs.
func FuzzSearchOracle(f *testing.F) {
	f.Add("Hello, World!", "World")
	f.Add("", "")
	f.Add("aaa", "aa")
	f.Add("abc", "d")
	f.Fuzz(fuzzSearchOracle)
}

func fuzzSearchOracle(t *testing.T, text, sub string) {
	sv := New(text)

	require.Equal(t, strings.Index(text, sub), sv.Find(sub))
	require.Equal(t, strings.LastIndex(text, sub), sv.RFind(sub))
	require.Equal(t, strings.Contains(text, sub), sv.Contains(sub))
	require.Equal(t, strings.HasPrefix(text, sub), sv.StartsWith(sub))
	require.Equal(t, strings.HasSuffix(text, sub), sv.EndsWith(sub))
	require.Equal(t, strings.Compare(text, sub), sv.Compare(New(sub)))

	if len(sub) > 0 {
		c := sub[0]
		require.Equal(t, strings.IndexByte(text, c), sv.FindByte(c))
		require.Equal(t, strings.LastIndexByte(text, c), sv.RFindByte(c))
	}
}

func BenchmarkFind(b *testing.B) {
	sv := New(strings.Repeat("Hello, World! ", 64) + "needle")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = sv.Find("needle")
	}
}

func BenchmarkFindLastOf(b *testing.B) {
	sv := New("z" + strings.Repeat("Hello, World! ", 64))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = sv.FindLastOf("z")
	}
}
