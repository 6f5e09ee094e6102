package re2post

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	var data = []struct {
		regexString, expected string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "ab."},
		{"abc", "ab.c."},
		{"a|b", "ab|"},
		{"a|b|c", "abc||"},
		{"ab|cd", "ab.cd.|"},
		{"a*b", "a*b."},
		{"a+b?", "a+b?."},
		{"a**", "a**"},
		{"(a|b)c", "ab|c."},
		{"c(a|b)", "cab|."},
		{"(a)(b)(c)", "ab.c."},
		{"a(b|cd|ef)g", "abcd.ef.||.g."},
		{"gr(a|e)y", "gr.ae|.y."},
		{"he(ya)*o", "he.ya.*.o."},
		{"((gray|gruy)|grey)", "gr.a.y.gr.u.y.|gr.e.y.|"},
		{"(a|b)*abb", "ab|*a.b.b."},
		{"x(y(z))", "xyz.."},
		{"1-2 3", "1-.2. .3."},
		{"a\xffb", "a\xffb."},
		{"(\xfe|\xff)*", "\xfe\xff|*"},
		{"é\xc3", "é\xc3."},
	}

	for _, test := range data {
		testName := fmt.Sprintf("%s->%s", test.regexString, test.expected)
		t.Run(testName, func(t *testing.T) {
			postfix, err := Convert(test.regexString)
			require.NoError(t, err)
			require.Equal(t, test.expected, postfix)
		})
	}
}

func TestConvertRejects(t *testing.T) {
	var data = []struct {
		regexString string
		code        ErrorCode
		pos         int
	}{
		{"a|", EmptyAlternative, 2},
		{"|a", EmptyAlternative, 0},
		{"a||b", EmptyAlternative, 2},
		{"(|a)", EmptyAlternative, 1},
		{"()", EmptyAlternative, 1},
		{"(a|)", EmptyAlternative, 3},
		{"(a", UnmatchedOpenParen, 2},
		{"((a)", UnmatchedOpenParen, 4},
		{"a)", UnmatchedCloseParen, 1},
		{")", UnmatchedCloseParen, 0},
		{"(a))", UnmatchedCloseParen, 3},
		{"*a", DanglingQuantifier, 0},
		{"a|+", DanglingQuantifier, 2},
		{"(?a)", DanglingQuantifier, 1},
		{"a)(", UnmatchedCloseParen, 1},
	}

	for _, test := range data {
		testName := fmt.Sprintf("%s-%s", test.regexString, test.code)
		t.Run(testName, func(t *testing.T) {
			postfix, err := Convert(test.regexString)
			require.Error(t, err)
			require.Empty(t, postfix)

			var regexErr *RegexError
			require.True(t, errors.As(err, &regexErr))
			require.Equal(t, test.code, regexErr.Code)
			require.Equal(t, test.pos, regexErr.Pos)
		})
	}
}

func TestConvertLengthBoundary(t *testing.T) {
	_, err := Convert(strings.Repeat("a", DefaultMaxLength))
	require.True(t, errors.Is(err, ErrInputTooLong))

	postfix, err := Convert(strings.Repeat("a", DefaultMaxLength-1))
	require.NoError(t, err)
	require.Equal(t, 2*(DefaultMaxLength-1)-1, len(postfix))

	// Rejected before scanning: the syntax error is never reported.
	_, err = Convert(strings.Repeat(")", DefaultMaxLength+10))
	require.True(t, errors.Is(err, ErrInputTooLong))
}

func TestConvertLengthCountsCharacters(t *testing.T) {
	c, err := NewConverter(Options{MaxLength: 3})
	require.NoError(t, err)

	postfix, err := c.Convert("éé")
	require.NoError(t, err)
	require.Equal(t, "éé.", postfix)

	_, err = c.Convert("ééé")
	require.True(t, errors.Is(err, ErrInputTooLong))
}

func nested(depth int) string {
	return strings.Repeat("(", depth) + "a" + strings.Repeat(")", depth)
}

func TestConvertNestingBoundary(t *testing.T) {
	postfix, err := Convert(nested(DefaultMaxNestingDepth))
	require.NoError(t, err)
	require.Equal(t, "a", postfix)

	_, err = Convert(nested(DefaultMaxNestingDepth + 1))
	require.True(t, errors.Is(err, ErrNestingTooDeep))

	var regexErr *RegexError
	require.True(t, errors.As(err, &regexErr))
	require.Equal(t, DefaultMaxNestingDepth, regexErr.Pos)

	c, err := NewConverter(Options{MaxNestingDepth: 2})
	require.NoError(t, err)
	postfix, err = c.Convert("a(b(c))(d)")
	require.NoError(t, err)
	require.Equal(t, "abc..d.", postfix)

	_, err = c.Convert(nested(3))
	require.True(t, errors.Is(err, ErrNestingTooDeep))
}

func TestConvertInvalidUTF8LengthIsPerByte(t *testing.T) {
	c, err := NewConverter(Options{MaxLength: 3})
	require.NoError(t, err)

	postfix, err := c.Convert("\xff\xfe")
	require.NoError(t, err)
	require.Equal(t, "\xff\xfe.", postfix)

	_, err = c.Convert("\xff\xfe\xfd")
	require.True(t, errors.Is(err, ErrInputTooLong))
}

func TestConvertMultibyteOperator(t *testing.T) {
	c, err := NewConverter(Options{ConcatOperator: '·'})
	require.NoError(t, err)

	postfix, err := c.Convert("ab|c")
	require.NoError(t, err)
	require.Equal(t, "ab·c|", postfix)

	root, err := ParsePostfix(postfix, c.Options().ConcatOperator)
	require.NoError(t, err)
	require.Equal(t, "((ab)|c)", root.Infix())
}

func TestConvertCustomOperator(t *testing.T) {
	c, err := NewConverter(Options{ConcatOperator: '&'})
	require.NoError(t, err)

	postfix, err := c.Convert("a.b|c")
	require.NoError(t, err)
	require.Equal(t, "a.&b&c|", postfix)
}

func TestNewConverterValidates(t *testing.T) {
	var data = []Options{
		{MaxLength: -1},
		{MaxNestingDepth: -5},
		{ConcatOperator: '|'},
		{ConcatOperator: '*'},
		{ConcatOperator: '('},
		{ConcatOperator: 0xD800},
		{ConcatOperator: utf8.MaxRune + 1},
	}

	for _, opts := range data {
		t.Run(fmt.Sprintf("%+v", opts), func(t *testing.T) {
			_, err := NewConverter(opts)
			require.True(t, errors.Is(err, ErrInvalidOptions))
		})
	}

	c, err := NewConverter(Options{})
	require.NoError(t, err)
	require.Equal(t, DefaultOptions(), c.Options())
}

// Every atom and every operator shows up exactly once in the output.
func TestConvertTokenCount(t *testing.T) {
	var data = []string{
		"a", "ab", "abc|d*", "(a|b|c)+x?y", "((a)(b))*|c", "x(y|z)*(w|v)?u+",
	}

	for _, regexString := range data {
		t.Run(regexString, func(t *testing.T) {
			postfix, err := Convert(regexString)
			require.NoError(t, err)

			in := CountTokens(strings.NewReplacer("(", "", ")", "").Replace(regexString), DefaultConcatOperator)
			out := CountTokens(postfix, DefaultConcatOperator)
			require.Equal(t, in.Atoms, out.Atoms)
			require.Equal(t, in.Alternations, out.Alternations)
			require.Equal(t, in.Quantifiers, out.Quantifiers)
			require.Equal(t, out.Atoms-1-out.Alternations, out.Concatenations)
			require.Equal(t, len(postfix), out.Total())
		})
	}
}

func TestConvertConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				postfix, err := Convert("a(b|cd|ef)g")
				assert.NoError(t, err)
				assert.Equal(t, "abcd.ef.||.g.", postfix)
			}
		}()
	}
	wg.Wait()
}
