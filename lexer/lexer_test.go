package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsantos/sievelang/ferrors"
	"github.com/tsantos/sievelang/token"
)

func kinds(t *testing.T, src string) []token.Kind {
	t.Helper()
	toks, err := Tokenize(src)
	require.NoError(t, err)
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeOperators(t *testing.T) {
	cases := []struct {
		src  string
		want []token.Kind
	}{
		{`a == 1`, []token.Kind{token.Symbol, token.Equal, token.Int, token.EOF}},
		{`a != 1`, []token.Kind{token.Symbol, token.NotEqual, token.Int, token.EOF}},
		{`a =~ /x/`, []token.Kind{token.Symbol, token.Match, token.Regex, token.EOF}},
		{`a && b`, []token.Kind{token.Symbol, token.And, token.Symbol, token.EOF}},
		{`a and b`, []token.Kind{token.Symbol, token.And, token.Symbol, token.EOF}},
		{`a || b`, []token.Kind{token.Symbol, token.Or, token.Symbol, token.EOF}},
		{`a or b`, []token.Kind{token.Symbol, token.Or, token.Symbol, token.EOF}},
		{`not a`, []token.Kind{token.Not, token.Symbol, token.EOF}},
		{`!a`, []token.Kind{token.Not, token.Symbol, token.EOF}},
		{`a in [1,2]`, []token.Kind{token.Symbol, token.In, token.OpenBracket, token.Int, token.Comma, token.Int, token.CloseBracket, token.EOF}},
		{`a not in [1]`, []token.Kind{token.Symbol, token.NotIn, token.OpenBracket, token.Int, token.CloseBracket, token.EOF}},
	}
	for _, c := range cases {
		if got := kinds(t, c.src); !equalKinds(got, c.want) {
			t.Errorf("Tokenize(%q) kinds = %v, want %v", c.src, got, c.want)
		}
	}
}

func equalKinds(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeWordBoundaries(t *testing.T) {
	// "andy" must lex as one Symbol, not "and" + "y".
	toks, err := Tokenize("andy")
	require.NoError(t, err)
	require.Len(t, toks, 2) // Symbol, EOF
	require.Equal(t, token.Symbol, toks[0].Kind)
	require.Equal(t, "andy", toks[0].Text)
}

func TestTokenizeNotInRequiresWhitespace(t *testing.T) {
	// "notin" is not the two-word "not in" operator; it lexes as a symbol.
	toks, err := Tokenize("notin")
	require.NoError(t, err)
	require.Equal(t, token.Symbol, toks[0].Kind)
}

func TestTokenizeDottedSymbol(t *testing.T) {
	toks, err := Tokenize("location.country")
	require.NoError(t, err)
	require.Equal(t, token.Symbol, toks[0].Kind)
	require.Equal(t, "location.country", toks[0].Text)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\"b"`)
	require.NoError(t, err)
	require.Equal(t, token.String, toks[0].Kind)
	require.Equal(t, `a"b`, toks[0].Text)
}

func TestTokenizeCommentAndWhitespace(t *testing.T) {
	toks, err := Tokenize("  # comment\n a == 1")
	require.NoError(t, err)
	require.Equal(t, token.Symbol, toks[0].Kind)
}

func TestTokenizeUnclosedQuote(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	var uerr *ferrors.UserError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, ferrors.UnclosedQuote, uerr.Kind)
}

func TestTokenizeUnclosedRegex(t *testing.T) {
	_, err := Tokenize(`/unterminated`)
	var uerr *ferrors.UserError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, ferrors.UnclosedRegex, uerr.Kind)
}

func TestTokenizeUncompileableRegex(t *testing.T) {
	_, err := Tokenize(`/(unclosed/`)
	var uerr *ferrors.UserError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, ferrors.UncompileableRegex, uerr.Kind)
}

func TestTokenizeUnknownToken(t *testing.T) {
	_, err := Tokenize("@")
	var uerr *ferrors.UserError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, ferrors.UnknownToken, uerr.Kind)
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize("a\n  b")
	require.NoError(t, err)
	require.Equal(t, token.Position{Line: 1, Column: 1}, toks[0].Pos)
	require.Equal(t, token.Position{Line: 2, Column: 3}, toks[1].Pos)
}

func TestTokenizeIntValue(t *testing.T) {
	toks, err := Tokenize("42")
	require.NoError(t, err)
	require.Equal(t, int64(42), toks[0].IntValue)
}
