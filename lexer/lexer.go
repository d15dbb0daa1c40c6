// Package lexer turns filter-language source text into a flat stream
// of tokens, tracking (line, column) positions accurately so every
// downstream diagnostic can point at the offending character.
package lexer

import (
	"regexp"
	"strconv"

	"github.com/tsantos/sievelang/ferrors"
	"github.com/tsantos/sievelang/token"
)

// Lexer scans one source text into tokens. It is not safe for
// concurrent use; construct one per source text.
type Lexer struct {
	input []rune
	pos   int // index into input of the next unconsumed rune
	line  int
	col   int
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{input: []rune(src), line: 1, col: 1}
}

// Tokenize runs l to completion and returns every token up to and
// including a terminal EOF, or the first tokenization error.
func Tokenize(src string) ([]token.Token, error) {
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.input) }

func (l *Lexer) peekAt(off int) (rune, bool) {
	i := l.pos + off
	if i < 0 || i >= len(l.input) {
		return 0, false
	}
	return l.input[i], true
}

func (l *Lexer) peek() (rune, bool) { return l.peekAt(0) }

func (l *Lexer) pos_() token.Position { return token.Position{Line: l.line, Column: l.col} }

// advance consumes n runes starting at the current position, updating
// line/column bookkeeping (column resets to 1 on '\n').
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.eof() {
			return
		}
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) snippet(max int) string {
	end := l.pos + max
	if end > len(l.input) {
		end = len(l.input)
	}
	return string(l.input[l.pos:end])
}

var identStart = func(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
var identCont = func(r rune) bool {
	return identStart(r) || (r >= '0' && r <= '9') || r == '.'
}
var digit = func(r rune) bool { return r >= '0' && r <= '9' }

// next recognizes and returns exactly one token (or EOF), trying the
// rules numbered as in spec.md §4.B. Newlines, whitespace and comments
// (rules 3–5) are consumed before rules 1–2 are tried; their first
// characters never overlap, so the result is the same.
func (l *Lexer) next() (token.Token, error) {
	for {
		if l.eof() {
			return token.New(token.EOF, "", l.pos_()), nil
		}

		ch, _ := l.peek()

		// Rule 3: newline.
		if ch == '\n' {
			l.advance(1)
			continue
		}
		// Rule 4: horizontal whitespace.
		if ch == ' ' || ch == '\t' || ch == '\r' {
			l.advance(1)
			continue
		}
		// Rule 5: comment, '#' to end of line or end of input.
		if ch == '#' {
			for !l.eof() {
				if c, _ := l.peek(); c == '\n' {
					break
				}
				l.advance(1)
			}
			continue
		}

		// Rule 1: quoted literal — string or regex.
		if ch == '"' || ch == '\'' || ch == '/' {
			return l.lexQuoted(ch)
		}

		// Rule 2: single-character tokens.
		switch ch {
		case '[':
			t := token.New(token.OpenBracket, "[", l.pos_())
			l.advance(1)
			return t, nil
		case ']':
			t := token.New(token.CloseBracket, "]", l.pos_())
			l.advance(1)
			return t, nil
		case ',':
			t := token.New(token.Comma, ",", l.pos_())
			l.advance(1)
			return t, nil
		case '(':
			t := token.New(token.OpenParen, "(", l.pos_())
			l.advance(1)
			return t, nil
		case ')':
			t := token.New(token.CloseParen, ")", l.pos_())
			l.advance(1)
			return t, nil
		case ';':
			t := token.New(token.Semicolon, ";", l.pos_())
			l.advance(1)
			return t, nil
		}

		// Rule 6: "not in" as one token (word "not", whitespace, word "in").
		if tok, ok := l.tryNotIn(); ok {
			return tok, nil
		}

		// Rule 7: integer.
		if digit(ch) {
			return l.lexInt(), nil
		}

		// Rule 8: two-character operators.
		if tok, ok := l.tryTwoChar(); ok {
			return tok, nil
		}

		// Rule 9: word operators, boundary-checked.
		if tok, ok := l.tryWordOperator(); ok {
			return tok, nil
		}

		// Rule 10: '!' alone.
		if ch == '!' {
			t := token.New(token.Not, "!", l.pos_())
			l.advance(1)
			return t, nil
		}

		// Rule 11: identifier / dotted symbol.
		if identStart(ch) {
			return l.lexSymbol(), nil
		}

		// Rule 12: unknown.
		pos := l.pos_()
		return token.Token{}, ferrors.NewUserSnippet(ferrors.UnknownToken, pos, l.snippet(16))
	}
}

func (l *Lexer) tryNotIn() (token.Token, bool) {
	const word = "not"
	if !l.matchesWord(0, word) {
		return token.Token{}, false
	}
	i := len(word)
	sawSpace := false
	for {
		r, ok := l.peekAt(i)
		if !ok || (r != ' ' && r != '\t') {
			break
		}
		sawSpace = true
		i++
	}
	if !sawSpace {
		return token.Token{}, false
	}
	if !l.matchesWordAt(i, "in") {
		return token.Token{}, false
	}
	pos := l.pos_()
	text := string(l.input[l.pos : l.pos+i+2])
	l.advance(i + 2)
	return token.New(token.NotIn, text, pos), true
}

// matchesWord reports whether the word occurs at offset off and is not
// itself followed by a symbol-continuation character (so "notin"
// doesn't match "not").
func (l *Lexer) matchesWord(off int, word string) bool {
	return l.matchesWordAt(off, word)
}

func (l *Lexer) matchesWordAt(off int, word string) bool {
	wr := []rune(word)
	for i, r := range wr {
		c, ok := l.peekAt(off + i)
		if !ok || c != r {
			return false
		}
	}
	next, ok := l.peekAt(off + len(wr))
	if ok && identCont(next) {
		return false
	}
	return true
}

func (l *Lexer) lexInt() token.Token {
	pos := l.pos_()
	start := l.pos
	n := 0
	for {
		r, ok := l.peek()
		if !ok || !digit(r) {
			break
		}
		l.advance(1)
		n++
	}
	text := string(l.input[start : start+n])
	v, _ := strconv.ParseInt(text, 10, 64)
	return token.NewInt(v, text, pos)
}

type twoCharOp struct {
	text string
	kind token.Kind
}

var twoCharOps = []twoCharOp{
	{"==", token.Equal},
	{"!=", token.NotEqual},
	{"&&", token.And},
	{"||", token.Or},
	{"=~", token.Match},
}

func (l *Lexer) tryTwoChar() (token.Token, bool) {
	a, ok1 := l.peekAt(0)
	b, ok2 := l.peekAt(1)
	if !ok1 || !ok2 {
		return token.Token{}, false
	}
	for _, op := range twoCharOps {
		if rune(op.text[0]) == a && rune(op.text[1]) == b {
			pos := l.pos_()
			l.advance(2)
			return token.New(op.kind, op.text, pos), true
		}
	}
	return token.Token{}, false
}

func (l *Lexer) tryWordOperator() (token.Token, bool) {
	for _, w := range []string{"and", "or", "not", "in"} {
		if l.matchesWordAt(0, w) {
			kind, _ := token.LookupWord(w)
			pos := l.pos_()
			l.advance(len(w))
			return token.New(kind, w, pos), true
		}
	}
	return token.Token{}, false
}

func (l *Lexer) lexSymbol() token.Token {
	pos := l.pos_()
	start := l.pos
	n := 0
	for {
		r, ok := l.peekAt(n)
		if !ok || !identCont(r) {
			break
		}
		n++
	}
	text := string(l.input[start : start+n])
	l.advance(n)
	return token.New(token.Symbol, text, pos)
}

// lexQuoted scans a "...", '...', or /.../ literal. The closing
// delimiter may be escaped with a preceding backslash; no other
// escapes are interpreted, and newlines are permitted inside the
// literal (spec.md §9 Open Question 3).
func (l *Lexer) lexQuoted(delim rune) (token.Token, error) {
	pos := l.pos_()
	l.advance(1) // consume opening delimiter

	var raw []rune
	for {
		r, ok := l.peek()
		if !ok {
			if delim == '/' {
				return token.Token{}, ferrors.NewUser(ferrors.UnclosedRegex, pos)
			}
			return token.Token{}, ferrors.NewUser(ferrors.UnclosedQuote, pos)
		}
		if r == '\\' {
			next, hasNext := l.peekAt(1)
			if hasNext && next == delim {
				raw = append(raw, delim)
				l.advance(2)
				continue
			}
			raw = append(raw, r)
			l.advance(1)
			continue
		}
		if r == delim {
			l.advance(1)
			break
		}
		raw = append(raw, r)
		l.advance(1)
	}

	text := string(raw)
	if delim == '/' {
		if _, err := regexp.Compile(text); err != nil {
			return token.Token{}, ferrors.NewRegexError(pos, text, err)
		}
		return token.New(token.Regex, text, pos), nil
	}
	return token.New(token.String, text, pos), nil
}

