package lambda

import (
	"fmt"
	"regexp"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokDot
	tokLet
	tokLambda
	tokNumber
	tokString
	tokVar
)

// identPattern is the identifier alphabet: letters, digits, underscore and a
// fixed symbol set. The first character must not be a digit.
const identPattern = `[-+!#$%^&*?,/=\[\]a-zA-Z_][-+!#$%^&*?,/=\[\]a-zA-Z_0-9]*`

// tokenPatterns are tried in order and the first match wins. Order matters
// where one pattern is a prefix of another: numbers are tried before plain
// identifiers so that "-12" lexes as a number rather than a name, and '.'
// is tried before numbers so that "5." ends a statement.
var tokenPatterns = []struct {
	kind tokenKind
	re   *regexp.Regexp
}{
	{tokLParen, regexp.MustCompile(`^\(`)},
	{tokRParen, regexp.MustCompile(`^\)`)},
	{tokDot, regexp.MustCompile(`^\.`)},
	{tokLet, regexp.MustCompile(`^:` + identPattern)},
	{tokLambda, regexp.MustCompile(`^@` + identPattern)},
	{tokNumber, regexp.MustCompile(`^(-|\+)?[0-9]+(\.[0-9]+)?(E(-|\+)?[0-9]+)?`)},
	// A doubled double-quote inside a string is the escape for a literal
	// quote; the parser performs the unescaping.
	{tokString, regexp.MustCompile(`^"(?:[^"]|"")*"`)},
	{tokVar, regexp.MustCompile(`^` + identPattern)},
}

var whitespace = regexp.MustCompile(`^\s+`)

// LexError reports source text at which no token pattern matched.
type LexError struct {
	Offset  int    // 1-based character offset
	Snippet string // up to 20 characters of unconsumed input
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid token at %d near %q", e.Offset, e.Snippet)
}

// lexer scans source text one token at a time; the parser reads the current
// token from tok/word, giving it exactly one token of lookahead.
type lexer struct {
	rest string
	pos  int // 1-based offset of the next unconsumed character
	tok  tokenKind
	word string
}

func newLexer(src string) *lexer {
	return &lexer{rest: src, pos: 1}
}

// scan skips leading whitespace and advances to the next token. At the end
// of input the current token becomes tokEOF.
func (l *lexer) scan() error {
	if ws := whitespace.FindString(l.rest); ws != "" {
		l.rest = l.rest[len(ws):]
		l.pos += len(ws)
	}
	if l.rest == "" {
		l.tok = tokEOF
		l.word = ""
		return nil
	}
	for _, p := range tokenPatterns {
		if m := p.re.FindString(l.rest); m != "" {
			l.tok = p.kind
			l.word = m
			l.pos += len(m)
			l.rest = l.rest[len(m):]
			return nil
		}
	}
	snippet := l.rest
	if len(snippet) > 20 {
		snippet = snippet[:20]
	}
	return &LexError{Offset: l.pos, Snippet: snippet}
}
