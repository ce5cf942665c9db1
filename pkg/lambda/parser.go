package lambda

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Statement is one '.'-terminated top-level item. Name is the bound name
// when the statement is a let binding and empty for a bare term. A binding's
// right-hand side is stored unreduced; reduction happens at evaluation time.
type Statement struct {
	Name string
	Term Term
}

// ParseError reports a malformed statement.
type ParseError struct {
	Offset int // 1-based character offset
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("(%d): %s", e.Offset, e.Msg)
}

type parser struct {
	lex *lexer
}

// Parse lexes and parses src into its ordered top-level statements. The
// whole input is parsed before anything is evaluated, so one syntax error
// fails the entire batch.
func Parse(src string) ([]Statement, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.lex.scan(); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if p.lex.tok != tokEOF {
		return nil, p.errorf("EOF expected")
	}
	return stmts, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Offset: p.lex.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseStatements() ([]Statement, error) {
	var stmts []Statement
	for p.lex.tok != tokEOF {
		var st Statement
		if p.lex.tok == tokLet {
			st.Name = p.lex.word[1:]
			if err := p.lex.scan(); err != nil {
				return nil, err
			}
			if p.lex.tok != tokVar || p.lex.word != "=" {
				return nil, p.errorf("= expected")
			}
			if err := p.lex.scan(); err != nil {
				return nil, err
			}
		}
		t, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, p.errorf("Unexpected token")
		}
		st.Term = t
		if p.lex.tok != tokDot {
			return nil, p.errorf("'.' expected")
		}
		if err := p.lex.scan(); err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return stmts, nil
}

// parseExpr accumulates consecutive atoms by left-associative application:
// each atom is applied to the running result, the first atom becoming the
// running result directly. It stops at '.', ')' or the end of input and
// returns nil when no atom was consumed.
func (p *parser) parseExpr() (Term, error) {
	var acc Term
	add := func(t Term) {
		if acc == nil {
			acc = t
		} else {
			acc = App{Fun: acc, Arg: t}
		}
	}
	for p.lex.tok != tokEOF && p.lex.tok != tokDot && p.lex.tok != tokRParen {
		switch p.lex.tok {
		case tokLParen:
			if err := p.lex.scan(); err != nil {
				return nil, err
			}
			sub, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.lex.tok != tokRParen {
				return nil, p.errorf(") expected")
			}
			if sub == nil {
				return nil, p.errorf("Unexpected token")
			}
			if err := p.lex.scan(); err != nil {
				return nil, err
			}
			add(sub)
		case tokLambda:
			t, err := p.parseLambda()
			if err != nil {
				return nil, err
			}
			add(t)
		case tokVar:
			add(Var{Name: p.lex.word})
			if err := p.lex.scan(); err != nil {
				return nil, err
			}
		case tokString:
			raw := p.lex.word[1 : len(p.lex.word)-1]
			add(Lit{Value: strings.ReplaceAll(raw, `""`, `"`)})
			if err := p.lex.scan(); err != nil {
				return nil, err
			}
		case tokNumber:
			add(Lit{Value: parseNumber(p.lex.word)})
			if err := p.lex.scan(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf("Unexpected token")
		}
	}
	return acc, nil
}

// parseLambda consumes one or more consecutive '@' tokens, then parses the
// shared body and right-folds the collected parameters into nested
// abstractions: "@x @y E" becomes Abs(x, Abs(y, E)).
func (p *parser) parseLambda() (Term, error) {
	var params []string
	for p.lex.tok == tokLambda {
		params = append(params, p.lex.word[1:])
		if err := p.lex.scan(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, p.errorf("Unexpected token")
	}
	for _, param := range lo.Reverse(params) {
		body = Abs{Param: param, Body: body}
	}
	return body, nil
}

// parseNumber follows the reference rule: a word containing an exponent
// marker or an interior decimal point is a float, anything else an integer.
// An integer too large for int64 falls back to a float.
func parseNumber(word string) any {
	if !strings.Contains(word, "E") && strings.Index(word, ".") <= 0 {
		if n, err := strconv.ParseInt(word, 10, 64); err == nil {
			return n
		}
	}
	f, _ := strconv.ParseFloat(word, 64)
	return f
}
