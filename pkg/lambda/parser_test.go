package lambda

import (
	"errors"
	"testing"
)

// parseOne parses src and returns the single statement it must contain.
func parseOne(t *testing.T, src string) Statement {
	t.Helper()
	stmts, err := Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if len(stmts) != 1 {
		t.Fatalf("parse %q: got %d statements, want 1", src, len(stmts))
	}
	return stmts[0]
}

// TestParseBareTerm checks that a bare expression becomes a statement with
// no name.
func TestParseBareTerm(t *testing.T) {
	st := parseOne(t, "x.")
	if st.Name != "" {
		t.Errorf("name: got %q, want empty", st.Name)
	}
	if !AlphaEq(st.Term, Var{Name: "x"}) {
		t.Errorf("term: got %s, want x", st.Term)
	}
}

// TestParseBinding checks the let form: the name rides on the ':' token and
// the '=' must follow as a plain identifier token.
func TestParseBinding(t *testing.T) {
	st := parseOne(t, ":I = @x x.")
	if st.Name != "I" {
		t.Errorf("name: got %q, want I", st.Name)
	}
	want := Abs{Param: "x", Body: Var{Name: "x"}}
	if !AlphaEq(st.Term, want) {
		t.Errorf("term: got %s, want %s", st.Term, want)
	}
}

// TestParseApplicationIsLeftAssociative checks that "f x y" parses as
// ((f x) y).
func TestParseApplicationIsLeftAssociative(t *testing.T) {
	st := parseOne(t, "f x y.")
	want := App{Fun: App{Fun: Var{Name: "f"}, Arg: Var{Name: "x"}}, Arg: Var{Name: "y"}}
	if !AlphaEq(st.Term, want) {
		t.Errorf("got %s, want %s", st.Term, want)
	}
}

// TestParseParenthesesGroup checks that parentheses override application
// order: "f (x y)" applies f to the grouped application.
func TestParseParenthesesGroup(t *testing.T) {
	st := parseOne(t, "f (x y).")
	want := App{Fun: Var{Name: "f"}, Arg: App{Fun: Var{Name: "x"}, Arg: Var{Name: "y"}}}
	if !AlphaEq(st.Term, want) {
		t.Errorf("got %s, want %s", st.Term, want)
	}
}

// TestParseLambdaChain checks that "@x @y E" right-folds into nested
// abstractions with the last parameter innermost.
func TestParseLambdaChain(t *testing.T) {
	st := parseOne(t, "@x @y x.")
	want := Abs{Param: "x", Body: Abs{Param: "y", Body: Var{Name: "x"}}}
	if !AlphaEq(st.Term, want) {
		t.Errorf("got %s, want %s", st.Term, want)
	}
}

// TestParseLambdaBodyExtendsRight checks that a lambda body swallows the
// rest of the expression: "@x f x y" is @x ((f x) y), not (@x f) x y.
func TestParseLambdaBodyExtendsRight(t *testing.T) {
	st := parseOne(t, "@x f x y.")
	want := Abs{Param: "x", Body: App{Fun: App{Fun: Var{Name: "f"}, Arg: Var{Name: "x"}}, Arg: Var{Name: "y"}}}
	if !AlphaEq(st.Term, want) {
		t.Errorf("got %s, want %s", st.Term, want)
	}
}

// TestParseNumbers checks the integer/float split: exponent or interior
// decimal point means float, anything else integer.
func TestParseNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want any
	}{
		{"5.", int64(5)},
		{"-5.", int64(-5)},
		{"+5.", int64(5)},
		{"2.5.", 2.5},
		{"1E3.", 1000.0},
		{"-1.5E-2.", -0.015},
	}
	for _, c := range cases {
		st := parseOne(t, c.src)
		lit, ok := st.Term.(Lit)
		if !ok {
			t.Errorf("%q: got %T, want Lit", c.src, st.Term)
			continue
		}
		if lit.Value != c.want {
			t.Errorf("%q: got %v (%T), want %v (%T)", c.src, lit.Value, lit.Value, c.want, c.want)
		}
	}
}

// TestParseStringUnescape checks that a doubled double-quote inside a string
// literal becomes a single literal quote.
func TestParseStringUnescape(t *testing.T) {
	st := parseOne(t, `"say ""hi""".`)
	lit, ok := st.Term.(Lit)
	if !ok {
		t.Fatalf("got %T, want Lit", st.Term)
	}
	if lit.Value != `say "hi"` {
		t.Errorf("got %q, want %q", lit.Value, `say "hi"`)
	}
	// Rendering re-escapes the embedded quote.
	if got := lit.String(); got != `"say \"hi\""` {
		t.Errorf("render: got %s", got)
	}
}

// TestParseMultipleStatements checks statement ordering and the mix of
// bindings and bare terms.
func TestParseMultipleStatements(t *testing.T) {
	stmts, err := Parse(":K = @x @y x. K 1 2.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	if stmts[0].Name != "K" || stmts[1].Name != "" {
		t.Errorf("names: got %q, %q", stmts[0].Name, stmts[1].Name)
	}
}

// TestParseErrors checks each failure mode and that the reported offset
// points into the source.
func TestParseErrors(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"x", "'.' expected"},                // unterminated statement
		{"(x y. z.", ") expected"},           // unclosed group
		{":I @x x.", "= expected"},           // missing '=' after binding name
		{":I + @x x.", "= expected"},         // wrong identifier where '=' belongs
		{".", "Unexpected token"},            // empty statement
		{"f :x.", "Unexpected token"},        // let token inside an expression
		{"@x.", "Unexpected token"},          // lambda with empty body
	}
	for _, c := range cases {
		_, err := Parse(c.src)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("%q: got %v, want *ParseError", c.src, err)
			continue
		}
		if parseErr.Msg != c.msg {
			t.Errorf("%q: got msg %q, want %q", c.src, parseErr.Msg, c.msg)
		}
		if parseErr.Offset < 1 || parseErr.Offset > len(c.src)+1 {
			t.Errorf("%q: offset %d out of range", c.src, parseErr.Offset)
		}
	}
}

// TestParseUnterminatedStatementOffset pins the offset for the missing-dot
// case: the parser has consumed through the last token when it reports it.
func TestParseUnterminatedStatementOffset(t *testing.T) {
	_, err := Parse("f x")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if parseErr.Offset != 4 {
		t.Errorf("offset: got %d, want 4", parseErr.Offset)
	}
}
