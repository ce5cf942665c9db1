package lambda

import (
	"fmt"
	"strconv"
	"strings"
)

// Term represents a lambda calculus term. The variant set is closed: Var,
// Lit, Abs and App are the only implementations, and the tree-walking
// operations (Copy, Subst, Step, AlphaEq) switch exhaustively over them.
// Terms are immutable; every transformation builds new nodes.
type Term interface {
	fmt.Stringer
	term()
}

// Var represents a variable usage. It is free unless an enclosing Abs binds
// the same name.
type Var struct {
	Name string
}

// Lit represents an opaque terminal value: an int64, a float64 or a string.
// It never reduces and substitution leaves it untouched.
type Lit struct {
	Value any
}

// Abs represents an abstraction: it binds Param as a new scope over Body.
type Abs struct {
	Param string
	Body  Term
}

// App represents an application of Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

func (Var) term() {}
func (Lit) term() {}
func (Abs) term() {}
func (App) term() {}

func (v Var) String() string {
	return v.Name
}

func (l Lit) String() string {
	switch v := l.Value.(type) {
	case string:
		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (a Abs) String() string {
	return fmt.Sprintf("@%s %s", a.Param, a.Body)
}

// An abstraction in function position is parenthesized, and so is any
// argument that is not atomic (a Var or a Lit).
func (a App) String() string {
	fun := a.Fun.String()
	if _, ok := a.Fun.(Abs); ok {
		fun = "(" + fun + ")"
	}
	arg := a.Arg.String()
	switch a.Arg.(type) {
	case Var, Lit:
	default:
		arg = "(" + arg + ")"
	}
	return fun + " " + arg
}

// Copy deep-clones t so that no node is shared with the original.
func Copy(t Term) Term {
	switch v := t.(type) {
	case Var:
		return Var{Name: v.Name}
	case Lit:
		return Lit{Value: v.Value}
	case Abs:
		return Abs{Param: v.Param, Body: Copy(v.Body)}
	case App:
		return App{Fun: Copy(v.Fun), Arg: Copy(v.Arg)}
	}
	panic(fmt.Sprintf("lambda: unknown term %T", t))
}

// Subst returns t with every free occurrence of name replaced by a fresh
// copy of repl. An abstraction whose own parameter equals name shadows it
// and is returned unchanged; the parameter is never renamed, so a replacement
// with free variables can be captured by an inner binder (see DESIGN.md for
// why this reference behavior is kept).
func Subst(t Term, name string, repl Term) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return Copy(repl)
		}
		return Var{Name: v.Name}
	case Lit:
		return Lit{Value: v.Value}
	case Abs:
		if v.Param == name {
			return v
		}
		return Abs{Param: v.Param, Body: Subst(v.Body, name, repl)}
	case App:
		return App{Fun: Subst(v.Fun, name, repl), Arg: Subst(v.Arg, name, repl)}
	}
	panic(fmt.Sprintf("lambda: unknown term %T", t))
}
