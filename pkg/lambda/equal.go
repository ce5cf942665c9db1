package lambda

import (
	"strconv"
	"sync/atomic"
)

// freshCounter seeds names for alpha-comparison. It is process-wide and
// monotonic, so a fresh name is never reused within a session.
var freshCounter atomic.Int64

// freshVar returns a variable whose name cannot occur in any parsed term:
// '~' is outside the identifier alphabet accepted by the lexer.
func freshVar() Var {
	return Var{Name: "~" + strconv.FormatInt(freshCounter.Add(1), 10)}
}

// AlphaEq reports whether a and b are equal up to consistent renaming of
// bound variables. Two abstractions are compared by substituting one shared
// fresh variable for both parameters and comparing the resulting bodies,
// which handles arbitrary bound-name differences without carrying a renaming
// environment.
func AlphaEq(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Lit:
		y, ok := b.(Lit)
		return ok && x.Value == y.Value
	case Abs:
		y, ok := b.(Abs)
		if !ok {
			return false
		}
		fresh := freshVar()
		return AlphaEq(Subst(x.Body, x.Param, fresh), Subst(y.Body, y.Param, fresh))
	case App:
		y, ok := b.(App)
		return ok && AlphaEq(x.Fun, y.Fun) && AlphaEq(x.Arg, y.Arg)
	}
	return false
}
