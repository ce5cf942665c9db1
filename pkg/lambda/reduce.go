package lambda

import "fmt"

// Step performs exactly one reduction action in leftmost, call-by-name
// order and returns the resulting term. When t contains no redex the result
// is alpha-equal to t.
//
// For an application the function position always gets the first chance to
// make progress; the argument is stepped only once the function position is
// stuck at the top level.
func Step(t Term) Term {
	switch v := t.(type) {
	case Var, Lit:
		return Copy(v)
	case Abs:
		return Abs{Param: v.Param, Body: Step(v.Body)}
	case App:
		if fun, ok := v.Fun.(Abs); ok {
			return Subst(fun.Body, fun.Param, v.Arg)
		}
		fun := Step(v.Fun)
		if AlphaEq(v.Fun, fun) {
			return App{Fun: Copy(v.Fun), Arg: Step(v.Arg)}
		}
		return App{Fun: fun, Arg: Copy(v.Arg)}
	}
	panic(fmt.Sprintf("lambda: unknown term %T", t))
}

// Reduce drives t to normal form by calling Step until two consecutive
// results are alpha-equal, then returns the latter. There is no step budget
// and no cycle detection: a term whose reduction keeps growing makes this
// loop forever, which matches the semantics of the calculus.
func Reduce(t Term) Term {
	next := Step(t)
	for !AlphaEq(t, next) {
		t = next
		next = Step(t)
	}
	return next
}
