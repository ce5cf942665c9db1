package lambda

import "golang.org/x/exp/slices"

// Env is the session-wide binding environment: an insertion-ordered mapping
// from name to an already-reduced term. It is owned by a single goroutine;
// evaluation never shares it.
type Env struct {
	names  []string
	values map[string]Term
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{values: make(map[string]Term)}
}

// Bind associates name with t. Rebinding an existing name overwrites its
// value (last write wins) but keeps its original position, so replay order
// stays deterministic.
func (e *Env) Bind(name string, t Term) {
	if !slices.Contains(e.names, name) {
		e.names = append(e.names, name)
	}
	e.values[name] = t
}

// Lookup returns the term bound to name, if any.
func (e *Env) Lookup(name string) (Term, bool) {
	t, ok := e.values[name]
	return t, ok
}

// Names returns the bound names in insertion order.
func (e *Env) Names() []string {
	return slices.Clone(e.names)
}

// inline substitutes every known binding into t by wrapping the term as
// ((@name t) value) and contracting that redex, one binding at a time in
// insertion order. This is how previously defined names are inlined without
// a substitution-at-lookup mechanism.
func (e *Env) inline(t Term) Term {
	for _, name := range e.names {
		t = Step(App{Fun: Abs{Param: name, Body: t}, Arg: e.values[name]})
	}
	return t
}
