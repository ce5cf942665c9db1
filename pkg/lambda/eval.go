package lambda

// EventKind discriminates evaluation results.
type EventKind int

const (
	// Bound reports that a let statement added or updated a binding.
	Bound EventKind = iota
	// Reduced reports the rendering of a bare term's normal form.
	Reduced
)

// Event is one evaluation result: either a binding update or the rendering
// of a reduced bare term.
type Event struct {
	Kind EventKind
	Name string // bound name, set for Bound events
	Text string // rendered normal form with trailing " .", set for Reduced events
}

// Eval parses src and evaluates each statement against env in order. Every
// statement first has all known bindings inlined, then is reduced to normal
// form; let statements store the result in env while bare terms produce a
// Reduced event. A parse error suppresses the whole batch.
//
// Eval does not bound reduction: a statement whose term has no normal form
// never returns.
func Eval(src string, env *Env) ([]Event, error) {
	stmts, err := Parse(src)
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(stmts))
	for _, st := range stmts {
		t := Reduce(env.inline(st.Term))
		if st.Name != "" {
			env.Bind(st.Name, t)
			events = append(events, Event{Kind: Bound, Name: st.Name})
		} else {
			events = append(events, Event{Kind: Reduced, Text: t.String() + " ."})
		}
	}
	return events, nil
}
