package lambda

// Prelude is the combinator library preloaded into every session.
//
// The Y combinator is deliberately absent: a let statement reduces its
// right-hand side to normal form before binding it, and Y has none, so
// binding it would never return. OMEGA is safe to bind because its one-step
// reduct is alpha-equal to itself, so Reduce reaches its fixed point
// immediately.
const Prelude = `:I = @x x.
:B = @x @y @z x (y z).
:C = @x @y @z x z y.
:S = @x @y @z x z (y z).
:K = @x @y x.
:T = @x @y x.
:F = @x @y y.
:OMEGA = (@x x x)(@x x x).
`

// LoadPrelude evaluates the prelude into env.
func LoadPrelude(env *Env) error {
	_, err := Eval(Prelude, env)
	return err
}
