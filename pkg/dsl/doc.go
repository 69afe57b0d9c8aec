/*
Package dsl provides a fluent builder for declaring ratchet machines in
Go code.

It replaces the class-body introspection of declarative FSM libraries
with an explicit registration step: states and transitions are declared
under their names, conditions and callbacks are registered as typed
functions, and Build compiles everything into a domain.Definition. The
result is type-checked at compile time and keeps declaration order,
which the runtime uses as its tie-break when several conditions hold.

Example:

	b := dsl.New("gumball").Describe("Gumball machine controller")

	b.State("ready").Initial().Desc("At rest, ready to begin a purchase")
	b.State("coin_dropped")
	b.State("crank_turned")
	b.State("gumball_dispensed")
	b.State("crank_returned").Final()

	b.Transition("paying").From("ready").To("coin_dropped").When("is_coin_inserted")
	b.Transition("cranking").From("coin_dropped").To("crank_turned").When("is_crank_turning")
	b.Transition("dispensing").From("crank_turned").To("gumball_dispensed").When("was_gumball_dispensed")
	b.Transition("finishing").From("gumball_dispensed").To("crank_returned").When("is_crank_returned")

	b.Condition("is_coin_inserted", func(m domain.Instance, t *domain.Transition) bool {
		return m.Context().(*Hardware).CoinSlot()
	})
	// ...

	def, err := b.Build()
*/
package dsl
