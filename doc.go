/*
Package ratchet is a declarative finite-state-machine toolkit: a small
data model for states and conditioned transitions, plus a runtime that
compiles a validated transition graph once per machine type and drives
individual instances step by step.

# Concept

A machine type is described by a domain.Definition: states (exactly one
initial, at least one final), transitions guarded by named conditions,
and optional lifecycle callbacks. On first construction the definition
is compiled into an immutable model; every instance of that machine
shares the model by reference and carries only its own current state.

Stepping is explicit. Each Cycle call evaluates the current state's
outgoing transitions in declaration order and fires the first one whose
condition holds, running its callback pipeline
(before -> on_exit -> on -> after -> on_enter) synchronously before the
state advances. No condition held is a normal false result, not an
error; a terminal instance cycles as a no-op forever.

# Usage

Definitions are usually written with the fluent builder in pkg/dsl:

	b := dsl.New("door")
	b.State("open").Initial()
	b.State("closed")
	b.State("locked").Final()

	b.Transition("closing").From("open").To("closed").When("is_closed")
	b.Transition("locking").From("closed").To("locked").When("is_locked")

	b.Condition("is_closed", func(m domain.Instance, t *domain.Transition) bool {
		return m.Context().(*DoorHardware).IsClosed()
	})
	// ...

	def, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	machine := ratchet.New(def)
	door, err := machine.Construct("front-door", ratchet.WithContext(hw))
	if err != nil {
		log.Fatal(err)
	}

	for !door.Done() {
		fired, err := door.Cycle(ctx)
		// ...
	}

Machines can also be loaded from YAML documents (pkg/adapters/yaml)
with conditions bound through a pkg/registry.Registry, inspected as a
read-only graph (Machine.Inspect), and rendered as Mermaid or PlantUML
diagrams via the ratchet CLI.
*/
package ratchet
