/*
Package domain contains the value types of the Ratchet state machine
engine: State and Transition descriptors, the declarative Definition
table, the error taxonomy, and the read-only Graph view consumed by
diagram tooling.

Everything in this package is plain data. Validation and execution live
in the engine: a Definition is compiled into an immutable model on first
construction, and instances step against that shared model.
*/
package domain
