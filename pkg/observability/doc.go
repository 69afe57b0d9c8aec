/*
Package observability bridges engine lifecycle hooks to Prometheus.

The engine itself stays metrics-free; it only emits CycleEvent and
TransitionEvent through domain.LifecycleHooks. This package turns those
events into counters that the serve command publishes on /metrics.
*/
package observability
