/*
Package observability provides Prometheus instrumentation for the formlang engine.

Metrics subscribes to the engine's lifecycle hooks, so the core packages stay
free of any metrics dependency.
*/
package observability
