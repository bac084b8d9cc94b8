/*
Package ports defines the driven ports (interfaces) of the formlang engine.

The core algorithms need nothing from the outside world. The only port is the
optional result cache that the Engine consults for expensive, repeatable
operations (automaton synthesis, language powers and closures).

# Key Interfaces

  - ResultCache: byte-level key/value store for encoded results. Implementations
    must be safe for concurrent use.
*/
package ports
