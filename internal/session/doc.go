/*
Package session implements the funnel builder's editing core: the graph
store owning steps and connections, the two drag semantics, the
connection-drawing state machine, and the debounced autosave bridge to
the injected repository.

A session is single-goroutine by contract: one editor per funnel,
mutated synchronously by discrete UI events. The only concurrent piece
is the autosave writer, which owns its state behind a mutex.
*/
package session
