// Package trace provides a newline-delimited JSON serialization of
// instruction streams, for feeding recorded or synthetic traces into the
// fusibility engine outside of a live runtime.
//
// It plays the role InstructionBatch.hpp plays upstream: a way to look at
// a linear run of instructions and ask adjacency questions about it,
// without owning kernel generation or buffer lifecycle. Encode/Decode use
// encoding/json rather than a binary format because traces are meant to be
// inspected and diffed by hand.
package trace
