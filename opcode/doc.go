// Package opcode defines the closed set of array-instruction opcodes the
// fusibility engine reasons about, and the five classifiers used to gate
// fusion: IsSystem, IsElementwise, IsReduction, IsAccumulate, and the
// literal IsRange/IsRandom tests.
//
// Opcode is a closed tagged enumeration, not an open integer space. Every
// classifier in classify.go is a switch whose default case returns false,
// so a member added to the enumeration belongs to no class until it is
// listed in the matching switch; no classifier defaults an unrecognized
// opcode to "fusible".
package opcode
