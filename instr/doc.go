// Package instr defines the Instruction and Operand data model the
// fusibility engine consumes: an immutable record of one opcode plus an
// ordered tuple of operands, where operand 0 is conventionally the output
// and each operand is either a constant scalar or a strided array view.
package instr
