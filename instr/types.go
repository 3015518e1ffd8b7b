package instr

import (
	"errors"

	"github.com/fossabot/bohrium/opcode"
	"github.com/fossabot/bohrium/view"
)

// Sentinel errors returned by Validate. As with view.Validate, these exist
// for system boundaries (trace decoding, CLI input); the fusibility
// predicates themselves assume well-formed Instructions and never return
// these.
var (
	ErrNoOperands     = errors.New("instr: instruction has no operands")
	ErrInvalidOperand = errors.New("instr: operand is neither constant nor a valid view")
)

// Operand is either a constant scalar or an array view. Constants carry no
// view and are irrelevant to aliasing and shape checks; IsConst reports
// which case applies.
type Operand struct {
	IsConst bool
	Const   float64
	View    view.View
}

// ConstOperand returns a constant operand carrying x.
func ConstOperand(x float64) Operand {
	return Operand{IsConst: true, Const: x}
}

// ViewOperand returns an operand backed by the array view v.
func ViewOperand(v view.View) Operand {
	return Operand{View: v}
}

// Validate reports whether op is well-formed: a constant carries no usable
// view (nothing to check), and a view operand must itself validate.
func (op Operand) Validate() error {
	if op.IsConst {
		return nil
	}
	if err := op.View.Validate(); err != nil {
		return err
	}
	return nil
}

// Instruction is an immutable description of one array operation: an
// opcode plus an ordered tuple of operands. Operand[0] is conventionally
// the output for non-system opcodes; operands[1:] are read. System
// opcodes have their own fixed, opaque arities.
type Instruction struct {
	Opcode   opcode.Opcode
	Operands []Operand
}

// New constructs an Instruction from an opcode and its operands, operand 0
// first.
func New(op opcode.Opcode, operands ...Operand) Instruction {
	return Instruction{Opcode: op, Operands: operands}
}

// NumOperands returns nop, the number of operands this instruction
// carries (including the output for non-system opcodes).
func (i Instruction) NumOperands() int {
	return len(i.Operands)
}

// Output returns operand 0, the write target for non-system opcodes. It
// panics if the instruction has no operands; callers dealing with
// possibly-system instructions should check NumOperands or IsSystem first.
func (i Instruction) Output() Operand {
	return i.Operands[0]
}

// IsSystem reports whether this instruction's opcode is a system opcode
// (NONE, FREE, SYNC, DISCARD, …), always fusible with anything.
func (i Instruction) IsSystem() bool {
	return opcode.IsSystem(i.Opcode)
}

// Validate reports whether i is well-formed enough for the fusibility
// predicates to behave as specified: it must carry at least one operand
// (for non-system opcodes, per the data model in SPEC_FULL.md §3), and
// every operand must itself validate. System opcodes are treated as
// opaque and skip the operand-count check.
func (i Instruction) Validate() error {
	if !i.IsSystem() && len(i.Operands) == 0 {
		return ErrNoOperands
	}
	for _, op := range i.Operands {
		if err := op.Validate(); err != nil {
			return ErrInvalidOperand
		}
	}
	return nil
}
