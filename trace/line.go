package trace

import (
	"errors"

	"github.com/fossabot/bohrium/instr"
	"github.com/fossabot/bohrium/opcode"
	"github.com/fossabot/bohrium/view"
)

// ErrUnknownOpcode is returned when a Line names an opcode outside the
// closed enumeration.
var ErrUnknownOpcode = errors.New("trace: unknown opcode name")

// Line is the on-disk shape of one Instruction. Base identity, which the
// in-memory view.Base is deliberately opaque about, is made concrete here
// as a small integer scoped to a single trace: two operands with the same
// BaseID share memory, and that is the only thing BaseID means.
type Line struct {
	Opcode   string        `json:"opcode"`
	Operands []OperandLine `json:"operands,omitempty"`
}

// OperandLine is either a constant or a view operand. IsConst distinguishes
// the two; the View* fields are meaningless when IsConst is true.
type OperandLine struct {
	IsConst bool      `json:"is_const,omitempty"`
	Const   float64   `json:"const,omitempty"`
	BaseID  int       `json:"base_id,omitempty"`
	Start   int       `json:"start,omitempty"`
	Shape   []int     `json:"shape,omitempty"`
	Stride  []int     `json:"stride,omitempty"`
}

// toLine converts an Instruction to its wire form. baseIDs assigns stable,
// session-scoped integers to each distinct view.Base encountered.
func toLine(i instr.Instruction, baseIDs map[view.Base]int, nextID *int) Line {
	l := Line{Opcode: i.Opcode.String(), Operands: make([]OperandLine, len(i.Operands))}
	for j, op := range i.Operands {
		if op.IsConst {
			l.Operands[j] = OperandLine{IsConst: true, Const: op.Const}
			continue
		}
		id, ok := baseIDs[op.View.Base]
		if !ok {
			id = *nextID
			*nextID++
			baseIDs[op.View.Base] = id
		}
		l.Operands[j] = OperandLine{
			BaseID: id,
			Start:  op.View.Start,
			Shape:  op.View.Shape,
			Stride: op.View.Stride,
		}
	}
	return l
}

// toInstruction converts a Line back to an Instruction. bases maps a
// Line's BaseID back to the view.Base minted for it within the current
// Decode call, so that two Lines sharing a BaseID decode to operands that
// compare equal under view.Disjoint/view.Aligned.
func toInstruction(l Line, bases map[int]view.Base) (instr.Instruction, error) {
	op, ok := opcode.Parse(l.Opcode)
	if !ok {
		return instr.Instruction{}, ErrUnknownOpcode
	}

	operands := make([]instr.Operand, len(l.Operands))
	for j, ol := range l.Operands {
		if ol.IsConst {
			operands[j] = instr.ConstOperand(ol.Const)
			continue
		}
		base, ok := bases[ol.BaseID]
		if !ok {
			base = view.NewBase()
			bases[ol.BaseID] = base
		}
		operands[j] = instr.ViewOperand(view.View{
			Base:   base,
			Start:  ol.Start,
			NDim:   len(ol.Shape),
			Shape:  ol.Shape,
			Stride: ol.Stride,
		})
	}

	i := instr.New(op, operands...)
	if err := i.Validate(); err != nil {
		return instr.Instruction{}, err
	}
	return i, nil
}
