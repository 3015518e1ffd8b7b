package instr_test

import (
	"testing"

	"github.com/fossabot/bohrium/instr"
	"github.com/fossabot/bohrium/opcode"
	"github.com/fossabot/bohrium/view"
	"github.com/stretchr/testify/assert"
)

func v(base view.Base, shape ...int) view.View {
	stride := make([]int, len(shape))
	acc := 1
	for j := len(shape) - 1; j >= 0; j-- {
		stride[j] = acc
		acc *= shape[j]
	}
	return view.View{Base: base, NDim: len(shape), Shape: shape, Stride: stride}
}

func TestOutputAndNumOperands(t *testing.T) {
	base := view.NewBase()
	i := instr.New(opcode.Add, instr.ViewOperand(v(base, 4)), instr.ConstOperand(2), instr.ConstOperand(3))
	assert.Equal(t, 3, i.NumOperands())
	assert.False(t, i.Output().IsConst)
}

func TestIsSystemDelegatesToOpcodeClassifier(t *testing.T) {
	sys := instr.New(opcode.Sync)
	assert.True(t, sys.IsSystem())

	add := instr.New(opcode.Add, instr.ViewOperand(v(view.NewBase(), 4)))
	assert.False(t, add.IsSystem())
}

func TestValidateRejectsEmptyNonSystemInstruction(t *testing.T) {
	i := instr.Instruction{Opcode: opcode.Add}
	assert.ErrorIs(t, i.Validate(), instr.ErrNoOperands)
}

func TestValidateAllowsEmptySystemInstruction(t *testing.T) {
	i := instr.Instruction{Opcode: opcode.Discard}
	assert.NoError(t, i.Validate())
}

func TestValidateRejectsMalformedView(t *testing.T) {
	bad := instr.ViewOperand(view.View{NDim: 1, Shape: []int{1}, Stride: []int{1}}) // nil Base
	i := instr.New(opcode.Add, bad)
	assert.ErrorIs(t, i.Validate(), instr.ErrInvalidOperand)
}

func TestConstOperandAlwaysValidates(t *testing.T) {
	assert.NoError(t, instr.ConstOperand(3.14).Validate())
}
