package bohrium_test

import (
	"fmt"

	"github.com/fossabot/bohrium"
	"github.com/fossabot/bohrium/instr"
	"github.com/fossabot/bohrium/opcode"
	"github.com/fossabot/bohrium/view"
)

// ExampleCheckFusible shows the broadest model accepting two elementwise
// instructions whose views never overlap.
func ExampleCheckFusible() {
	A, B, C, D, E := view.NewBase(), view.NewBase(), view.NewBase(), view.NewBase(), view.NewBase()

	a := instr.New(opcode.Add,
		instr.ViewOperand(contiguous(A, 4)),
		instr.ViewOperand(contiguous(B, 4)),
		instr.ViewOperand(contiguous(C, 4)),
	)
	b := instr.New(opcode.Mul,
		instr.ViewOperand(contiguous(D, 4)),
		instr.ViewOperand(contiguous(A, 4)),
		instr.ViewOperand(contiguous(E, 4)),
	)

	fmt.Println(bohrium.CheckFusible(a, b))
	// Output: true
}
