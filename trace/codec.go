package trace

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/fossabot/bohrium/instr"
	"github.com/fossabot/bohrium/view"
)

// Encode writes instructions to w as newline-delimited JSON, one Line per
// instruction. Bases are renumbered per-call starting at 0 in first-seen
// order; the numbering has no meaning outside this call.
func Encode(w io.Writer, instructions []instr.Instruction) error {
	enc := json.NewEncoder(w)
	baseIDs := make(map[view.Base]int)
	nextID := 0
	for _, i := range instructions {
		if err := enc.Encode(toLine(i, baseIDs, &nextID)); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads newline-delimited Line records from r and returns the
// corresponding instructions. Operands sharing a BaseID within the stream
// decode to views sharing a view.Base, so view.Disjoint and view.Aligned
// behave as they would on the original in-memory instructions. Each decoded
// instruction is checked with Instruction.Validate, and the first failure
// is returned.
func Decode(r io.Reader) ([]instr.Instruction, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	bases := make(map[int]view.Base)

	var out []instr.Instruction
	for dec.More() {
		var l Line
		if err := dec.Decode(&l); err != nil {
			return nil, err
		}
		i, err := toInstruction(l, bases)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// AdjacentPairs returns every consecutive pair (instructions[k], instructions[k+1]),
// the granularity at which an external pass offers candidates to CheckFusible.
func AdjacentPairs(instructions []instr.Instruction) [][2]instr.Instruction {
	if len(instructions) < 2 {
		return nil
	}
	pairs := make([][2]instr.Instruction, 0, len(instructions)-1)
	for k := 0; k+1 < len(instructions); k++ {
		pairs = append(pairs, [2]instr.Instruction{instructions[k], instructions[k+1]})
	}
	return pairs
}
