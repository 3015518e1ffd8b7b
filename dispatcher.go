package bohrium

import (
	"sync"

	"github.com/fossabot/bohrium/fusemodel"
	"github.com/fossabot/bohrium/instr"
)

// defaultEngine backs the package-level CheckFusible facade. It resolves
// BH_FUSE_MODEL exactly once for the life of the process, matching the
// upstream dispatcher's "resolve on first call, then memoize" contract
// (SPEC_FULL.md §4.4).
var (
	defaultOnce   sync.Once
	defaultEngine *FuseEngine
)

func sharedEngine() *FuseEngine {
	defaultOnce.Do(func() {
		defaultEngine = NewFuseEngine()
	})

	return defaultEngine
}

// CheckFusible reports whether instructions a and b may be fused under the
// process-wide default engine. This is the package-level entry point
// named by the original specification; new code that constructs more than
// one engine (tests, multi-tenant embedders) should prefer NewFuseEngine
// and call the method directly instead.
func CheckFusible(a, b instr.Instruction) bool {
	return sharedEngine().CheckFusible(a, b)
}

// FuseModelText returns the canonical textual name of model m, or
// "unknown" if m is not one of the six recognized models.
func FuseModelText(m fusemodel.Model) string {
	return fusemodel.Text(m)
}

// ActiveModel returns the fuse model resolved by the process-wide default
// engine, resolving it on first call.
func ActiveModel() fusemodel.Model {
	return sharedEngine().Model()
}
