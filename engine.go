package bohrium

import (
	"sync"

	"github.com/fossabot/bohrium/fusemodel"
	"github.com/fossabot/bohrium/instr"
)

// FuseEngine is an explicit, caller-owned instance of the fusibility
// oracle. Per SPEC_FULL.md's resolution of the "global mutable state"
// design note, this is the primary API: construct one with NewFuseEngine,
// which resolves BH_FUSE_MODEL once at construction time, and call
// CheckFusible on it as many times as needed from as many goroutines as
// needed — the engine holds no per-call state.
//
// The zero value is usable but defers model resolution to the first call
// to CheckFusible, matching the package-level singleton's lazy-init
// behavior; prefer NewFuseEngine so resolution happens up front.
type FuseEngine struct {
	once  sync.Once
	model fusemodel.Model
}

// EngineOption configures a FuseEngine at construction time.
type EngineOption func(*FuseEngine)

// WithModel overrides environment resolution and pins the engine to m.
// Primarily useful in tests that need to exercise a specific model
// without mutating the process environment.
func WithModel(m fusemodel.Model) EngineOption {
	return func(e *FuseEngine) { e.model = m }
}

// NewFuseEngine resolves the active fuse model from BH_FUSE_MODEL (unless
// overridden by an EngineOption) and returns a ready-to-use engine.
func NewFuseEngine(opts ...EngineOption) *FuseEngine {
	e := &FuseEngine{}
	for _, opt := range opts {
		opt(e)
	}
	e.ensureResolved()

	return e
}

// Model returns the engine's resolved fuse model.
func (e *FuseEngine) Model() fusemodel.Model {
	e.ensureResolved()
	return e.model
}

// ModelText returns the canonical name of the engine's resolved model.
func (e *FuseEngine) ModelText() string {
	return fusemodel.Text(e.Model())
}

// ensureResolved guarantees e.model has transitioned out of Unset exactly
// once, even for a zero-value FuseEngine that skipped NewFuseEngine. It is
// the "standard once-init primitive" SPEC_FULL.md §5 requires for the
// single shared mutable cell.
func (e *FuseEngine) ensureResolved() {
	e.once.Do(func() {
		if e.model == fusemodel.Unset {
			e.model = fusemodel.Resolve()
		}
	})
}

// CheckFusible reports whether a and b may be fused into a single kernel
// under the engine's active model (SPEC_FULL.md §4.4). It is reentrant,
// allocation-free, and holds no per-pair state; callers may invoke it
// concurrently from any number of goroutines once the model has resolved.
func (e *FuseEngine) CheckFusible(a, b instr.Instruction) bool {
	e.ensureResolved()

	switch e.model {
	case fusemodel.Broadest:
		return fuseBroadest(a, b)
	case fusemodel.SameShape:
		return fuseSameShape(a, b)
	case fusemodel.SameShapeRange:
		return fuseSameShapeRange(a, b)
	case fusemodel.SameShapeRandom:
		return fuseSameShapeRandom(a, b)
	case fusemodel.SameShapeRangeRandom:
		return fuseSameShapeRangeRandom(a, b)
	case fusemodel.SameShapeGenerate1DReduce:
		return fuseSameShapeGenerate1DReduce(a, b)
	default:
		panic(fusemodel.NewConfigError("no fuse model selected"))
	}
}
