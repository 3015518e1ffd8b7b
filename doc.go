// Package bohrium is the instruction fusibility engine of a lazy
// array-computation runtime.
//
// Given a linear stream of array instructions — element-wise arithmetic,
// reductions, range/random generators, accumulations, and system
// control-plane opcodes — the engine decides which adjacent pairs may be
// fused into a single compute kernel. Fusion is split into two concerns:
//
//	legality — data-flow safety on strided array views, decided by
//	           view.Disjoint and view.Aligned (package view);
//	policy   — which opcode shapes are allowed to participate, decided by
//	           one of six fuse models (package fusemodel), each a
//	           refinement of the broadest, data-flow-only model.
//
// The package is organized leaf-first, mirroring SPEC_FULL.md §2:
//
//	view/      — strided view algebra: Disjoint, Aligned
//	opcode/    — the closed opcode enumeration and its five classifiers
//	instr/     — Instruction and Operand, the data model both consume
//	fusemodel/ — the fuse-model registry and environment resolution
//	(root)     — the six legality predicates and the CheckFusible dispatcher
//
// CheckFusible is the sole operation callers need:
//
//	fusible := bohrium.CheckFusible(a, b)
//
// It resolves the active model from BH_FUSE_MODEL on first use and
// memoizes it for the remainder of the process. Callers that want explicit
// control over model resolution (tests, multiple independently-configured
// engines in one process) should construct a *FuseEngine with
// NewFuseEngine instead; the package-level functions exist only for parity
// with the single global entry point the original specification names.
package bohrium
