// Package fusemodel is the fuse-model registry: the ordered enumeration of
// policies from BROADEST (data-flow only) to SAME_SHAPE_GENERATE_1DREDUCE
// (elementwise with limited reductions and generators), name↔value
// mapping, and resolution from the BH_FUSE_MODEL environment variable.
//
// Resolve reads the environment each time it is called, falls back to the
// default on an unrecognized value (after logging a warning and
// normalizing the environment variable for any child process), and
// returns the effective Model. Its result depends only on the environment
// at the moment Resolve is called; the one-shot memoization described in
// SPEC_FULL.md §4.4 lives in the root bohrium package (FuseEngine), not
// here.
package fusemodel
