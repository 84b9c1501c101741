// Package generator produces deterministic test cost matrices for the
// munkres solver: uniform integer and float matrices, constant matrices, and
// reproducible batches where every matrix has its own derived RNG stream.
//
// All generators accept an explicit *rand.Rand (see NewRand, Derive); none
// reads the clock, so a seed fully determines the output.
package generator
