// Package roll evaluates die descriptors into randomized results.
//
// A [Roller] draws every sample from a single [Source], one die at a time and
// in order, so a seeded roller reproduces the same sequence of results.
package roll
