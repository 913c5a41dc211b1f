// Package num defines the numeric value abstraction shared by every
// solver in this module.
//
// The central type is the [Real] interface, implemented by exactly two
// representations: [Scalar] (a plain float64) and the truncated Taylor
// series number from the ad package. Right-hand sides, residuals and
// solver kernels are written once against Real; instantiated over
// Scalar they produce a plain trajectory, instantiated over AD numbers
// the same code path carries exact derivatives along.
//
// Both operands of a binary operation must use the same representation
// (and, for AD numbers, the same truncation order). Mixing
// representations is a programming error and fails fast.
package num
