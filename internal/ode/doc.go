// Package ode drives the (t, y) state machine of an initial value
// problem forward with a fixed step size, under one of a closed set of
// one-step methods: explicit Euler and RK4, implicit backward Euler
// and 2-stage Gauss-Legendre (order 4).
//
// Explicit methods evaluate the right-hand side directly. Implicit
// methods build a residual for the unknown future state (or stage
// slopes) and hand it to the newton package, which differentiates it
// through the ad package and linear-solves through gonum.
//
// There is no adaptive step control: a failed implicit step aborts the
// run, surfacing the failure together with the last committed state.
// Retrying with a smaller step is the caller's call.
package ode
