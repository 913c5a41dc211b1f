// Package analysis provides tools for characterizing integrators and
// trajectories:
//
//   - [ObservedOrder]: empirical convergence order from a step halving study
//   - [Lyapunov]: largest Lyapunov exponent via trajectory separation
//   - [Probe]: boundedness and oscillation report for one trajectory
//   - [Linspace], [Seq]: evaluation grids
//
// A method of formal order p should show ObservedOrder close to p on a
// smooth problem; a positive Lyapunov exponent indicates chaos.
package analysis
