// Package problems collects ready-made right-hand sides for the
// integration engine. Every system is written against the numeric
// abstraction, so the same code serves plain integration and AD-based
// Jacobian extraction inside implicit steps.
package problems
