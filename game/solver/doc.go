// Package solver finds shortest move sequences for parking puzzles with a
// breadth-first search over grid states. It consumes the engine's scan and
// move operations only; all puzzle invariants live in the engine.
package solver
