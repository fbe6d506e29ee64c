package solver

import (
	"errors"
	"strings"

	"github.com/bastianibanez/parking/game/engine"
)

// DefaultMaxStates caps the breadth-first search. Boards in this module are
// tiny, so the cap mostly guards against accidentally huge configurations.
const DefaultMaxStates = 1 << 20

// ErrStateLimit is returned when the search exhausts its state budget before
// finding a solution or proving there is none.
var ErrStateLimit = errors.New("solver: state limit exceeded")

// Step is one single-cell slide of a solution. Car is the index the car has
// in the scan of the state the slide applies to, so a driver replaying the
// solution must refresh between steps.
type Step struct {
	Car       int              `json:"car"`
	Direction engine.Direction `json:"direction"`
}

// Result reports the outcome of a solve.
type Result struct {
	Found          bool   `json:"found"`
	Steps          []Step `json:"steps,omitempty"`
	StatesExplored int    `json:"states_explored"`
}

type edge struct {
	prev string
	step Step
}

// Solve runs a breadth-first search over grid states, one single-cell slide
// per transition, and returns the shortest move sequence that satisfies the
// configuration's target footprint. Found is false when the reachable state
// space is exhausted without a solution.
func Solve(config *engine.PuzzleConfig, maxStates int) (*Result, error) {
	if err := engine.ValidatePuzzleConfig(config); err != nil {
		return nil, err
	}
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	start := engine.GridFromLayout(config.Layout)
	target := config.Target

	if reached(start, target) {
		return &Result{Found: true, StatesExplored: 1}, nil
	}

	startKey := encode(start)
	parents := map[string]edge{startKey: {}}
	queue := []engine.Grid{start}
	explored := 0

	for len(queue) > 0 {
		grid := queue[0]
		queue = queue[1:]
		key := encode(grid)

		explored++
		if explored > maxStates {
			return &Result{StatesExplored: explored - 1}, ErrStateLimit
		}

		cars := engine.ScanCars(grid)
		for idx := range cars {
			for _, dir := range engine.Directions {
				next := grid.Clone()
				state := &engine.PuzzleState{Grid: next, Cars: cars, Target: target, Fresh: true}
				if err := state.MoveCar(idx, dir, 1); err != nil {
					continue
				}

				nextKey := encode(next)
				if _, seen := parents[nextKey]; seen {
					continue
				}
				parents[nextKey] = edge{prev: key, step: Step{Car: idx, Direction: dir}}

				if state.Solved {
					return &Result{
						Found:          true,
						Steps:          reconstruct(parents, startKey, nextKey),
						StatesExplored: explored,
					}, nil
				}
				queue = append(queue, next)
			}
		}
	}

	return &Result{Found: false, StatesExplored: explored}, nil
}

// reached reports whether the grid already satisfies the target footprint.
func reached(grid engine.Grid, target engine.Target) bool {
	state := &engine.PuzzleState{Grid: grid, Target: target}
	return state.TargetReached()
}

// encode serializes a grid into a map key.
func encode(grid engine.Grid) string {
	var b strings.Builder
	b.Grow(grid.Size() * (grid.Size() + 1))
	for _, row := range grid {
		for _, m := range row {
			b.WriteString(string(m))
		}
		b.WriteByte('/')
	}
	return b.String()
}

// reconstruct walks the parent edges back from the goal state and reverses
// the collected steps.
func reconstruct(parents map[string]edge, startKey, goalKey string) []Step {
	var steps []Step
	for key := goalKey; key != startKey; key = parents[key].prev {
		steps = append(steps, parents[key].step)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
