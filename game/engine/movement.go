package engine

import "time"

// CanMoveCar checks whether sliding the car at carIdx by distance cells in
// the given direction is legal against the current grid. It returns nil when
// the slide is accepted, or one of the sentinel rejection errors.
//
// Validation runs against the cached car list; callers that mutated the grid
// since the last scan must Refresh first or the check answers for the stale
// footprint.
func (ps *PuzzleState) CanMoveCar(carIdx int, direction Direction, distance int) error {
	if distance < 1 {
		return ErrInvalidDistance
	}
	if carIdx < 0 || carIdx >= len(ps.Cars) {
		return ErrInvalidCarIndex
	}

	car := ps.Cars[carIdx]
	if !direction.AlignedWith(car.Orientation) {
		return ErrMisalignedDirection
	}

	dr, dc := direction.Delta()

	// Every cell the car sweeps through must be inside the board and free,
	// not just the final footprint, so a long slide cannot tunnel past a
	// blocker sitting in its lane.
	for step := 1; step <= distance; step++ {
		for _, p := range car.Footprint() {
			dst := Position{Row: p.Row + dr*step, Col: p.Col + dc*step}
			if !ps.Grid.InBounds(dst) {
				return ErrOutOfBounds
			}
			// Cells the car itself vacates do not block the slide.
			if ps.Grid.At(dst) != Empty && !car.Covers(dst) {
				return ErrBlockedByCar
			}
		}
	}

	return nil
}

// MoveCar applies the slide after validating it with CanMoveCar. On rejection
// the grid is left bit-for-bit unchanged. On success the old footprint is
// cleared and the shifted footprint written, both computed from a snapshot of
// the pre-move cells so the car never collides with its own mid-update state.
//
// MoveCar does not rescan: the cached car list goes stale and Fresh flips to
// false. The caller decides when to pay the Refresh cost.
func (ps *PuzzleState) MoveCar(carIdx int, direction Direction, distance int) error {
	if err := ps.CanMoveCar(carIdx, direction, distance); err != nil {
		return err
	}

	car := ps.Cars[carIdx]
	marker := car.Marker()
	dr, dc := direction.Delta()
	dr, dc = dr*distance, dc*distance

	old := car.Footprint()
	for _, p := range old {
		ps.Grid.Set(p, Empty)
	}
	for _, p := range old {
		ps.Grid.Set(Position{Row: p.Row + dr, Col: p.Col + dc}, marker)
	}

	ps.Fresh = false
	ps.Solved = ps.TargetReached()
	return nil
}

// TargetReached reports whether every target cell currently carries the
// designated marker type. Pure read over at most the target span.
func (ps *PuzzleState) TargetReached() bool {
	cells := ps.Target.Cells()
	if len(cells) == 0 {
		return false
	}
	for _, p := range cells {
		if !ps.Grid.InBounds(p) || ps.Grid.At(p) != ps.Target.Marker {
			return false
		}
	}
	return true
}

// RefreshCars rescans the grid and replaces the cached car list. It first
// re-checks the straight-span invariant so a corrupted grid surfaces here
// instead of producing silently wrong bounding boxes.
func (ps *PuzzleState) RefreshCars() error {
	if err := ValidateGrid(ps.Grid); err != nil {
		return err
	}
	ps.Cars = ScanCars(ps.Grid)
	ps.Fresh = true
	return nil
}

// AddMoveToHistory appends an attempted slide to the cumulative history.
func (ps *PuzzleState) AddMoveToHistory(carIdx int, direction Direction, distance int, from, to Position, err error) {
	entry := MoveHistoryEntry{
		Car:        carIdx,
		Direction:  direction,
		Distance:   distance,
		From:       from,
		To:         to,
		Success:    err == nil,
		Reason:     RejectionReason(err),
		Timestamp:  time.Now().Unix(),
		MoveNumber: ps.TotalMoves + 1,
	}
	ps.MoveHistory = append(ps.MoveHistory, entry)
	ps.TotalMoves++
}
