package engine

import "errors"

// Move rejections are reported as sentinel errors so callers (UI, solver)
// can branch on the reason and retry with a different move. None of these
// are fatal; a rejected move never mutates the grid.
var (
	ErrInvalidCarIndex     = errors.New("car index out of range")
	ErrMisalignedDirection = errors.New("direction does not match car orientation")
	ErrOutOfBounds         = errors.New("destination leaves the board")
	ErrBlockedByCar        = errors.New("destination occupied by another car")
	ErrInvalidDistance     = errors.New("distance must be at least 1")
	ErrMalformedGrid       = errors.New("grid contains a non-straight or broken car span")
)

// RejectionReason maps a move rejection to a stable machine-friendly code
// for API responses and history entries.
func RejectionReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCarIndex):
		return "invalid-car-index"
	case errors.Is(err, ErrMisalignedDirection):
		return "misaligned-orientation"
	case errors.Is(err, ErrOutOfBounds):
		return "out-of-bounds"
	case errors.Is(err, ErrBlockedByCar):
		return "blocked-by-car"
	case errors.Is(err, ErrInvalidDistance):
		return "invalid-distance"
	case errors.Is(err, ErrMalformedGrid):
		return "malformed-grid"
	}
	return "rejected"
}
