package wheel

import (
	"math"
)

// FullTurn is one complete revolution in radians
const FullTurn = 2 * math.Pi

// boundaryEpsilon snaps positions that land within float noise of a segment edge
const boundaryEpsilon = 1e-9

// Index maps a final rotation angle to the segment under the pointer.
//
// Segments are equal width and laid out in order from angle 0 in the direction of
// positive rotation; the pointer sits at wheel-local angle 0. After rotating by angle,
// the segment covering the pointer is
//
//	floor(((2π − (angle mod 2π)) mod 2π) / (2π/n)) mod n
//
// so angle 0 selects segment 0 and angle k·(2π/n) selects segment (n−k) mod n.
func Index(n int, angle float64) (int, error) {
	if n < 1 {
		return 0, ErrNoOptions
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0, ErrInvalidAngle
	}

	segment := FullTurn / float64(n)

	turned := math.Mod(angle, FullTurn)
	if turned < 0 {
		turned += FullTurn
	}
	offset := math.Mod(FullTurn-turned, FullTurn)

	position := offset / segment
	if rounded := math.Round(position); math.Abs(position-rounded) < boundaryEpsilon {
		position = rounded
	}

	return int(math.Floor(position)) % n, nil
}

// Select returns the option under the pointer after rotating by angle
func Select(options []string, angle float64) (string, error) {
	i, err := Index(len(options), angle)
	if err != nil {
		return "", err
	}
	return options[i], nil
}

// Normalize folds angle into [0, 2π)
func Normalize(angle float64) float64 {
	a := math.Mod(angle, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	return a
}
