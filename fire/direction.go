// Package fire implements the wildfire spread model and the frontier
// simulator that drives a landscape through burn states step by step.
package fire

import "math"

// NumDirections is the queen-neighbor count every per-cell loop iterates over.
const NumDirections = 8

// baseDistance is the orthogonal spread distance for a resolution of 1.
const baseDistance = 30.0

// direction describes one queen-neighbor offset together with the compass
// angle a wind must blow FROM to push fire toward that neighbor.
type direction struct {
	dr, dc      int
	sourceAngle float64 // radians
	diagonal    bool
}

// directions enumerates the 8 neighbors in fixed order: NW, N, NE, W, E,
// SW, S, SE. Offsets, source angles and the diagonal flag are a single
// authored table so the three can never drift out of alignment. Iteration
// order is part of the simulator's reproducibility contract.
var directions = [NumDirections]direction{
	{-1, -1, 135 * math.Pi / 180, true},
	{-1, 0, 180 * math.Pi / 180, false},
	{-1, 1, 225 * math.Pi / 180, true},
	{0, -1, 90 * math.Pi / 180, false},
	{0, 1, 270 * math.Pi / 180, false},
	{1, -1, 45 * math.Pi / 180, true},
	{1, 0, 0, false},
	{1, 1, 315 * math.Pi / 180, true},
}

// DirectionTable holds the per-direction spread distances for one landscape
// resolution. It is immutable after construction.
type DirectionTable struct {
	dist [NumDirections]float64
}

// NewDirectionTable builds the distance table for the given resolution:
// 30 × resolution for orthogonal neighbors, √2 times that for diagonals.
func NewDirectionTable(resolution float64) DirectionTable {
	if resolution <= 0 {
		resolution = 1
	}
	var t DirectionTable
	for i, d := range directions {
		t.dist[i] = baseDistance * resolution
		if d.diagonal {
			t.dist[i] *= math.Sqrt2
		}
	}
	return t
}

// Distance returns the spread distance toward direction i.
func (t DirectionTable) Distance(i int) float64 { return t.dist[i] }

// SourceAngle returns the compass angle (radians) wind must blow from to
// carry fire toward direction i.
func SourceAngle(i int) float64 { return directions[i].sourceAngle }

// Offset returns the (row, col) offset of direction i.
func Offset(i int) (dr, dc int) { return directions[i].dr, directions[i].dc }
