package fire

// Cell addresses one grid cell by row and column.
type Cell struct {
	Row, Col int
}

// Ignition records one cell catching fire, with the step it ignited on.
// Ignition cells carry step 1.
type Ignition struct {
	Row, Col int
	Step     int
}

// Result is the outcome of a completed run.
type Result struct {
	Rows, Cols int

	// Ignited is the row-major burn mask: true for every cell that burned
	// at any point, including the initial ignition cells.
	Ignited []bool

	// History lists every ignition in the exact order it happened across
	// all steps. Each cell appears at most once.
	History []Ignition

	// Count is the total number of ignited cells, len(History).
	Count int

	// Steps is the last step that produced an ignition (the ignition
	// cells themselves count as step 1).
	Steps int
}

// IgnitedAt reports whether (row, col) burned.
func (r *Result) IgnitedAt(row, col int) bool {
	return r.Ignited[row*r.Cols+col]
}

// BurnedFraction returns the share of grid cells that ignited.
func (r *Result) BurnedFraction() float64 {
	return float64(r.Count) / float64(r.Rows*r.Cols)
}
