// Package landscape provides the immutable terrain raster the spread model reads.
package landscape

// NonBurnable is the vegetation class marking a cell that can never ignite.
const NonBurnable = 99

// Terrain holds the per-cell attributes sampled by the spread model.
type Terrain struct {
	Vegetation int     // vegetation class; NonBurnable = inert cell
	Elevation  float64 // meters
	WindDir    float64 // radians, "from" convention
	WindSpeed  float64 // m/s
}

// Grid is an R×C raster of terrain attributes stored in row-major layers.
// It is populated once (via Set or a generator/loader) and treated as
// read-only for the duration of a simulation run.
type Grid struct {
	rows, cols int
	resolution float64

	vegetation []int
	elevation  []float64
	windDir    []float64
	windSpeed  []float64
}

// NewGrid allocates a grid with the given dimensions. Resolution is the
// cell size multiplier used for spread distances; values <= 0 default to 1.
func NewGrid(rows, cols int, resolution float64) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	if resolution <= 0 {
		resolution = 1
	}
	n := rows * cols
	return &Grid{
		rows:       rows,
		cols:       cols,
		resolution: resolution,
		vegetation: make([]int, n),
		elevation:  make([]float64, n),
		windDir:    make([]float64, n),
		windSpeed:  make([]float64, n),
	}
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Resolution returns the cell size multiplier.
func (g *Grid) Resolution() float64 { return g.resolution }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear layer index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// At returns the terrain attributes of (row, col). Callers must bounds-check
// first; out-of-range coordinates are the caller's responsibility.
func (g *Grid) At(row, col int) Terrain {
	i := g.Index(row, col)
	return Terrain{
		Vegetation: g.vegetation[i],
		Elevation:  g.elevation[i],
		WindDir:    g.windDir[i],
		WindSpeed:  g.windSpeed[i],
	}
}

// Set writes the terrain attributes of (row, col). Only used while building
// a landscape; never called during a run.
func (g *Grid) Set(row, col int, t Terrain) {
	i := g.Index(row, col)
	g.vegetation[i] = t.Vegetation
	g.elevation[i] = t.Elevation
	g.windDir[i] = t.WindDir
	g.windSpeed[i] = t.WindSpeed
}

// Fill assigns the same terrain attributes to every cell.
func (g *Grid) Fill(t Terrain) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.Set(r, c, t)
		}
	}
}

// MaxVegetation returns the highest burnable vegetation class present, or -1
// if every cell is non-burnable. Used to size-check intercept vectors before
// a run.
func (g *Grid) MaxVegetation() int {
	max := -1
	for _, v := range g.vegetation {
		if v != NonBurnable && v > max {
			max = v
		}
	}
	return max
}
