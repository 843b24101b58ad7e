package landscape

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Layer file names used by Save and Load. Each file is a plain R×C matrix
// of numbers, one row per line, no header.
const (
	vegetationFile = "vegetation.csv"
	elevationFile  = "elevation.csv"
	windDirFile    = "wind_dir.csv"
	windSpeedFile  = "wind_speed.csv"
)

// Save writes the four terrain layers as CSV matrices into dir, creating it
// if needed.
func (g *Grid) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating landscape directory: %w", err)
	}

	writeLayer := func(name string, at func(i int) float64) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		row := make([]string, g.cols)
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				row[c] = strconv.FormatFloat(at(g.Index(r, c)), 'g', -1, 64)
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
		}
		w.Flush()
		return w.Error()
	}

	if err := writeLayer(vegetationFile, func(i int) float64 { return float64(g.vegetation[i]) }); err != nil {
		return err
	}
	if err := writeLayer(elevationFile, func(i int) float64 { return g.elevation[i] }); err != nil {
		return err
	}
	if err := writeLayer(windDirFile, func(i int) float64 { return g.windDir[i] }); err != nil {
		return err
	}
	return writeLayer(windSpeedFile, func(i int) float64 { return g.windSpeed[i] })
}

// Load reads a landscape previously written by Save. All four layer files
// must be present and share the same dimensions.
func Load(dir string, resolution float64) (*Grid, error) {
	veg, err := readMatrix(filepath.Join(dir, vegetationFile))
	if err != nil {
		return nil, err
	}
	elev, err := readMatrix(filepath.Join(dir, elevationFile))
	if err != nil {
		return nil, err
	}
	wdir, err := readMatrix(filepath.Join(dir, windDirFile))
	if err != nil {
		return nil, err
	}
	wspd, err := readMatrix(filepath.Join(dir, windSpeedFile))
	if err != nil {
		return nil, err
	}

	rows := len(veg)
	if rows == 0 {
		return nil, fmt.Errorf("landscape %s: empty vegetation layer", dir)
	}
	cols := len(veg[0])
	for _, layer := range [][][]float64{elev, wdir, wspd} {
		if len(layer) != rows || len(layer[0]) != cols {
			return nil, fmt.Errorf("landscape %s: layer dimensions differ", dir)
		}
	}

	g := NewGrid(rows, cols, resolution)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, Terrain{
				Vegetation: int(veg[r][c]),
				Elevation:  elev[r][c],
				WindDir:    wdir[r][c],
				WindSpeed:  wspd[r][c],
			})
		}
	}
	return g, nil
}

// readMatrix parses a CSV file as a rectangular float matrix.
func readMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening layer: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	out := make([][]float64, len(records))
	for r, rec := range records {
		row := make([]float64, len(rec))
		for c, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %s row %d col %d: %w", path, r, c, err)
			}
			row[c] = v
		}
		out[r] = row
	}
	return out, nil
}
