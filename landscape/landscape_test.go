package landscape

import (
	"math"
	"testing"
)

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3, 0)
	if g.Rows() != 1 || g.Cols() != 1 {
		t.Errorf("grid = %dx%d, want 1x1", g.Rows(), g.Cols())
	}
	if g.Resolution() != 1 {
		t.Errorf("resolution = %v, want 1", g.Resolution())
	}
}

func TestSetAtRoundtrip(t *testing.T) {
	g := NewGrid(3, 4, 2)
	want := Terrain{Vegetation: 2, Elevation: 812.5, WindDir: 1.25, WindSpeed: 6.5}
	g.Set(1, 3, want)

	if got := g.At(1, 3); got != want {
		t.Errorf("At(1,3) = %+v, want %+v", got, want)
	}
	if got := g.At(0, 0); got != (Terrain{}) {
		t.Errorf("untouched cell = %+v, want zero terrain", got)
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(3, 4, 1)
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 4, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestMaxVegetationIgnoresNonBurnable(t *testing.T) {
	g := NewGrid(2, 2, 1)
	g.Fill(Terrain{Vegetation: NonBurnable})
	if got := g.MaxVegetation(); got != -1 {
		t.Errorf("all non-burnable: MaxVegetation = %d, want -1", got)
	}

	g.Set(0, 1, Terrain{Vegetation: 3})
	g.Set(1, 0, Terrain{Vegetation: 1})
	if got := g.MaxVegetation(); got != 3 {
		t.Errorf("MaxVegetation = %d, want 3", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := GenParams{}
	a := Generate(16, 12, 1, p, 77)
	b := Generate(16, 12, 1, p, 77)

	for r := 0; r < 16; r++ {
		for c := 0; c < 12; c++ {
			if a.At(r, c) != b.At(r, c) {
				t.Fatalf("same seed diverged at (%d,%d): %+v vs %+v", r, c, a.At(r, c), b.At(r, c))
			}
		}
	}

	other := Generate(16, 12, 1, p, 78)
	same := true
	for r := 0; r < 16 && same; r++ {
		for c := 0; c < 12; c++ {
			if a.At(r, c) != other.At(r, c) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical landscapes")
	}
}

func TestGenerateRanges(t *testing.T) {
	p := GenParams{
		Relief:        300,
		VegClasses:    4,
		WindBaseDir:   math.Pi,
		WindDirSpread: 0.5,
		WindBaseSpeed: 3,
		WindSpeedVar:  2,
	}
	g := Generate(24, 24, 1, p, 5)

	sawBurnable := false
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := g.At(r, c)
			if cell.Vegetation == NonBurnable {
				continue
			}
			sawBurnable = true
			if cell.Vegetation < 0 || cell.Vegetation >= p.VegClasses {
				t.Fatalf("vegetation class %d at (%d,%d) outside [0,%d)", cell.Vegetation, r, c, p.VegClasses)
			}
			if cell.Elevation < 0 || cell.Elevation > p.Relief {
				t.Fatalf("elevation %v at (%d,%d) outside [0,%v]", cell.Elevation, r, c, p.Relief)
			}
			if cell.WindSpeed < 0 {
				t.Fatalf("negative wind speed at (%d,%d)", r, c)
			}
			if cell.WindDir < 0 || cell.WindDir >= 2*math.Pi {
				t.Fatalf("wind direction %v at (%d,%d) not normalized", cell.WindDir, r, c)
			}
		}
	}
	if !sawBurnable {
		t.Error("generated landscape has no burnable cells")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	src := Generate(9, 7, 2, GenParams{VegClasses: 3}, 123)
	if err := src.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(dir, 2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Rows() != 9 || got.Cols() != 7 {
		t.Fatalf("loaded grid = %dx%d, want 9x7", got.Rows(), got.Cols())
	}

	for r := 0; r < 9; r++ {
		for c := 0; c < 7; c++ {
			a, b := src.At(r, c), got.At(r, c)
			if a.Vegetation != b.Vegetation {
				t.Fatalf("vegetation mismatch at (%d,%d): %d vs %d", r, c, a.Vegetation, b.Vegetation)
			}
			if math.Abs(a.Elevation-b.Elevation) > 1e-9 ||
				math.Abs(a.WindDir-b.WindDir) > 1e-9 ||
				math.Abs(a.WindSpeed-b.WindSpeed) > 1e-9 {
				t.Fatalf("layer mismatch at (%d,%d): %+v vs %+v", r, c, a, b)
			}
		}
	}
}

func TestLoadMissingLayer(t *testing.T) {
	if _, err := Load(t.TempDir(), 1); err == nil {
		t.Error("expected error loading from an empty directory")
	}
}
