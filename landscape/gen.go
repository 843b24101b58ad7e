package landscape

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenParams controls procedural landscape generation. Zero values fall back
// to the defaults applied in Generate.
type GenParams struct {
	// Elevation field
	Relief     float64 // peak-to-valley elevation range in meters
	Scale      float64 // base noise frequency
	Octaves    int     // FBM octaves
	Lacunarity float64 // frequency multiplier per octave
	Gain       float64 // amplitude multiplier per octave

	// Vegetation field
	VegClasses        int     // number of burnable classes (0..VegClasses-1)
	NonBurnableThresh float64 // vegetation noise above this becomes NonBurnable; >= 1 disables

	// Wind field
	WindBaseDir   float64 // radians, prevailing direction
	WindDirSpread float64 // max deviation (radians) from the prevailing direction
	WindBaseSpeed float64 // m/s
	WindSpeedVar  float64 // max speed deviation (m/s)
}

// Generate builds a seeded synthetic landscape: FBM elevation, vegetation
// classes from a second thresholded noise field, and a smoothly varying wind
// field. The same seed and parameters always produce the same grid.
func Generate(rows, cols int, resolution float64, p GenParams, seed int64) *Grid {
	if p.Relief <= 0 {
		p.Relief = 200
	}
	if p.Scale <= 0 {
		p.Scale = 4.0
	}
	if p.Octaves <= 0 {
		p.Octaves = 4
	}
	if p.Lacunarity <= 0 {
		p.Lacunarity = 2.0
	}
	if p.Gain <= 0 {
		p.Gain = 0.5
	}
	if p.VegClasses <= 0 {
		p.VegClasses = 3
	}
	if p.NonBurnableThresh <= 0 {
		p.NonBurnableThresh = 0.85
	}
	if p.WindBaseSpeed < 0 {
		p.WindBaseSpeed = 0
	}

	g := NewGrid(rows, cols, resolution)

	// Independent noise fields per layer, offset seeds so the layers are
	// uncorrelated while staying reproducible from a single seed.
	elevNoise := opensimplex.New(seed)
	vegNoise := opensimplex.New(seed + 1)
	windNoise := opensimplex.New(seed + 2)

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			u := float64(c) / float64(g.cols)
			v := float64(r) / float64(g.rows)

			elev := fbm(elevNoise, u*p.Scale, v*p.Scale, p.Octaves, p.Lacunarity, p.Gain)
			veg := fbm(vegNoise, u*p.Scale, v*p.Scale, p.Octaves, p.Lacunarity, p.Gain)
			wind := windNoise.Eval2(u*p.Scale*0.5, v*p.Scale*0.5)

			t := Terrain{
				Elevation: (elev + 1) * 0.5 * p.Relief,
				WindDir:   wrapAngle(p.WindBaseDir + wind*p.WindDirSpread),
				WindSpeed: math.Max(0, p.WindBaseSpeed+wind*p.WindSpeedVar),
			}

			// Map vegetation noise [-1,1] to a class; the top of the range
			// becomes non-burnable pockets (rock, water, bare ground).
			vn := (veg + 1) * 0.5
			if vn >= p.NonBurnableThresh {
				t.Vegetation = NonBurnable
			} else {
				cls := int(vn / p.NonBurnableThresh * float64(p.VegClasses))
				if cls >= p.VegClasses {
					cls = p.VegClasses - 1
				}
				t.Vegetation = cls
			}

			g.Set(r, c, t)
		}
	}

	return g
}

// fbm layers octaves of simplex noise; result is roughly in [-1, 1].
func fbm(n opensimplex.Noise, x, y float64, octaves int, lacunarity, gain float64) float64 {
	var sum, amp, norm float64
	amp = 1.0
	freq := 1.0
	for o := 0; o < octaves; o++ {
		sum += amp * n.Eval2(x*freq, y*freq)
		norm += amp
		freq *= lacunarity
		amp *= gain
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// wrapAngle normalizes an angle to [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
