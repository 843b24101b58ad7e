// Package config provides configuration loading and access for the
// simulator and its tooling.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/wildfire/fire"
	"github.com/pthm-cable/wildfire/landscape"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Grid         GridConfig         `yaml:"grid"`
	Coefficients CoefficientsConfig `yaml:"coefficients"`
	Spread       SpreadConfig       `yaml:"spread"`
	Ignitions    []IgnitionConfig   `yaml:"ignitions"`
	Generation   GenerationConfig   `yaml:"generation"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
}

// GridConfig holds landscape dimensions.
type GridConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Resolution float64 `yaml:"resolution"` // cell size multiplier for spread distances
}

// CoefficientsConfig holds the fitted spread-model parameters.
type CoefficientsConfig struct {
	VegIntercepts []float64 `yaml:"vegetation_intercepts"` // indexed by vegetation class
	Slope         float64   `yaml:"slope"`
	Wind          float64   `yaml:"wind"`
}

// SpreadConfig holds run parameters.
type SpreadConfig struct {
	UpperLimit float64 `yaml:"upper_limit"` // probability cap in [0,1]
	MaxSteps   int     `yaml:"max_steps"`   // 0 = 10 * rows * cols
	Policy     string  `yaml:"policy"`      // "stochastic" or "threshold"
}

// IgnitionConfig is one seed cell burning at step 1.
type IgnitionConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// GenerationConfig holds procedural landscape parameters. Angles are in
// degrees here and converted when building GenParams.
type GenerationConfig struct {
	Relief            float64 `yaml:"relief"`
	Scale             float64 `yaml:"scale"`
	Octaves           int     `yaml:"octaves"`
	Lacunarity        float64 `yaml:"lacunarity"`
	Gain              float64 `yaml:"gain"`
	VegClasses        int     `yaml:"veg_classes"`
	NonBurnableThresh float64 `yaml:"non_burnable_threshold"`
	WindBaseDirDeg    float64 `yaml:"wind_base_dir_deg"`
	WindDirSpreadDeg  float64 `yaml:"wind_dir_spread_deg"`
	WindBaseSpeed     float64 `yaml:"wind_base_speed"`
	WindSpeedVar      float64 `yaml:"wind_speed_var"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogSteps bool `yaml:"log_steps"` // log every step record via slog
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects structurally unusable configurations before any run
// starts.
func (c *Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("config: grid %dx%d is not positive", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Spread.Policy != "stochastic" && c.Spread.Policy != "threshold" {
		return fmt.Errorf("config: unknown policy %q", c.Spread.Policy)
	}
	if c.Spread.UpperLimit < 0 || c.Spread.UpperLimit > 1 {
		return fmt.Errorf("%w: upper limit %v outside [0,1]",
			fire.ErrMalformedCoefficients, c.Spread.UpperLimit)
	}
	return c.FireCoefficients().Validate()
}

// FireCoefficients converts the coefficient section to model parameters.
func (c *Config) FireCoefficients() fire.Coefficients {
	return fire.Coefficients{
		VegIntercepts: c.Coefficients.VegIntercepts,
		Slope:         c.Coefficients.Slope,
		Wind:          c.Coefficients.Wind,
	}
}

// GenParams converts the generation section to landscape parameters.
func (c *Config) GenParams() landscape.GenParams {
	const degToRad = math.Pi / 180
	return landscape.GenParams{
		Relief:            c.Generation.Relief,
		Scale:             c.Generation.Scale,
		Octaves:           c.Generation.Octaves,
		Lacunarity:        c.Generation.Lacunarity,
		Gain:              c.Generation.Gain,
		VegClasses:        c.Generation.VegClasses,
		NonBurnableThresh: c.Generation.NonBurnableThresh,
		WindBaseDir:       c.Generation.WindBaseDirDeg * degToRad,
		WindDirSpread:     c.Generation.WindDirSpreadDeg * degToRad,
		WindBaseSpeed:     c.Generation.WindBaseSpeed,
		WindSpeedVar:      c.Generation.WindSpeedVar,
	}
}

// IgnitionCells returns the configured seed cells, defaulting to a single
// ignition at the grid center when none are configured.
func (c *Config) IgnitionCells() []fire.Cell {
	if len(c.Ignitions) == 0 {
		return []fire.Cell{{Row: c.Grid.Rows / 2, Col: c.Grid.Cols / 2}}
	}
	cells := make([]fire.Cell, len(c.Ignitions))
	for i, ig := range c.Ignitions {
		cells[i] = fire.Cell{Row: ig.Row, Col: ig.Col}
	}
	return cells
}

// Policy builds the acceptance policy named by the spread section. The seed
// is only consulted for the stochastic policy.
func (c *Config) Policy(seed int64) fire.Policy {
	if c.Spread.Policy == "threshold" {
		return fire.Threshold{}
	}
	return fire.NewStochasticSeeded(seed)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
