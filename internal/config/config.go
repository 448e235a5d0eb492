package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrUnknownCondition is returned for a weather condition missing from the
// palette table.
var ErrUnknownCondition = errors.New("unknown weather condition")

const (
	configFileName = "config.toml"
	envFileName    = ".env"
)

var validUnits = map[string]bool{"metric": true, "imperial": true, "standard": true}

// DefaultConditions returns the built-in palette, one entry per condition
// OpenWeatherMap reports as weather.main.
func DefaultConditions() map[string]ConditionStyle {
	return map[string]ConditionStyle{
		"Clear": {
			Main: "#FFF2D1", Title: "#FFF2D1", Text: "#bd6a1f", Divider: "#f2eddf",
			Animation: "animations/clear", Icon: "icons/Clear.png",
		},
		"Rain": {
			Main: "#3079FF", Title: "#3079FF", Text: "#c1e1ff", Divider: "#c1c1c1",
			Animation: "animations/rain", Icon: "icons/Rain.png",
		},
		"Snow": {
			Main: "#3079FF", Title: "#3079FF", Text: "#c1e1ff", Divider: "#c1c1c1",
			Animation: "animations/snow", Icon: "icons/Snow.png",
		},
		"Clouds": {
			Main: "#F7F7F7", Title: "#F7F7F7", Text: "#7a8aa5", Divider: "#d9d9d9",
			Animation: "animations/cloudy", Icon: "icons/Clouds.png",
		},
		"Thunderstorm": {
			Main: "#F7F7F7", Title: "#F7F7F7", Text: "#e19329", Divider: "#e6e6e6",
			Animation: "animations/thunder", Icon: "icons/Thunderstorm.png",
		},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{
		Units:          "metric",
		RefreshMinutes: 30,
		TimeoutSeconds: 10,
		Layout: LayoutConfig{
			BreakpointWidth:  1000,
			BreakpointHeight: 600,
			CellWidth:        8,
			CellHeight:       16,
		},
		Animation: AnimationConfig{
			PollMS:  50,
			QuietMS: 100,
			FrameMS: 50,
		},
		Endpoints: EndpointsConfig{
			Forecast: "https://api.openweathermap.org/data/2.5/forecast",
			Search:   "https://nominatim.openstreetmap.org/search",
			Reverse:  "https://nominatim.openstreetmap.org/reverse",
			IPLookup: "https://ipapi.co/json/",
			MapURL:   "https://openweathermap.org/weathermap?basemap=map&cities=true&layer=temperature&lat={lat}&lon={lon}&zoom=10",
		},
		Keys: InputConfig{
			Refresh: "r",
			Copy:    "y",
			OpenMap: "o",
			Quit:    "q",
		},
		Conditions: DefaultConditions(),
	}
	cfg.Keys.InitControls()
	return cfg
}

// ApplyDefaults fills every missing field from DefaultConfig. Palette
// entries are merged per condition and per color.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()

	if strings.TrimSpace(c.Units) == "" {
		c.Units = d.Units
	}
	if c.RefreshMinutes == 0 {
		c.RefreshMinutes = d.RefreshMinutes
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = d.TimeoutSeconds
	}

	if c.Layout.BreakpointWidth == 0 {
		c.Layout.BreakpointWidth = d.Layout.BreakpointWidth
	}
	if c.Layout.BreakpointHeight == 0 {
		c.Layout.BreakpointHeight = d.Layout.BreakpointHeight
	}
	if c.Layout.CellWidth == 0 {
		c.Layout.CellWidth = d.Layout.CellWidth
	}
	if c.Layout.CellHeight == 0 {
		c.Layout.CellHeight = d.Layout.CellHeight
	}

	if c.Animation.PollMS == 0 {
		c.Animation.PollMS = d.Animation.PollMS
	}
	if c.Animation.QuietMS == 0 {
		c.Animation.QuietMS = d.Animation.QuietMS
	}
	if c.Animation.FrameMS == 0 {
		c.Animation.FrameMS = d.Animation.FrameMS
	}

	fill := func(dst *string, src string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = src
		}
	}
	fill(&c.Endpoints.Forecast, d.Endpoints.Forecast)
	fill(&c.Endpoints.Search, d.Endpoints.Search)
	fill(&c.Endpoints.Reverse, d.Endpoints.Reverse)
	fill(&c.Endpoints.IPLookup, d.Endpoints.IPLookup)
	fill(&c.Endpoints.MapURL, d.Endpoints.MapURL)

	fill(&c.Keys.Refresh, d.Keys.Refresh)
	fill(&c.Keys.Copy, d.Keys.Copy)
	fill(&c.Keys.OpenMap, d.Keys.OpenMap)
	fill(&c.Keys.Quit, d.Keys.Quit)
	c.Keys.InitControls()

	if c.Conditions == nil {
		c.Conditions = map[string]ConditionStyle{}
	}
	for name, def := range d.Conditions {
		style := c.Conditions[name]
		fill(&style.Main, def.Main)
		fill(&style.Title, def.Title)
		fill(&style.Text, def.Text)
		fill(&style.Divider, def.Divider)
		fill(&style.Animation, def.Animation)
		fill(&style.Icon, def.Icon)
		c.Conditions[name] = style
	}
	for name, style := range c.Conditions {
		fill(&style.Title, style.Main)
		c.Conditions[name] = style
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampConfig keeps numbers in a usable range and falls back to metric for
// an unknown unit system.
func ClampConfig(cfg *Config) {
	cfg.RefreshMinutes = clamp(cfg.RefreshMinutes, 1, 24*60)
	cfg.TimeoutSeconds = clamp(cfg.TimeoutSeconds, 1, 120)

	cfg.Layout.BreakpointWidth = clamp(cfg.Layout.BreakpointWidth, 1, 100000)
	cfg.Layout.BreakpointHeight = clamp(cfg.Layout.BreakpointHeight, 1, 100000)
	cfg.Layout.CellWidth = clamp(cfg.Layout.CellWidth, 1, 64)
	cfg.Layout.CellHeight = clamp(cfg.Layout.CellHeight, 1, 64)

	cfg.Animation.PollMS = clamp(cfg.Animation.PollMS, 10, 5000)
	cfg.Animation.QuietMS = clamp(cfg.Animation.QuietMS, 0, 5000)
	cfg.Animation.FrameMS = clamp(cfg.Animation.FrameMS, 10, 5000)

	units := strings.ToLower(strings.TrimSpace(cfg.Units))
	if !validUnits[units] {
		log.Printf("unknown units %q, using metric", cfg.Units)
		units = "metric"
	}
	cfg.Units = units
}

// Condition returns the palette for a condition name. A name missing from
// the table is a configuration error.
func (c Config) Condition(name string) (ConditionStyle, error) {
	style, ok := c.Conditions[name]
	if !ok {
		return ConditionStyle{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownCondition, name, strings.Join(c.ConditionNames(), ", "))
	}
	return style, nil
}

// ConditionNames lists the palette table in name order.
func (c Config) ConditionNames() []string {
	names := make([]string, 0, len(c.Conditions))
	for name := range c.Conditions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Timings converts the animation section to durations.
func (a AnimationConfig) Timings() (poll, quiet, frame time.Duration) {
	return time.Duration(a.PollMS) * time.Millisecond,
		time.Duration(a.QuietMS) * time.Millisecond,
		time.Duration(a.FrameMS) * time.Millisecond
}

// Timeout is the HTTP timeout for every remote call.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RefreshInterval is the delay between automatic refreshes.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMinutes) * time.Minute
}

// MapURL fills the map template with coordinates.
func (c Config) MapURL(lat, lon float64) string {
	r := strings.NewReplacer(
		"{lat}", fmt.Sprintf("%.4f", lat),
		"{lon}", fmt.Sprintf("%.4f", lon),
	)
	return r.Replace(c.Endpoints.MapURL)
}

func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.Join(err, herr)
		}
		return filepath.Join(home, ".weather-app"), nil
	}
	return filepath.Join(configDir, "weather-app"), nil
}

// LoadEnv loads .env files from the working directory and then from
// configDir. Variables already set are never overridden, so the first file
// to define a name wins.
func LoadEnv(configDir string) {
	var files []string
	if wd, err := os.Getwd(); err == nil {
		files = append(files, filepath.Join(wd, envFileName))
	}
	files = append(files, filepath.Join(configDir, envFileName))

	seen := map[string]bool{}
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Printf("could not load %s: %v", f, err)
			continue
		}
		log.Printf("Loaded environment from: %s", f)
	}
}

// Decode parses config.toml content. Environment references such as
// ${OPENWEATHER_API_KEY} are expanded first. Defaults and clamping are
// applied to the result.
func Decode(data []byte) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(string(data)), &cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config file: %w", err)
	}
	cfg.ApplyDefaults()
	ClampConfig(&cfg)
	return cfg, nil
}

// LoadConfig reads config.toml from configDir, bootstrapping the directory
// on first run. A relative assets_dir is resolved against configDir.
func LoadConfig(configDir string) (ConfigBundle, error) {
	bundle := ConfigBundle{ConfigDir: configDir, Path: filepath.Join(configDir, configFileName)}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return bundle, fmt.Errorf("could not create config dir: %w", err)
	}

	if _, err := os.Stat(bundle.Path); errors.Is(err, os.ErrNotExist) {
		log.Printf("No config found, bootstrapping: %s", configDir)
		if err := bootstrapCopy(configDir); err != nil {
			return bundle, fmt.Errorf("bootstrap failed: %w", err)
		}
		bundle.Bootstrapped = true
	} else if err := ensureAssets(configDir); err != nil {
		log.Printf("could not restore bundled assets: %v", err)
	}

	log.Printf("Loading config from: %s", bundle.Path)
	data, err := os.ReadFile(bundle.Path)
	if err != nil {
		return bundle, fmt.Errorf("could not read config file: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return bundle, err
	}

	if strings.TrimSpace(cfg.AssetsDir) == "" {
		cfg.AssetsDir = filepath.Join(configDir, "assets")
	} else if !filepath.IsAbs(cfg.AssetsDir) {
		cfg.AssetsDir = filepath.Join(configDir, cfg.AssetsDir)
	}

	log.Printf("Loaded config: units=%s conditions=%d breakpoints=%dx%d",
		cfg.Units, len(cfg.Conditions), cfg.Layout.BreakpointWidth, cfg.Layout.BreakpointHeight)
	bundle.Config = cfg
	return bundle, nil
}
