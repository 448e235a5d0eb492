package config

// LayoutConfig holds the breakpoints and the pixel size of one terminal
// cell, used to turn a terminal size into a window size in pixels.
type LayoutConfig struct {
	BreakpointWidth  int `toml:"breakpoint_width"`
	BreakpointHeight int `toml:"breakpoint_height"`
	CellWidth        int `toml:"cell_width"`
	CellHeight       int `toml:"cell_height"`
}

// AnimationConfig holds the debounce and playback timings in milliseconds.
type AnimationConfig struct {
	PollMS  int `toml:"poll_ms"`
	QuietMS int `toml:"quiet_ms"`
	FrameMS int `toml:"frame_ms"`
}

// EndpointsConfig lists the remote services. MapURL may contain {lat} and
// {lon} placeholders.
type EndpointsConfig struct {
	Forecast string `toml:"forecast"`
	Search   string `toml:"search"`
	Reverse  string `toml:"reverse"`
	IPLookup string `toml:"ip_lookup"`
	MapURL   string `toml:"map_url"`
}

// ConditionStyle is the palette and artwork of one weather condition.
type ConditionStyle struct {
	Main      string `toml:"main"`
	Title     string `toml:"title"`
	Text      string `toml:"text"`
	Divider   string `toml:"divider"`
	Animation string `toml:"animation"`
	Icon      string `toml:"icon"`
}

// Config represents config.toml.
type Config struct {
	Units          string   `toml:"units"`
	City           string   `toml:"city"`
	Country        string   `toml:"country"`
	Latitude       *float64 `toml:"latitude"`
	Longitude      *float64 `toml:"longitude"`
	APIKey         string   `toml:"api_key"`
	RefreshMinutes int      `toml:"refresh_minutes"`
	AssetsDir      string   `toml:"assets_dir"`
	TimeoutSeconds int      `toml:"timeout_seconds"`

	Layout     LayoutConfig              `toml:"layout"`
	Animation  AnimationConfig           `toml:"animation"`
	Endpoints  EndpointsConfig           `toml:"endpoints"`
	Keys       InputConfig               `toml:"keys"`
	Conditions map[string]ConditionStyle `toml:"conditions"`
}

// ConfigBundle packages the effective config with where it came from.
type ConfigBundle struct {
	Config       Config
	ConfigDir    string
	Path         string
	Bootstrapped bool
}
