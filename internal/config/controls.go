package config

// InputConfig defines the user-configurable keybindings.
type InputConfig struct {
	Refresh string `toml:"refresh"`
	Copy    string `toml:"copy"`
	OpenMap string `toml:"open_map"`
	Quit    string `toml:"quit"`

	// Internal computed set for fast lookup
	QuitKeys []string `toml:"-"`
}

// InitControls fills the computed key sets. It should be called after
// loading the config.
func (c *InputConfig) InitControls() {
	// ctrl+c always quits
	c.QuitKeys = []string{"ctrl+c"}
	if c.Quit != "" && c.Quit != "ctrl+c" {
		c.QuitKeys = append(c.QuitKeys, c.Quit)
	}
}
