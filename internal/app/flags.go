package app

import "flag"

// Config carries the GUI launch options.
type Config struct {
	Sim      string
	View     int
	HUDWidth int
	TPS      int
	Seed     int64
}

// NewConfig returns the default launch options.
func NewConfig() *Config {
	return &Config{
		Sim:      "forest",
		View:     900,
		HUDWidth: 280,
		TPS:      60,
		Seed:     1337,
	}
}

// Bind registers the options on a flag set.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.View, "view", c.View, "world view size in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
}
