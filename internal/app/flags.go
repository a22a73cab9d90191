package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int

	ConfigPath string

	RecordPath  string
	RecordEvery int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 256, Height: 144, Scale: 5, TPS: 60, RecordPath: "frames.rgba.gz", RecordEvery: 8}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML solver configuration file")
	fs.StringVar(&c.RecordPath, "record", c.RecordPath, "output path for recorded frames")
	fs.IntVar(&c.RecordEvery, "record-every", c.RecordEvery, "record every Nth rendered frame")
}
