package config

// StaggerConfig configures the staggered chip grid.
type StaggerConfig struct {
	Rows        int `toml:"rows"`
	ChipPadding int `toml:"chip_padding"`
}

// MoreLessConfig configures the collapsible text screen.
type MoreLessConfig struct {
	MaxLines          int    `toml:"max_lines"`
	Width             int    `toml:"width"`
	CollapsedTag      string `toml:"collapsed_tag"`
	ExpandedTag       string `toml:"expanded_tag"`
	CollapsedTagSpace string `toml:"collapsed_tag_space"`
	ExpandedTagSpace  string `toml:"expanded_tag_space"`
}

// Config represents the runtime application configuration in config.toml
type Config struct {
	Screen   string         `toml:"screen"`
	Theme    string         `toml:"theme"`
	Stagger  StaggerConfig  `toml:"stagger"`
	MoreLess MoreLessConfig `toml:"more_less"`
	Keys     InputConfig    `toml:"keys"`
}

// ConfigBundle packages the effective config with where it came from.
type ConfigBundle struct {
	Config    Config
	ConfigDir string
	Path      string
	// Err is set when config.toml could not be read or decoded and
	// Config holds the defaults instead.
	Err error
}
