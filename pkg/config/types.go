package config

// Config is the fully resolved configuration
type Config struct {
	Rules  Thresholds `koanf:"rules"`
	Paths  Paths      `koanf:"paths"`
	Output Output     `koanf:"output"`
}

// Thresholds drives the lint heuristics
type Thresholds struct {
	MaxLines       int    `koanf:"max_lines"`
	WarnLines      int    `koanf:"warn_lines"`
	MaxTotalLines  int    `koanf:"max_total_lines"`
	MaxAlwaysApply int    `koanf:"max_always_apply"`
	Extension      string `koanf:"extension"`
}

// Paths lists the project-relative locations builder-doctor inspects
type Paths struct {
	RuleFolders []string `koanf:"rule_folders"`
	IgnoreFiles []string `koanf:"ignore_files"`
}

// Output controls terminal rendering
type Output struct {
	Color string `koanf:"color"`
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
