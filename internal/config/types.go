package config

import "github.com/restsnap/restsnap/pkg/models"

// Config is the user configuration for restsnap.
type Config struct {
	Defaults  DefaultsConfig
	Templates TemplatesConfig
	Install   InstallConfig
	Log       LogConfig
	UI        UIConfig

	// Source is the config file that was read, or empty when none existed.
	Source string
}

// DefaultsConfig seeds the answers offered by "restsnap new".
type DefaultsConfig struct {
	ProjectName    string
	PackageManager models.PackageManager
	Dockerize      bool
}

// TemplatesConfig selects the template root. An empty Dir uses the
// templates compiled into the binary.
type TemplatesConfig struct {
	Dir string
}

// InstallConfig controls the dependency installation stage.
type InstallConfig struct {
	Skip bool
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string
	Format string
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	NoColor bool
}
