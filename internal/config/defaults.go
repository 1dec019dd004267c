package config

import "github.com/restsnap/restsnap/pkg/models"

// Default values.
const (
	DefaultProjectName = "my-restsnap-project"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// Config keys, as they appear in config.yaml. Environment overrides use
// the RESTSNAP_ prefix with dots replaced by underscores, for example
// RESTSNAP_DEFAULTS_PACKAGE_MANAGER.
const (
	KeyProjectName    = "defaults.project_name"
	KeyPackageManager = "defaults.package_manager"
	KeyDockerize      = "defaults.dockerize"
	KeyTemplatesDir   = "templates.dir"
	KeyInstallSkip    = "install.skip"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyNoColor        = "ui.no_color"
)

// NewDefaultConfig returns a Config with every field at its default.
func NewDefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			ProjectName:    DefaultProjectName,
			PackageManager: models.DefaultPackageManager,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// defaultValues flattens NewDefaultConfig into viper keys.
func defaultValues() map[string]any {
	d := NewDefaultConfig()
	return map[string]any{
		KeyProjectName:    d.Defaults.ProjectName,
		KeyPackageManager: string(d.Defaults.PackageManager),
		KeyDockerize:      d.Defaults.Dockerize,
		KeyTemplatesDir:   d.Templates.Dir,
		KeyInstallSkip:    d.Install.Skip,
		KeyLogLevel:       d.Log.Level,
		KeyLogFormat:      d.Log.Format,
		KeyNoColor:        d.UI.NoColor,
	}
}
