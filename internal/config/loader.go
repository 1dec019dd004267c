package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/restsnap/restsnap/internal/defs"
	"github.com/restsnap/restsnap/pkg/models"
)

// EnvConfigPath names the environment variable that overrides the config
// file location.
const EnvConfigPath = defs.EnvPrefix + "_CONFIG"

// Loader merges defaults, the config file and environment variables.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with RESTSNAP_* environment bindings.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(defs.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, val := range defaultValues() {
		v.SetDefault(key, val)
	}
	return &Loader{v: v}
}

// DefaultPath returns $RESTSNAP_CONFIG, or ~/.restsnap/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defs.ConfigDirName, defs.ConfigFileName), nil
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file is not an error; the result then carries defaults and environment
// overrides only. The returned Config is validated.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	path = expandHome(path)

	source := ""
	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
		source = path
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg := &Config{
		Defaults: DefaultsConfig{
			ProjectName:    strings.TrimSpace(l.v.GetString(KeyProjectName)),
			PackageManager: models.PackageManager(strings.ToLower(strings.TrimSpace(l.v.GetString(KeyPackageManager)))),
			Dockerize:      l.v.GetBool(KeyDockerize),
		},
		Templates: TemplatesConfig{Dir: expandHome(l.v.GetString(KeyTemplatesDir))},
		Install:   InstallConfig{Skip: l.v.GetBool(KeyInstallSkip)},
		Log: LogConfig{
			Level:  strings.ToLower(l.v.GetString(KeyLogLevel)),
			Format: strings.ToLower(l.v.GetString(KeyLogFormat)),
		},
		UI:     UIConfig{NoColor: l.v.GetBool(KeyNoColor)},
		Source: source,
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
