package config

import (
	"regexp"
	"slices"
	"strings"
)

// Dynamic token patterns that must not survive into a config value.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),   // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`), // {{VAR}}
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json", "logfmt"}
)

// Validate checks the configuration and returns *ValidationErrors listing
// every problem found.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if strings.TrimSpace(cfg.Defaults.ProjectName) == "" {
		errs = append(errs, ValidationError{
			Field:   KeyProjectName,
			Message: "must not be empty",
			Wrapped: ErrInvalidConfig,
		})
	}
	if !cfg.Defaults.PackageManager.IsValid() {
		errs = append(errs, ValidationError{
			Field:   KeyPackageManager,
			Message: "must be one of: npm, yarn",
			Value:   string(cfg.Defaults.PackageManager),
			Wrapped: ErrInvalidPackageManager,
		})
	}
	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   KeyLogLevel,
			Message: "must be one of: " + strings.Join(validLogLevels, ", "),
			Value:   cfg.Log.Level,
			Wrapped: ErrInvalidLogLevel,
		})
	}
	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		errs = append(errs, ValidationError{
			Field:   KeyLogFormat,
			Message: "must be one of: " + strings.Join(validLogFormats, ", "),
			Value:   cfg.Log.Format,
			Wrapped: ErrInvalidLogFormat,
		})
	}

	for field, value := range map[string]string{
		KeyProjectName:  cfg.Defaults.ProjectName,
		KeyTemplatesDir: cfg.Templates.Dir,
	} {
		if containsDynamicToken(value) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "contains an unexpanded variable",
				Value:   value,
				Wrapped: ErrDynamicToken,
			})
		}
	}

	if len(errs) > 0 {
		slices.SortStableFunc(errs, func(a, b ValidationError) int {
			return strings.Compare(a.Field, b.Field)
		})
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func containsDynamicToken(s string) bool {
	for _, re := range dynamicTokenPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
