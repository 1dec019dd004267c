package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
		field   string
	}{
		{
			name:   "defaults_are_valid",
			modify: func(*Config) {},
		},
		{
			name:    "empty_project_name",
			modify:  func(c *Config) { c.Defaults.ProjectName = "  " },
			wantErr: ErrInvalidConfig,
			field:   KeyProjectName,
		},
		{
			name:    "unknown_package_manager",
			modify:  func(c *Config) { c.Defaults.PackageManager = "bun" },
			wantErr: ErrInvalidPackageManager,
			field:   KeyPackageManager,
		},
		{
			name:    "unknown_log_level",
			modify:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: ErrInvalidLogLevel,
			field:   KeyLogLevel,
		},
		{
			name:    "unknown_log_format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: ErrInvalidLogFormat,
			field:   KeyLogFormat,
		},
		{
			name:    "dynamic_token_in_templates_dir",
			modify:  func(c *Config) { c.Templates.Dir = "${TEMPLATES}/api" },
			wantErr: ErrDynamicToken,
			field:   KeyTemplatesDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var verrs *ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected *ValidationErrors, got %T", err)
			}
			if verrs.Errors[0].Field != tt.field {
				t.Errorf("Field = %q, want %q", verrs.Errors[0].Field, tt.field)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "validation failed with 2 error(s)") {
		t.Errorf("Error() = %q", msg)
	}
	if !strings.Contains(msg, `(got: loud)`) {
		t.Errorf("Error() missing offending value: %q", msg)
	}
}
