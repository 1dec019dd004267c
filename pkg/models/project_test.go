package models_test

import (
	"testing"

	"github.com/restsnap/restsnap/pkg/models"
)

func TestPackageManagerIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pm    models.PackageManager
		valid bool
	}{
		{"npm is valid", models.PackageManagerNPM, true},
		{"yarn is valid", models.PackageManagerYarn, true},
		{"empty is invalid", models.PackageManager(""), false},
		{"pnpm is invalid", models.PackageManager("pnpm"), false},
		{"NPM uppercase is invalid", models.PackageManager("NPM"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pm.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestParsePackageManager(t *testing.T) {
	pm, err := models.ParsePackageManager("yarn")
	if err != nil {
		t.Fatalf("ParsePackageManager(yarn) error: %v", err)
	}
	if pm != models.PackageManagerYarn {
		t.Errorf("got %q, want yarn", pm)
	}

	if _, err := models.ParsePackageManager("bun"); err == nil {
		t.Error("expected error for unsupported manager")
	}
}

func TestPackageManagerCommands(t *testing.T) {
	if got := models.PackageManagerNPM.RunScript("dev"); got != "npm run dev" {
		t.Errorf("npm RunScript = %q", got)
	}
	if got := models.PackageManagerYarn.RunScript("dev"); got != "yarn dev" {
		t.Errorf("yarn RunScript = %q", got)
	}
	args := models.PackageManagerYarn.InstallArgs()
	if len(args) != 1 || args[0] != "install" {
		t.Errorf("InstallArgs = %v, want [install]", args)
	}
}

func TestValidPackageManagers(t *testing.T) {
	got := models.ValidPackageManagers()
	if len(got) != 2 || got[0] != models.DefaultPackageManager {
		t.Errorf("ValidPackageManagers() = %v, want npm first", got)
	}
}
