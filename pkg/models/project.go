package models

import "fmt"

// PackageManager identifies the Node.js package manager used to install
// dependencies of a generated project.
type PackageManager string

const (
	// PackageManagerNPM installs with "npm install" (default).
	PackageManagerNPM PackageManager = "npm"

	// PackageManagerYarn installs with "yarn install".
	PackageManagerYarn PackageManager = "yarn"
)

// DefaultPackageManager is used when neither flags nor config select one.
const DefaultPackageManager = PackageManagerNPM

// ValidPackageManagers returns all supported package managers in display order.
func ValidPackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNPM, PackageManagerYarn}
}

// IsValid checks if the package manager is a supported value.
func (p PackageManager) IsValid() bool {
	switch p {
	case PackageManagerNPM, PackageManagerYarn:
		return true
	}
	return false
}

// Binary returns the executable name invoked for this package manager.
func (p PackageManager) Binary() string {
	return string(p)
}

// InstallArgs returns the arguments passed to Binary to install dependencies.
func (p PackageManager) InstallArgs() []string {
	return []string{"install"}
}

// RunScript returns the command line that runs a package.json script.
func (p PackageManager) RunScript(script string) string {
	if p == PackageManagerYarn {
		return fmt.Sprintf("yarn %s", script)
	}
	return fmt.Sprintf("npm run %s", script)
}

// ParsePackageManager converts a user-supplied string to a PackageManager.
func ParsePackageManager(s string) (PackageManager, error) {
	p := PackageManager(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unsupported package manager %q: must be one of: npm, yarn", s)
	}
	return p, nil
}
