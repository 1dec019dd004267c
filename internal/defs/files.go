// Package defs holds file names and permission bits shared by the
// generator packages.
package defs

import "io/fs"

// File names inside a generated project.
const (
	// PackageJSON is the package descriptor rewritten after copying.
	PackageJSON = "package.json"

	// Dockerfile is the container build file added when dockerizing.
	Dockerfile = "Dockerfile"

	// DockerCompose is the compose file added when dockerizing.
	DockerCompose = "docker-compose.yml"

	// EnvExample is the environment template users copy to .env.
	EnvExample = ".env.example"
)

// Permissions used when writing the generated tree.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
	ExecPerm fs.FileMode = 0o755
)

// Configuration locations.
const (
	// ConfigDirName is the per-user configuration directory under $HOME.
	ConfigDirName = ".restsnap"

	// ConfigFileName is the config file inside ConfigDirName.
	ConfigFileName = "config.yaml"

	// EnvPrefix prefixes every environment override (RESTSNAP_LOG_LEVEL, ...).
	EnvPrefix = "RESTSNAP"
)
