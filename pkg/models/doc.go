// Package models provides shared data models and types for restsnap.
//
// This package contains enums that are used across the configuration,
// wizard and generation packages.
//
// # Package Managers
//
// Generated projects install their dependencies with one of two package
// managers, represented by [PackageManager]:
//
//	pm, err := models.ParsePackageManager("yarn")
//	if err == nil {
//	    fmt.Println(pm.Binary(), pm.InstallArgs()) // yarn [install]
//	}
package models
