// Package config defines the pipeline settings used by every job and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type names the project, its manifest and entry point, the
// distribution directory roots, and the external tool commands.
package config
