// Package version exposes build metadata for the pipeline tool.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds. This is the
// version of romt-pipeline itself, not the project version resolved from
// the manifest by package manifest.
package version
