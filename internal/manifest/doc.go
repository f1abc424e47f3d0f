// Package manifest resolves the project version from the build manifest.
//
// The manifest is treated as a line-oriented key/value file; only a strict,
// fully anchored `version = "digits-and-dots"` assignment is accepted.
package manifest
