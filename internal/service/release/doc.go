// Package release implements the release job: a strictly ordered pipeline
// of named steps that resets the distribution state, builds the current
// platform's executable, exports frozen dependencies, builds and validates
// the sdist and wheel archives, and finally prints the manual-steps
// checklist for everything that cannot be automated from one host.
package release
