// Package layout computes the distribution directory layout and artifact
// names shared by the build and release jobs.
package layout
