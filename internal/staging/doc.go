// Package staging provides the filesystem primitives jobs use to guarantee
// clean output areas: idempotent tree removal, directory creation, single
// file removal, and artifact copying.
package staging
