// Package build implements the build job: it stages clean output areas,
// drives the external single-file packager, and relocates the produced
// executable into the cross-platform collection directory under its
// version- and platform-qualified name.
package build
