// Package platform identifies the target platform of the current host.
//
// A Host value is captured once per job invocation and carried explicitly,
// so every derived path and artifact name within that invocation agrees on
// the same (architecture, operating system) pair.
package platform
