// Package toolchaintest provides a recording Toolchain fake for job tests.
package toolchaintest
