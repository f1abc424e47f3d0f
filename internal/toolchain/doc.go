// Package toolchain abstracts the external tools the pipeline drives: the
// dependency manager, the single-file packager, the distribution validator,
// and the free-form verification tools (formatter, linter, type checker,
// test runner, license auditor).
//
// Jobs depend on the Toolchain interface only; Shell is the production
// implementation that shells out with the command names from the
// configuration.
package toolchain
