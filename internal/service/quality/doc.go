// Package quality implements the verification jobs: formatting, linting,
// type checking, the test suite and license collection. Each job is a thin
// wrapper over one or two external-tool invocations with no internal logic.
package quality
