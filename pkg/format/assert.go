//go:build !javafmtdebug

package format

// assert checks an internal invariant. It is compiled out unless the javafmtdebug build
// tag is set.
func assert(bool, string, ...any) {}
