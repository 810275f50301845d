//go:build javafmtdebug

package format

import "github.com/pkg/errors"

func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(errors.Errorf("format: "+format, args...))
	}
}
