// Package debug holds env-gated diagnostics shared across the module.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Encode  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("ANITA_DEBUG_RESOLVE")
	d.Encode = boolEnv("ANITA_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}

func Encode() bool {
	return d.Encode
}
