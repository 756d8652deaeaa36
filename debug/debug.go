// Package debug gates optional stderr tracing behind environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Events bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("XMLITER_DEBUG_TOKENS")
	d.Events = boolEnv("XMLITER_DEBUG_EVENTS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Events() bool {
	return d.Events
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
