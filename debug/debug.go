package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	State  bool
	Tokens bool
}

var d *debug

func init() {
	d = &debug{}
	d.State = boolEnv("JW_DEBUG_STATE")
	d.Tokens = boolEnv("JW_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func State() bool {
	return d.State
}
func Tokens() bool {
	return d.Tokens
}

// Logf writes a debug line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
