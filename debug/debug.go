// Package debug holds environment controlled debugging switches.
package debug

import (
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("SYRUP_DEBUG_DECODE")
	d.Diff = boolEnv("SYRUP_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}

func Diff() bool {
	return d.Diff
}

// Logger returns a debug level logger writing to stderr.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
