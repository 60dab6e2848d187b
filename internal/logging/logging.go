// Package logging provides the debug logger. It is a no-op unless the
// FSVIEW_DEBUG environment variable is set, in which case records are
// appended to fsview.log in the working directory (the terminal itself is
// owned by the TUI).
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	Debug   *log.Logger
	Enabled bool
)

func init() {
	if os.Getenv("FSVIEW_DEBUG") == "" {
		Debug = log.New(io.Discard)
		return
	}
	Enabled = true

	f, err := os.OpenFile("fsview.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		Debug = log.New(os.Stderr)
		return
	}
	Debug = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
	})
}
