package search

import (
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"
)

// Progress is a snapshot taken once per search iteration, right after the
// best open state has been popped.
type Progress struct {
	Iteration int
	Elapsed   time.Duration
	Heuristic int // h of the popped state
	Priority  int // f of the popped state
	OpenSize  int
}

// Reporter receives progress while a search runs.
type Reporter interface {
	Progress(p Progress)
	Finish(stats Statistics)
}

// SilentReporter does not output any progress
type SilentReporter struct{}

func (SilentReporter) Progress(Progress) {}
func (SilentReporter) Finish(Statistics) {}

// ColorReporter rewrites a single status line on Writer (typically stderr).
// Every limits output to one line per Every iterations; zero or one prints
// every iteration.
type ColorReporter struct {
	Writer io.Writer
	Every  int
}

func (r *ColorReporter) Progress(p Progress) {
	if r.Every > 1 && p.Iteration%r.Every != 0 {
		return
	}
	fmt.Fprintf(r.Writer, "\r%s %s | iter: %d | h: %d | f: %d      ",
		color.Cyan.Sprint("time:"), p.Elapsed.Truncate(time.Millisecond), p.Iteration, p.Heuristic, p.Priority)
}

func (r *ColorReporter) Finish(Statistics) {
	fmt.Fprintln(r.Writer)
}
