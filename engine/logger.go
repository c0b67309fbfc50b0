package engine

import (
	"io"
	"sync"

	"github.com/fatih/color"
)

type Logger interface {
	Infof(format string, v ...any)
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

type colorLogger struct {
	lock    sync.Mutex
	out     io.Writer
	verbose bool
	info    *color.Color
	debug   *color.Color
	err     *color.Color
}

// NewLogger returns a Logger writing to out.  Debugf is silent unless
// verbose is set.
func NewLogger(out io.Writer, verbose bool) Logger {
	return &colorLogger{
		out:     out,
		verbose: verbose,
		info:    color.New(color.FgGreen),
		debug:   color.New(color.FgCyan),
		err:     color.New(color.FgRed, color.Bold),
	}
}

func (l *colorLogger) Infof(format string, v ...any) { l.printf(l.info, "[INFO] ", format, v) }
func (l *colorLogger) Errorf(format string, v ...any) { l.printf(l.err, "[ERROR] ", format, v) }

func (l *colorLogger) Debugf(format string, v ...any) {
	if l.verbose {
		l.printf(l.debug, "[DEBUG] ", format, v)
	}
}

func (l *colorLogger) printf(c *color.Color, level, format string, v []any) {
	l.lock.Lock()
	defer l.lock.Unlock()
	c.Fprintf(l.out, level+format+"\n", v...)
}
