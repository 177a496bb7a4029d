package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// reporter serializes console output from concurrent workers.
type reporter struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
	errCol  *color.Color
}

func newReporter(out, errOut io.Writer, verbose bool) *reporter {
	return &reporter{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		errCol:  color.New(color.FgRed),
	}
}

// Progressf writes without a trailing newline, for "Retrieving ... OK"
// style lines.
func (r *reporter) Progressf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

func (r *reporter) Println(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, msg)
}

func (r *reporter) Printlnf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Verbosef writes only when verbose output is enabled.
func (r *reporter) Verbosef(format string, args ...interface{}) {
	if !r.verbose {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Errorf writes a highlighted error line to the error stream.
func (r *reporter) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errCol.Fprintf(r.errOut, "Error: "+format+"\n", args...)
}

// Dump writes raw page content to the error stream for diagnosis.
func (r *reporter) Dump(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.errOut, content)
}
