package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const ansiReset = "\033[0m"

// tone is the color and leading symbol of a console line
type tone struct {
	color  string
	symbol string
}

var (
	toneInfo    = tone{color: "\033[0;34m", symbol: "ℹ"}
	toneSuccess = tone{color: "\033[0;32m", symbol: "✓"}
	toneWarn    = tone{color: "\033[1;33m", symbol: "⚠"}
	toneError   = tone{color: "\033[0;31m", symbol: "✗"}
	toneHeader  = tone{color: "\033[1;33m"}
)

// console writes devtool status lines. Color is dropped when NO_COLOR is set.
type console struct {
	out   io.Writer
	color bool
}

var ui = newConsole(os.Stdout)

func newConsole(w io.Writer) *console {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &console{out: w, color: !noColor}
}

func (c *console) line(t tone, msg string) {
	if t.symbol != "" {
		msg = t.symbol + " " + msg
	}
	if c.color {
		msg = t.color + msg + ansiReset
	}
	fmt.Fprintln(c.out, msg)
}

func (c *console) Info(format string, a ...any)    { c.line(toneInfo, fmt.Sprintf(format, a...)) }
func (c *console) Success(format string, a ...any) { c.line(toneSuccess, fmt.Sprintf(format, a...)) }
func (c *console) Warn(format string, a ...any)    { c.line(toneWarn, fmt.Sprintf(format, a...)) }
func (c *console) Error(format string, a ...any)   { c.line(toneError, fmt.Sprintf(format, a...)) }

func (c *console) Header(title string) {
	fmt.Fprintln(c.out)
	c.line(toneHeader, "=== "+title+" ===")
}

var errShellMeta = errors.New("argument contains shell metacharacters")

var shellMeta = []string{"\n", "\r", "\x00", "|", "`", "$(", "&&", "||", ">", "<"}

// rejectShellMeta refuses arguments that would change meaning if a shell ever saw them
func rejectShellMeta(args ...string) error {
	for _, arg := range args {
		for _, meta := range shellMeta {
			if strings.Contains(arg, meta) {
				return fmt.Errorf("%w: %q in %q", errShellMeta, meta, arg)
			}
		}
	}
	return nil
}

// runTool runs an external program with the devtool's stdio attached
func runTool(ctx context.Context, name string, args ...string) error {
	if err := rejectShellMeta(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - arguments are checked by rejectShellMeta
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
