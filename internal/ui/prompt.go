package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/psttools/pstsweep/internal/sweep"
)

// TerminalConfirmer implements sweep.Confirmer by printing the destructive
// summary and reading one line of input. Anything but the required
// affirmative token cancels.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminalConfirmer wires the confirmer to the process's stdio.
func NewTerminalConfirmer() TerminalConfirmer {
	return TerminalConfirmer{In: os.Stdin, Out: os.Stdout}
}

// Confirm presents prompt and blocks for the reply.
func (c TerminalConfirmer) Confirm(prompt string, friction sweep.Friction) bool {
	fmt.Fprintln(c.Out, StyleWarn.Render(prompt))
	switch friction {
	case sweep.FrictionHigh:
		fmt.Fprint(c.Out, StyleDanger.Render("Type YES (all capitals) to continue: "))
	default:
		fmt.Fprint(c.Out, "Continue? [Y/N]: ")
	}

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		// EOF or closed stdin — treat as declined.
		return false
	}
	return friction.Accepts(strings.TrimSpace(line))
}

// Pause blocks for a final keypress before exiting, but only when stdin is
// an interactive terminal. Cancelled runs skip the pause and exit at once.
func Pause() {
	if !Interactive() {
		return
	}
	fmt.Print(StyleMuted.Render("Press Enter to exit..."))
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	fmt.Println()
}
