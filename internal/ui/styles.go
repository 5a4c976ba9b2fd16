// Package ui holds the terminal look of pstsweep: the shared palette,
// interactive prompts, and the end-of-run report rendering.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorGood    = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarn    = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorBad     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

var (
	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleMuted  = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleGood   = lipgloss.NewStyle().Foreground(ColorGood)
	StyleWarn   = lipgloss.NewStyle().Foreground(ColorWarn)
	StyleBad    = lipgloss.NewStyle().Foreground(ColorBad)
	StyleDanger = lipgloss.NewStyle().Bold(true).Foreground(ColorBad)
)

// Interactive reports whether stdin is attached to a terminal. The final
// keypress pause and colored prompts are skipped when it isn't.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
