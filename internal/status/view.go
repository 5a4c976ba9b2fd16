package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/psttools/pstsweep/internal/sweep"
	"github.com/psttools/pstsweep/internal/ui"
)

// ─── Top-level renderer ──────────────────────────────────────────────────────

func (m Model) renderView() string {
	w := m.Width
	if w < 50 {
		w = 50
	}

	var s strings.Builder
	s.WriteString(ui.StyleTitle.Render("pstsweep · extraction pipeline status"))
	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render(strings.Repeat("─", w)))
	s.WriteString("\n")

	if m.Err != nil {
		s.WriteString(ui.StyleBad.Render("  " + m.Err.Error()))
		s.WriteString("\n")
		return s.String()
	}

	if m.Snap == nil {
		s.WriteString(ui.StyleMuted.Italic(true).Render("  Collecting…"))
		return s.String()
	}

	s.WriteString(m.renderDisk(w))
	s.WriteString("\n")
	s.WriteString(m.renderTemp())
	s.WriteString("\n")
	s.WriteString(m.renderStates())
	s.WriteString("\n")
	s.WriteString(m.renderBlocker())
	s.WriteString("\n")
	s.WriteString(ui.StyleMuted.Render("  q quit · r refresh"))
	return s.String()
}

// ─── Sections ────────────────────────────────────────────────────────────────

func (m Model) renderDisk(w int) string {
	d := m.Snap.Disk
	var used float64
	if d.TotalBytes > 0 {
		used = float64(d.TotalBytes-d.FreeBytes) / float64(d.TotalBytes)
	}

	barWidth := w - 20
	if barWidth < 10 {
		barWidth = 10
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth))

	return fmt.Sprintf("  %s\n  %s  %s free of %s\n",
		ui.StyleTitle.Render("Disk"),
		bar.ViewAs(used),
		sweep.HumanBytes(int64(d.FreeBytes)),
		sweep.HumanBytes(int64(d.TotalBytes)))
}

func (m Model) renderTemp() string {
	t := m.Snap.Temp
	label := ui.StyleGood.Render("clean")
	if t.Count() > 0 {
		label = ui.StyleWarn.Render(fmt.Sprintf("%d file(s), %s",
			t.Count(), sweep.HumanBytes(t.TotalBytes)))
	}
	return fmt.Sprintf("  %s  %s\n", ui.StyleTitle.Render("Temp copies"), label)
}

func (m Model) renderStates() string {
	var s strings.Builder
	s.WriteString("  " + ui.StyleTitle.Render("Extraction state") + "\n")
	for _, st := range m.Snap.States {
		mark := ui.StyleMuted.Render("·")
		detail := ui.StyleMuted.Render("missing")
		if st.Present {
			mark = ui.StyleGood.Render("●")
			detail = sweep.HumanBytes(st.Size)
		}
		s.WriteString(fmt.Sprintf("  %s %-12s %s\n", mark, st.Name, detail))
	}
	if p := m.Snap.Progress; p != nil {
		s.WriteString(ui.StyleMuted.Render(fmt.Sprintf(
			"    %d/%d PSTs processed, %d emails extracted",
			p.PSTFilesProcessed, p.PSTFilesTotal, p.TotalEmailsExtracted)))
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) renderBlocker() string {
	if m.Snap.BlockerName == "" {
		return ""
	}
	state := ui.StyleGood.Render("not running")
	if m.Snap.BlockerRunning {
		state = ui.StyleWarn.Render("running — may hold PST files open")
	}
	name := lipgloss.NewStyle().Bold(true).Render(m.Snap.BlockerName)
	return fmt.Sprintf("  %s  %s %s\n", ui.StyleTitle.Render("Mail client"), name, state)
}
