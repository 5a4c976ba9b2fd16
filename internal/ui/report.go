package ui

import (
	"fmt"
	"strings"

	"github.com/psttools/pstsweep/internal/sweep"
)

// RenderReport renders the end-of-run report: free space before and after,
// the delta as-is (it can be negative when unrelated processes wrote to
// the volume during the run), and per-target summaries.
func RenderReport(rep sweep.Report) string {
	var b strings.Builder

	switch rep.Outcome {
	case sweep.OutcomeCancelled:
		b.WriteString(StyleWarn.Render("Cancelled — nothing was deleted."))
		b.WriteString("\n")
		return b.String()
	case sweep.OutcomeNothingToClean:
		b.WriteString(StyleGood.Render("Nothing to clean."))
		b.WriteString("\n")
	case sweep.OutcomeDryRun:
		b.WriteString(StyleTitle.Render("Dry run — nothing was deleted."))
		b.WriteString("\n")
	}

	for _, tr := range rep.Targets {
		b.WriteString(renderTarget(tr, rep.Outcome == sweep.OutcomeDryRun))
	}
	if rep.State != nil {
		b.WriteString(renderState(*rep.State))
	}

	b.WriteString("\n")
	b.WriteString(StyleMuted.Render(fmt.Sprintf("Free space before: %s",
		sweep.HumanBytes(int64(rep.FreeBefore.FreeBytes)))))
	b.WriteString("\n")
	b.WriteString(StyleMuted.Render(fmt.Sprintf("Free space after:  %s",
		sweep.HumanBytes(int64(rep.FreeAfter.FreeBytes)))))
	b.WriteString("\n")

	freed := rep.SpaceFreed()
	freedStyle := StyleGood
	if freed < 0 {
		freedStyle = StyleWarn
	}
	b.WriteString(freedStyle.Render(fmt.Sprintf("Space freed:       %s", sweep.HumanBytes(freed))))
	b.WriteString("\n")

	switch rep.Outcome {
	case sweep.OutcomeDegraded:
		b.WriteString(StyleBad.Render(fmt.Sprintf(
			"%d file(s) are still locked by another process.", rep.TotalFailed())))
		b.WriteString("\n")
		b.WriteString(StyleMuted.Render(
			"Close the program holding them (or restart the machine) and run again."))
		b.WriteString("\n")
	case sweep.OutcomeCompleted:
		b.WriteString(StyleGood.Render("Done."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderTarget(tr sweep.TargetResult, dryRun bool) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(tr.Target.Description))
	b.WriteString("\n")

	if tr.Matched == 0 {
		b.WriteString(StyleMuted.Render("  already clean"))
		b.WriteString("\n")
		return b.String()
	}

	if dryRun {
		b.WriteString(fmt.Sprintf("  would delete %d file(s), %s\n",
			tr.Matched, sweep.HumanBytes(tr.MatchedBytes)))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  deleted %d of %d file(s), %s\n",
		tr.Deleted, tr.Matched, sweep.HumanBytes(tr.MatchedBytes)))
	if tr.RetriedStop {
		b.WriteString(StyleMuted.Render("  retried once after stopping the blocking process"))
		b.WriteString("\n")
	}
	if tr.Failed > 0 {
		b.WriteString(StyleBad.Render(fmt.Sprintf("  %d file(s) still locked", tr.Failed)))
		b.WriteString("\n")
	}
	for _, err := range tr.Errors {
		b.WriteString(StyleMuted.Render("  " + err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func renderState(st sweep.StateResult) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Extraction state"))
	b.WriteString("\n")
	if len(st.Deleted) > 0 {
		b.WriteString(StyleGood.Render("  deleted: " + strings.Join(st.Deleted, ", ")))
		b.WriteString("\n")
	}
	if len(st.Missing) > 0 {
		b.WriteString(StyleMuted.Render("  missing: " + strings.Join(st.Missing, ", ")))
		b.WriteString("\n")
	}
	for name, err := range st.Failed {
		b.WriteString(StyleBad.Render(fmt.Sprintf("  failed:  %s (%v)", name, err)))
		b.WriteString("\n")
	}

	return b.String()
}
