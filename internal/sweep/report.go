package sweep

import "fmt"

// ─── Run Outcomes ────────────────────────────────────────────────────────────

// Outcome classifies how a run ended. Failures while deleting downgrade the
// outcome but never abort the run; the state machine always reaches the
// report.
type Outcome int

const (
	// OutcomeCompleted means every matched file was deleted.
	OutcomeCompleted Outcome = iota
	// OutcomeDegraded means some files stayed locked after the single
	// stop-blocker retry cycle.
	OutcomeDegraded
	// OutcomeCancelled means the user declined the confirmation.
	OutcomeCancelled
	// OutcomeNothingToClean means no target matched anything.
	OutcomeNothingToClean
	// OutcomeDryRun means the plan was shown but nothing was deleted.
	OutcomeDryRun
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeDegraded:
		return "completed with locked files"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeNothingToClean:
		return "nothing to clean"
	case OutcomeDryRun:
		return "dry run"
	}
	return "unknown"
}

// ─── Measurements and Per-Target Results ────────────────────────────────────

// DiskUsageSample is a point-in-time free-space measurement of a volume.
type DiskUsageSample struct {
	Path       string
	FreeBytes  uint64
	TotalBytes uint64
}

// TargetResult summarises deletion for one target.
type TargetResult struct {
	Target       Target
	Matched      int
	MatchedBytes int64
	Deleted      int
	// Failed is the number of matches still present after the final
	// verification scan, i.e. files the run could not delete.
	Failed      int
	Errors      []error
	RetriedStop bool
}

// StateResult summarises the state-file deletion of a full reset.
type StateResult struct {
	Deleted []string
	Missing []string
	Failed  map[string]error
}

// ─── Report ──────────────────────────────────────────────────────────────────

// Report is the sole observable output of a run.
type Report struct {
	Outcome        Outcome
	FreeBefore     DiskUsageSample
	FreeAfter      DiskUsageSample
	Targets        []TargetResult
	State          *StateResult // nil unless the full-reset flow ran
	StoppedBlocker bool
}

// SpaceFreed is free-after minus free-before. Unrelated processes writing
// to the volume during the run can make this negative or inflated; it is
// reported as-is, never clamped.
func (r Report) SpaceFreed() int64 {
	return int64(r.FreeAfter.FreeBytes) - int64(r.FreeBefore.FreeBytes)
}

// TotalDeleted sums deleted files across targets.
func (r Report) TotalDeleted() int {
	n := 0
	for _, t := range r.Targets {
		n += t.Deleted
	}
	return n
}

// TotalFailed sums files still present across targets.
func (r Report) TotalFailed() int {
	n := 0
	for _, t := range r.Targets {
		n += t.Failed
	}
	return n
}

// HumanBytes formats a byte count with a binary-unit suffix.
func HumanBytes(b int64) string {
	neg := ""
	if b < 0 {
		neg = "-"
		b = -b
	}
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%s%d B", neg, b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%s%.2f %ciB", neg, float64(b)/float64(div), "KMGTPE"[exp])
}
