package sweep

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ─── Options ─────────────────────────────────────────────────────────────────

// Options configures a single run. It is an explicit structure handed to
// the orchestrator so nothing is read from ambient environment state.
type Options struct {
	// Targets are the locations to clean.
	Targets []Target

	// Volume is the path whose volume free space is measured before and
	// after. Defaults to the first target's root.
	Volume string

	// Blocker is the image name of a process that may hold matched files
	// open (e.g. "OUTLOOK.EXE"). Empty disables both the up-front stop
	// and the locked-file retry cycle.
	Blocker string

	// StopBlockerFirst terminates the blocker before the first delete
	// pass instead of waiting for a locked file to force a retry.
	StopBlockerFirst bool

	// Settle is how long to wait after stopping the blocker so the OS can
	// release its file handles. The wait is a guard against the race
	// between process termination and handle release; it is not optional.
	Settle time.Duration

	// DryRun shows the plan without deleting anything.
	DryRun bool
}

func (o Options) volume() string {
	if o.Volume != "" {
		return o.Volume
	}
	if len(o.Targets) > 0 {
		return o.Targets[0].Root
	}
	return "."
}

// ─── Orchestrator ────────────────────────────────────────────────────────────

// Orchestrator drives one cleanup or reset invocation:
//
//	measure → confirm → (stop blocker) → delete → [one retry] → verify →
//	measure → report
//
// All side effects go through the injected capabilities, so the sequencing
// is testable without a real filesystem or process table.
type Orchestrator struct {
	store   FileStore
	proc    ProcessController
	confirm Confirmer
	log     zerolog.Logger

	// sleep is swapped out by tests to avoid real settle delays.
	sleep func(time.Duration)
}

// New builds an orchestrator over the given capabilities.
func New(store FileStore, proc ProcessController, confirm Confirmer, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		store:   store,
		proc:    proc,
		confirm: confirm,
		log:     log,
		sleep:   time.Sleep,
	}
}

// ─── Routine Cleanup ─────────────────────────────────────────────────────────

// Run executes the routine cleanup flow. Only unrecoverable environment
// failures (initial measurement, scan errors) return a non-nil error;
// everything else flows into the report, possibly with a degraded outcome.
func (o *Orchestrator) Run(opts Options) (Report, error) {
	rep := Report{}

	before, err := o.store.FreeSpace(opts.volume())
	if err != nil {
		return rep, fmt.Errorf("measure free space on %s: %w", opts.volume(), err)
	}
	rep.FreeBefore = before
	rep.FreeAfter = before

	scans, matched, matchedBytes, err := o.scanAll(opts.Targets)
	if err != nil {
		return rep, err
	}

	if matched == 0 {
		// Nothing to do — success, no confirmation needed.
		rep.Outcome = OutcomeNothingToClean
		rep.Targets = zeroResults(opts.Targets)
		return rep, nil
	}

	if opts.DryRun {
		rep.Outcome = OutcomeDryRun
		for i, t := range opts.Targets {
			rep.Targets = append(rep.Targets, TargetResult{
				Target:       t,
				Matched:      scans[i].Count(),
				MatchedBytes: scans[i].TotalBytes,
			})
		}
		return rep, nil
	}

	prompt := fmt.Sprintf("Delete %d file(s), freeing about %s?",
		matched, HumanBytes(matchedBytes))
	if !o.confirm.Confirm(prompt, FrictionLow) {
		rep.Outcome = OutcomeCancelled
		return rep, nil
	}

	o.deleteAll(opts, scans, &rep)
	o.remeasure(opts, &rep)

	if rep.TotalFailed() > 0 {
		rep.Outcome = OutcomeDegraded
	} else {
		rep.Outcome = OutcomeCompleted
	}
	return rep, nil
}

// ─── Full Reset ──────────────────────────────────────────────────────────────

// RunReset executes the full-reset flow: routine cleanup of the targets
// plus deletion of the pipeline's progress-state files. The reset is gated
// behind the high-friction confirmation because it irreversibly forces the
// extraction pipeline back to the beginning.
func (o *Orchestrator) RunReset(opts Options, states []StateFile) (Report, error) {
	rep := Report{}

	before, err := o.store.FreeSpace(opts.volume())
	if err != nil {
		return rep, fmt.Errorf("measure free space on %s: %w", opts.volume(), err)
	}
	rep.FreeBefore = before
	rep.FreeAfter = before

	scans, matched, matchedBytes, err := o.scanAll(opts.Targets)
	if err != nil {
		return rep, err
	}

	var present []string
	for _, sf := range states {
		if o.store.Exists(sf.Path) {
			present = append(present, sf.Name)
		}
	}

	if matched == 0 && len(present) == 0 {
		rep.Outcome = OutcomeNothingToClean
		rep.Targets = zeroResults(opts.Targets)
		rep.State = &StateResult{Failed: map[string]error{}}
		for _, sf := range states {
			rep.State.Missing = append(rep.State.Missing, sf.Name)
		}
		return rep, nil
	}

	prompt := fmt.Sprintf(
		"FULL RESET: delete %d temp file(s) (%s) and wipe all extraction progress (%s).\n"+
			"The pipeline will restart from the beginning. This cannot be undone.",
		matched, HumanBytes(matchedBytes), strings.Join(present, ", "))
	if !o.confirm.Confirm(prompt, FrictionHigh) {
		rep.Outcome = OutcomeCancelled
		return rep, nil
	}

	o.deleteAll(opts, scans, &rep)
	rep.State = o.deleteStateFiles(states)
	o.remeasure(opts, &rep)

	if rep.TotalFailed() > 0 || len(rep.State.Failed) > 0 {
		rep.Outcome = OutcomeDegraded
	} else {
		rep.Outcome = OutcomeCompleted
	}
	return rep, nil
}

// ─── Steps ───────────────────────────────────────────────────────────────────

func (o *Orchestrator) scanAll(targets []Target) ([]ScanResult, int, int64, error) {
	scans := make([]ScanResult, len(targets))
	matched := 0
	var matchedBytes int64
	for i, t := range targets {
		res, err := Scan(o.store, t)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("scan %s: %w", t.Root, err)
		}
		scans[i] = res
		matched += res.Count()
		matchedBytes += res.TotalBytes
	}
	return scans, matched, matchedBytes, nil
}

func (o *Orchestrator) deleteAll(opts Options, scans []ScanResult, rep *Report) {
	if opts.Blocker != "" && opts.StopBlockerFirst {
		o.stopAndSettle(opts, rep)
	}
	for i, t := range opts.Targets {
		rep.Targets = append(rep.Targets, o.deleteTarget(t, scans[i], opts, rep))
	}
}

// deleteTarget deletes everything a target matched, then re-scans to
// verify. If matches remain and a blocker is configured, it performs
// exactly one stop-blocker + settle + delete cycle before giving up.
func (o *Orchestrator) deleteTarget(t Target, initial ScanResult, opts Options, rep *Report) TargetResult {
	tr := TargetResult{
		Target:       t,
		Matched:      initial.Count(),
		MatchedBytes: initial.TotalBytes,
	}

	o.deletePass(&tr, initial.Files)

	left, err := Scan(o.store, t)
	if err != nil {
		tr.Errors = append(tr.Errors, fmt.Errorf("verify %s: %w", t.Root, err))
		return tr
	}

	if left.Count() > 0 && opts.Blocker != "" {
		tr.RetriedStop = true
		o.log.Info().Str("target", t.Name).Int("locked", left.Count()).
			Msg("files still present after delete, retrying once after stopping blocker")
		o.stopAndSettle(opts, rep)
		o.deletePass(&tr, left.Files)

		left, err = Scan(o.store, t)
		if err != nil {
			tr.Errors = append(tr.Errors, fmt.Errorf("verify %s: %w", t.Root, err))
			return tr
		}
	}

	tr.Failed = left.Count()
	return tr
}

// deletePass removes each file, tolerating per-file failure. Locked files
// are collected, not fatal.
func (o *Orchestrator) deletePass(tr *TargetResult, files []FileInfo) {
	for _, f := range files {
		if err := o.store.Remove(f.Path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// Vanished between scan and delete — already gone.
				tr.Deleted++
				continue
			}
			tr.Errors = append(tr.Errors, fmt.Errorf("delete %s: %w", f.Path, err))
			o.log.Warn().Err(err).Str("path", f.Path).Msg("delete failed")
			continue
		}
		tr.Deleted++
	}
}

// stopAndSettle terminates the blocker and waits the settle period so the
// OS can release its file handles. Absence of the process is a silent
// no-op and skips the wait.
func (o *Orchestrator) stopAndSettle(opts Options, rep *Report) {
	outcome, err := o.proc.Stop(opts.Blocker)
	if err != nil {
		o.log.Warn().Err(err).Str("process", opts.Blocker).Msg("stop blocker failed")
	}
	if outcome != StopStopped {
		return
	}
	rep.StoppedBlocker = true
	o.log.Info().Str("process", opts.Blocker).Dur("settle", opts.Settle).
		Msg("blocker stopped, waiting for handles to release")
	o.sleep(opts.Settle)
}

// deleteStateFiles removes each named state file: present files are
// deleted, absent ones recorded as missing (not an error), failures
// recorded per file without aborting the rest.
func (o *Orchestrator) deleteStateFiles(states []StateFile) *StateResult {
	res := &StateResult{Failed: map[string]error{}}
	for _, sf := range states {
		err := o.store.Remove(sf.Path)
		switch {
		case err == nil:
			res.Deleted = append(res.Deleted, sf.Name)
			o.log.Info().Str("state", sf.Name).Str("path", sf.Path).Msg("state file deleted")
		case errors.Is(err, fs.ErrNotExist):
			res.Missing = append(res.Missing, sf.Name)
		default:
			res.Failed[sf.Name] = err
			o.log.Warn().Err(err).Str("state", sf.Name).Msg("state file delete failed")
		}
	}
	// Verification: anything recorded deleted must actually be gone.
	for _, sf := range states {
		if o.store.Exists(sf.Path) {
			if _, already := res.Failed[sf.Name]; !already {
				res.Failed[sf.Name] = fmt.Errorf("%s still present after delete", sf.Path)
			}
		}
	}
	return res
}

// remeasure takes the after sample. A failed re-measurement never blocks
// the report; the before sample stands in and the failure is logged.
func (o *Orchestrator) remeasure(opts Options, rep *Report) {
	after, err := o.store.FreeSpace(opts.volume())
	if err != nil {
		o.log.Warn().Err(err).Msg("re-measuring free space failed, reporting zero delta")
		return
	}
	rep.FreeAfter = after
}

func zeroResults(targets []Target) []TargetResult {
	out := make([]TargetResult, 0, len(targets))
	for _, t := range targets {
		out = append(out, TargetResult{Target: t})
	}
	return out
}
