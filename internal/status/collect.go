package status

import (
	"encoding/json"
	"os"
	"time"

	"github.com/psttools/pstsweep/internal/config"
	"github.com/psttools/pstsweep/internal/osfs"
	"github.com/psttools/pstsweep/internal/procctl"
	"github.com/psttools/pstsweep/internal/sweep"
)

// StateStatus is the presence of one pipeline state file.
type StateStatus struct {
	Name    string
	Path    string
	Present bool
	Size    int64
}

// ProgressSummary mirrors the top-level counters of the extractor's
// checkpoint file. Display only — the cleanup and reset paths never
// interpret state-file contents.
type ProgressSummary struct {
	PSTFilesProcessed    int `json:"pst_files_processed"`
	PSTFilesTotal        int `json:"pst_files_total"`
	TotalEmailsExtracted int `json:"total_emails_extracted"`
}

// Snapshot is one refresh of the dashboard.
type Snapshot struct {
	Disk           sweep.DiskUsageSample
	Temp           sweep.ScanResult
	States         []StateStatus
	BlockerRunning bool
	BlockerName    string
	Progress       *ProgressSummary
	TakenAt        time.Time
}

// Collect gathers a snapshot through the same adapters the cleanup flow
// uses.
func Collect(cfg config.Config) (*Snapshot, error) {
	store := osfs.Store{}
	snap := &Snapshot{TakenAt: time.Now(), BlockerName: cfg.BlockerProcess}

	du, err := store.FreeSpace(cfg.TempFolder)
	if err != nil {
		return nil, err
	}
	snap.Disk = du

	temp, err := sweep.Scan(store, cfg.Targets()[0])
	if err != nil {
		return nil, err
	}
	snap.Temp = temp

	for _, sf := range cfg.StateFiles() {
		st := StateStatus{Name: sf.Name, Path: sf.Path}
		if info, statErr := os.Stat(sf.Path); statErr == nil {
			st.Present = true
			st.Size = info.Size()
		}
		snap.States = append(snap.States, st)
		if sf.Name == "checkpoint" && st.Present {
			snap.Progress = readProgress(sf.Path)
		}
	}

	if cfg.BlockerProcess != "" {
		snap.BlockerRunning = procctl.Controller{}.Running(cfg.BlockerProcess)
	}
	return snap, nil
}

// readProgress parses the checkpoint's top-level counters. Any parse
// problem just hides the progress section.
func readProgress(path string) *ProgressSummary {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var p ProgressSummary
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}
