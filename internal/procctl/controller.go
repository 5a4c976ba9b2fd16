// Package procctl is the OS-backed ProcessController adapter.
package procctl

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/psttools/pstsweep/internal/sweep"
)

// Controller implements sweep.ProcessController using the process table.
type Controller struct{}

// Stop forcibly terminates every process whose image name matches name
// (case-insensitive). Absence of the process is a normal outcome, not a
// failure. If some instances cannot be killed the first error is returned
// alongside whatever outcome was reached.
func (Controller) Stop(name string) (sweep.StopOutcome, error) {
	procs, err := process.Processes()
	if err != nil {
		return sweep.StopNotRunning, fmt.Errorf("list processes: %w", err)
	}

	outcome := sweep.StopNotRunning
	var firstErr error
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			// Process exited between listing and querying — ignore.
			continue
		}
		if !strings.EqualFold(pname, name) {
			continue
		}
		if err := p.Kill(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("kill %s (pid %d): %w", pname, p.Pid, err)
			}
			continue
		}
		outcome = sweep.StopStopped
	}
	return outcome, firstErr
}

// Running reports whether a process with the given image name exists.
func (Controller) Running(name string) bool {
	procs, err := process.Processes()
	if err != nil {
		return false
	}
	for _, p := range procs {
		if pname, err := p.Name(); err == nil && strings.EqualFold(pname, name) {
			return true
		}
	}
	return false
}
