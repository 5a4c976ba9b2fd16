package sweep

// ─── Capability Interfaces ───────────────────────────────────────────────────
//
// The orchestrator performs every side effect through these three
// interfaces. The OS-backed adapters live in internal/osfs and
// internal/procctl; tests supply fakes.

// FileInfo is one matched file.
type FileInfo struct {
	Path string
	Size int64
}

// FileStore abstracts the filesystem operations a cleanup run performs.
type FileStore interface {
	// FreeSpace reports free and total bytes on the volume containing path.
	// It must succeed even when path itself does not exist yet.
	FreeSpace(path string) (DiskUsageSample, error)

	// List returns the files under root whose base name matches pattern.
	// Non-recursive unless recursive is set. A missing root is not an
	// error: it returns an empty result, signalling "nothing to clean".
	List(root, pattern string, recursive bool) ([]FileInfo, error)

	// Remove deletes a single file. Removing a file that does not exist
	// returns an error satisfying errors.Is(err, fs.ErrNotExist).
	Remove(path string) error

	// Exists reports whether path currently exists.
	Exists(path string) bool
}

// StopOutcome is the result of a stop-blocker attempt.
type StopOutcome int

const (
	// StopNotRunning means no process with the given name was found.
	// This is a normal, silent outcome, not a failure.
	StopNotRunning StopOutcome = iota
	// StopStopped means at least one matching process was terminated.
	StopStopped
)

// ProcessController can find and forcibly terminate a named process.
type ProcessController interface {
	// Stop terminates every running process with the given image name.
	Stop(name string) (StopOutcome, error)
}

// ─── Confirmation ────────────────────────────────────────────────────────────

// Friction selects the affirmative token a confirmation requires. Routine
// cleanup uses a low-friction single character; irreversible state-wiping
// requires typing an exact phrase. The asymmetry is deliberate.
type Friction int

const (
	// FrictionLow accepts "Y" or "y"; anything else cancels.
	FrictionLow Friction = iota
	// FrictionHigh accepts only the exact literal "YES"; anything else,
	// including lowercase "yes", cancels.
	FrictionHigh
)

// Accepts reports whether reply is the required affirmative token.
func (f Friction) Accepts(reply string) bool {
	if f == FrictionHigh {
		return reply == "YES"
	}
	return reply == "Y" || reply == "y"
}

// Token returns the affirmative token to show in a prompt.
func (f Friction) Token() string {
	if f == FrictionHigh {
		return "YES"
	}
	return "Y"
}

// Confirmer presents a destructive summary and blocks for a yes/no answer.
type Confirmer interface {
	Confirm(prompt string, friction Friction) bool
}
