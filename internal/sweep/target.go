package sweep

// Target declares one cleanup location: a root directory plus a file-name
// pattern (e.g., all *.pst files under the temp folder).
type Target struct {
	// Name is the unique identifier for this target.
	Name string

	// Root is the directory to scan. A missing root means "already clean".
	Root string

	// Pattern is a glob matched against file base names.
	Pattern string

	// Recursive scans subdirectories of Root too.
	Recursive bool

	// Description is a human-readable description.
	Description string
}

// StateFile names one unit of external pipeline state (checkpoint, seen-ID
// index, extracted-email list, stats, log). These files are created and
// mutated by the extraction pipeline; this tool only ever deletes them.
type StateFile struct {
	Name string
	Path string
}

// ScanResult is what a target currently matches.
type ScanResult struct {
	Files      []FileInfo
	TotalBytes int64
}

// Count returns the number of matched files.
func (r ScanResult) Count() int { return len(r.Files) }

// Scan lists the files a target currently matches and sums their sizes.
// A missing root yields an empty result, not an error.
func Scan(fs FileStore, t Target) (ScanResult, error) {
	files, err := fs.List(t.Root, t.Pattern, t.Recursive)
	if err != nil {
		return ScanResult{}, err
	}
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return ScanResult{Files: files, TotalBytes: total}, nil
}
