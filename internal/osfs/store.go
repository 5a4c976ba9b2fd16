// Package osfs is the OS-backed FileStore adapter. It keeps all real
// filesystem access and volume queries out of the orchestrator.
package osfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/psttools/pstsweep/internal/sweep"
)

// Store implements sweep.FileStore on the real filesystem.
type Store struct{}

// FreeSpace reports free and total bytes on the volume containing path.
// When path does not exist yet it walks up to the nearest existing parent,
// so measuring succeeds even before any cleanup target has been created.
func (Store) FreeSpace(path string) (sweep.DiskUsageSample, error) {
	p := filepath.Clean(path)
	for {
		if _, err := os.Stat(p); err == nil {
			break
		}
		parent := filepath.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}

	usage, err := disk.Usage(p)
	if err != nil {
		return sweep.DiskUsageSample{}, fmt.Errorf("disk usage for %s: %w", p, err)
	}
	return sweep.DiskUsageSample{
		Path:       p,
		FreeBytes:  usage.Free,
		TotalBytes: usage.Total,
	}, nil
}

// List returns the files under root matching pattern. A missing root is
// "already clean": an empty result, not an error. The scan never leaves
// the declared root; symlinked directories are not followed.
func (Store) List(root, pattern string, recursive bool) ([]sweep.FileInfo, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	if !recursive {
		return listShallow(root, pattern)
	}
	return listRecursive(root, pattern)
}

func listShallow(root, pattern string) ([]sweep.FileInfo, error) {
	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	var out []sweep.FileInfo
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			// Permission denied or a directory — skip, don't fail.
			continue
		}
		out = append(out, sweep.FileInfo{Path: path, Size: info.Size()})
	}
	return out, nil
}

func listRecursive(root, pattern string) ([]sweep.FileInfo, error) {
	var out []sweep.FileInfo
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subdirectory — skip, don't fail the scan.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		out = append(out, sweep.FileInfo{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Remove deletes a single file.
func (Store) Remove(path string) error {
	return os.Remove(path)
}

// Exists reports whether path currently exists.
func (Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
