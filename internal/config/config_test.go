package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no stray pstsweep.toml is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "pst_temp", cfg.TempFolder)
	assert.Equal(t, "output", cfg.OutputFolder)
	assert.Equal(t, "*.pst", cfg.Pattern)
	assert.False(t, cfg.Recursive)
	assert.Equal(t, "OUTLOOK.EXE", cfg.BlockerProcess)
	assert.False(t, cfg.StopBlockerFirst)
	assert.Equal(t, 3*time.Second, cfg.SettleDelay)
	assert.Equal(t, "python", cfg.Extractor.Command)
	assert.Equal(t, "PYTHONPATH", cfg.Extractor.ModulePathEnv)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pstsweep.toml")
	content := `
temp_folder = "extract_tmp"
blocker_process = "THUNDERBIRD.EXE"
settle_delay = "5s"

[extractor]
script = "pipeline/extract.py"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "extract_tmp", cfg.TempFolder)
	assert.Equal(t, "THUNDERBIRD.EXE", cfg.BlockerProcess)
	assert.Equal(t, 5*time.Second, cfg.SettleDelay)
	assert.Equal(t, filepath.Join("pipeline", "src"), cfg.Extractor.ModulePath,
		"module path defaults to src next to the script")
}

func TestStateFilesCoverTheFivePipelineFiles(t *testing.T) {
	cfg := Config{OutputFolder: "out"}

	states := cfg.StateFiles()

	require.Len(t, states, 5)
	var names, files []string
	for _, s := range states {
		names = append(names, s.Name)
		files = append(files, filepath.Base(s.Path))
		assert.Equal(t, "out", filepath.Dir(s.Path))
	}
	assert.Equal(t, []string{"checkpoint", "seen-ids", "emails", "stats", "log"}, names)
	assert.Contains(t, files, "extraction_progress.json")
	assert.Contains(t, files, "emails_extracted.json")
	assert.Contains(t, files, "extraction_stats.json")
}

func TestOptionsCarryExplicitState(t *testing.T) {
	cfg := Config{
		TempFolder:     "tmp",
		Pattern:        "*.pst",
		BlockerProcess: "OUTLOOK.EXE",
		SettleDelay:    4 * time.Second,
	}

	opts := cfg.Options(true)

	require.Len(t, opts.Targets, 1)
	assert.Equal(t, "tmp", opts.Targets[0].Root)
	assert.Equal(t, "tmp", opts.Volume)
	assert.Equal(t, "OUTLOOK.EXE", opts.Blocker)
	assert.Equal(t, 4*time.Second, opts.Settle)
	assert.True(t, opts.DryRun)
}
