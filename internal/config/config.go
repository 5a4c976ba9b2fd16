// Package config loads the explicit configuration structure handed to the
// orchestrator. Nothing downstream reads ambient environment state: paths,
// patterns, the blocker process name, state-file list, and the settle
// delay all arrive through Config.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/psttools/pstsweep/internal/sweep"
)

// DefaultBlockerProcess is the mail client that loads PST files and holds
// them open until terminated.
const DefaultBlockerProcess = "OUTLOOK.EXE"

// DefaultSettleDelay is how long to wait after stopping the blocker before
// retrying a delete, so the OS can release file handles.
const DefaultSettleDelay = 3 * time.Second

// Config is everything a run needs.
type Config struct {
	// PSTFolder holds the source archives. Never cleaned; shown in status.
	PSTFolder string `mapstructure:"pst_folder"`

	// TempFolder receives the working PST copies the extractor makes.
	// This is the routine cleanup target.
	TempFolder string `mapstructure:"temp_folder"`

	// OutputFolder is where the extractor writes its results and its
	// progress-state files.
	OutputFolder string `mapstructure:"output_folder"`

	// Pattern matches the temp copies, e.g. "*.pst".
	Pattern string `mapstructure:"pattern"`

	// Recursive extends the temp scan into subdirectories.
	Recursive bool `mapstructure:"recursive"`

	// BlockerProcess is the image name stopped when deletes hit locks.
	// Empty disables process stopping entirely.
	BlockerProcess string `mapstructure:"blocker_process"`

	// StopBlockerFirst terminates the blocker before the first delete
	// pass instead of only on the locked-file retry.
	StopBlockerFirst bool `mapstructure:"stop_blocker_first"`

	// SettleDelay is the wait after stopping the blocker.
	SettleDelay time.Duration `mapstructure:"settle_delay"`

	Extractor ExtractorConfig `mapstructure:"extractor"`
	Log       LogConfig       `mapstructure:"log"`
}

// ExtractorConfig describes how to launch the external extraction program.
type ExtractorConfig struct {
	// Command is the interpreter or binary, e.g. "python".
	Command string `mapstructure:"command"`

	// Script is the extraction entry point passed as the first argument.
	Script string `mapstructure:"script"`

	// ModulePathEnv names the environment variable carrying the module
	// search path for the extractor, e.g. "PYTHONPATH".
	ModulePathEnv string `mapstructure:"module_path_env"`

	// ModulePath is the value for ModulePathEnv. Defaults to the "src"
	// directory next to Script.
	ModulePath string `mapstructure:"module_path"`
}

// LogConfig configures the rotating operational log.
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// ─── Loading ─────────────────────────────────────────────────────────────────

// Load reads a .env file if present, then the config file (pstsweep.toml
// in the working directory or the user config dir), then PSTSWEEP_*
// environment variables, and unmarshals into Config. A missing config
// file is fine: defaults apply.
func Load(configFile string) (Config, error) {
	// .env first so its values are visible to viper's AutomaticEnv.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PSTSWEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("pstsweep")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join("$HOME", ".config", "pstsweep"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Extractor.ModulePath == "" && cfg.Extractor.Script != "" {
		cfg.Extractor.ModulePath = filepath.Join(filepath.Dir(cfg.Extractor.Script), "src")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pst_folder", "pst_files")
	v.SetDefault("temp_folder", "pst_temp")
	v.SetDefault("output_folder", "output")
	v.SetDefault("pattern", "*.pst")
	v.SetDefault("recursive", false)
	v.SetDefault("blocker_process", DefaultBlockerProcess)
	v.SetDefault("stop_blocker_first", false)
	v.SetDefault("settle_delay", DefaultSettleDelay)

	v.SetDefault("extractor.command", "python")
	v.SetDefault("extractor.script", "extract_emails_sequential.py")
	v.SetDefault("extractor.module_path_env", "PYTHONPATH")

	v.SetDefault("log.file", "pstsweep.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 30)
}

// ─── Derived Views ───────────────────────────────────────────────────────────

// Targets returns the cleanup targets for the routine clean flow.
func (c Config) Targets() []sweep.Target {
	return []sweep.Target{
		{
			Name:        "TempPST",
			Root:        c.TempFolder,
			Pattern:     c.Pattern,
			Recursive:   c.Recursive,
			Description: "Temporary PST copies",
		},
	}
}

// StateFiles returns the progress-state files of the extraction pipeline,
// in a stable order. They are owned by the extractor; pstsweep only ever
// deletes them during a full reset.
func (c Config) StateFiles() []sweep.StateFile {
	names := []struct{ logical, file string }{
		{"checkpoint", "extraction_progress.json"},
		{"seen-ids", "seen_ids.json"},
		{"emails", "emails_extracted.json"},
		{"stats", "extraction_stats.json"},
		{"log", "extraction.log"},
	}
	out := make([]sweep.StateFile, 0, len(names))
	for _, n := range names {
		out = append(out, sweep.StateFile{
			Name: n.logical,
			Path: filepath.Join(c.OutputFolder, n.file),
		})
	}
	return out
}

// Options builds the orchestrator options for a run.
func (c Config) Options(dryRun bool) sweep.Options {
	return sweep.Options{
		Targets:          c.Targets(),
		Volume:           c.TempFolder,
		Blocker:          c.BlockerProcess,
		StopBlockerFirst: c.StopBlockerFirst,
		Settle:           c.SettleDelay,
		DryRun:           dryRun,
	}
}
