// Package launcher starts the external extraction program, forwarding
// arguments and setting its module search path. pstsweep never interprets
// the extractor's output or state; it is glue only.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/psttools/pstsweep/internal/config"
)

// Launcher runs the configured extraction program.
type Launcher struct {
	cfg config.ExtractorConfig
}

// New builds a launcher for the given extractor configuration.
func New(cfg config.ExtractorConfig) Launcher {
	return Launcher{cfg: cfg}
}

// Command builds the exec.Cmd without starting it. The extractor inherits
// this process's stdio and environment, plus the module search path
// variable when configured.
func (l Launcher) Command(ctx context.Context, args []string) *exec.Cmd {
	argv := append([]string{l.cfg.Script}, args...)
	cmd := exec.CommandContext(ctx, l.cfg.Command, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	if l.cfg.ModulePathEnv != "" && l.cfg.ModulePath != "" {
		cmd.Env = append(cmd.Env, l.cfg.ModulePathEnv+"="+l.cfg.ModulePath)
	}
	return cmd
}

// Run starts the extractor and blocks until it exits, forwarding its exit
// code. A non-zero exit is not an error here: the code is passed through
// for the caller to propagate.
func (l Launcher) Run(ctx context.Context, args []string) (int, error) {
	cmd := l.Command(ctx, args)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("launch %s: %w", l.cfg.Command, err)
}
