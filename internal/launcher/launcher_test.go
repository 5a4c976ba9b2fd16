package launcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psttools/pstsweep/internal/config"
)

func TestCommandForwardsArguments(t *testing.T) {
	l := New(config.ExtractorConfig{
		Command: "python",
		Script:  "extract_emails_sequential.py",
	})

	cmd := l.Command(context.Background(), []string{"--resume", "--limit", "10"})

	require.GreaterOrEqual(t, len(cmd.Args), 5)
	assert.Equal(t, "extract_emails_sequential.py", cmd.Args[1])
	assert.Equal(t, []string{"--resume", "--limit", "10"}, cmd.Args[2:])
}

func TestCommandSetsModuleSearchPath(t *testing.T) {
	l := New(config.ExtractorConfig{
		Command:       "python",
		Script:        "extract.py",
		ModulePathEnv: "PYTHONPATH",
		ModulePath:    "pipeline/src",
	})

	cmd := l.Command(context.Background(), nil)

	assert.Contains(t, cmd.Env, "PYTHONPATH=pipeline/src")
}

func TestCommandWithoutModulePathLeavesEnvAlone(t *testing.T) {
	l := New(config.ExtractorConfig{Command: "python", Script: "extract.py"})

	cmd := l.Command(context.Background(), nil)

	for _, kv := range cmd.Env {
		assert.NotContains(t, kv, "pipeline/src")
	}
}
