package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/cpm"
	"github.com/katalvlaran/critpath/internal/app"
	"github.com/katalvlaran/critpath/loader"
)

func noEnv(string) (string, bool) { return "", false }

func TestParse_Flags(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-mode", "MST", "-root", "design", "-mst-method", "kruskal", "-symmetrize",
		"-format", "json", "-log-level", "debug", "-log-format", "json", "-metrics",
		"plan.yaml",
	}, &out, noEnv)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, &app.Config{
		GraphPath:  "plan.yaml",
		Mode:       app.ModeMST,
		Root:       "design",
		MSTMethod:  "kruskal",
		Symmetrize: true,
		Output:     app.OutputJSON,
		LogLevel:   "debug",
		LogFormat:  app.LogJSON,
		Metrics:    true,
	}, cfg)
}

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := Parse([]string{"g.txt"}, &bytes.Buffer{}, noEnv)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, app.ModeAll, cfg.Mode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, app.OutputText, cfg.Output)
}

func TestParse_EnvLogLevel(t *testing.T) {
	env := func(k string) (string, bool) {
		if k == EnvLogLevel {
			return "warn", true
		}
		return "", false
	}
	cfg, _, err := Parse([]string{"g.txt"}, &bytes.Buffer{}, env)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	cfg, _, err = Parse([]string{"-log-level", "error", "g.txt"}, &bytes.Buffer{}, env)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "an explicit flag beats the environment")
}

func TestParse_HelpAndNoArgs(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out, noEnv)
	assert.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")

	_, exit, err = Parse([]string{"-h"}, &bytes.Buffer{}, noEnv)
	assert.NoError(t, err)
	assert.True(t, exit)
}

func TestParse_UsageErrors(t *testing.T) {
	cases := [][]string{
		{"-no-such-flag", "g.txt"},
		{"a.txt", "b.txt"},
		{"-mode", "sprint", "g.txt"},
		{"-mode", "path", "g.txt"},
		{"-format", "xml", "g.txt"},
		{"-root-near", "nowhere", "g.txt"},
	}
	for _, args := range cases {
		_, _, err := Parse(args, &bytes.Buffer{}, noEnv)
		var exitErr *ExitError
		if assert.True(t, errors.As(err, &exitErr), "%v", args) {
			assert.Equal(t, ExitUsage, exitErr.Code, "%v", args)
		}
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{&ExitError{Code: ExitUsage, Message: "bad"}, ExitUsage},
		{pkgerrors.Wrap(loader.ErrInvalidDocument, "load graph"), ExitBadInput},
		{pkgerrors.Wrap(loader.ErrUnknownFormat, "load graph"), ExitBadInput},
		{fmt.Errorf("line 3: %w", core.ErrDuplicateLabel), ExitBadInput},
		{pkgerrors.Wrap(fmt.Errorf("%w: a→b", cpm.ErrPrecedenceViolation), "schedule"), ExitUnschedulable},
		{errors.New("boom"), ExitFailure},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExitCode(tc.err), "%v", tc.err)
	}
}
