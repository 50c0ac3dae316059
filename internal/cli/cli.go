package cli

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/cpm"
	"github.com/katalvlaran/critpath/dfs"
	"github.com/katalvlaran/critpath/internal/app"
	"github.com/katalvlaran/critpath/loader"
)

// EnvLogLevel overrides the default of -log-level when set.
const EnvLogLevel = "CRITPATH_LOG_LEVEL"

// Exit codes.
const (
	ExitFailure       = 1 // unclassified runtime error
	ExitUsage         = 2 // bad flags or configuration
	ExitBadInput      = 3 // graph document could not be loaded
	ExitUnschedulable = 4 // graph is cyclic or undirected
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// lookupEnv is consulted for EnvLogLevel; pass os.LookupEnv.
func Parse(args []string, output io.Writer, lookupEnv func(string) (string, bool)) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("critpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
critpath - critical-path scheduling and spanning trees over geometric graphs.

Usage:
  critpath [options] GRAPH_PATH

Arguments:
  GRAPH_PATH
    Graph document: .txt/.graph, .yaml/.yml, .json, .hcl or .osm.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaultLevel := "info"
	if lvl, ok := lookupEnv(EnvLogLevel); ok && lvl != "" {
		defaultLevel = lvl
	}

	inputFlag := flagSet.String("input-format", "", "Force the document format: text, yaml, json, hcl or osm.")
	modeFlag := flagSet.String("mode", app.ModeAll, "What to compute: schedule, mst, path, reach or all.")
	rootFlag := flagSet.String("root", "", "Root vertex (label or ID) for mst, path and reach. Defaults to vertex 0.")
	rootNearFlag := flagSet.String("root-near", "", "Use the vertex nearest to x,y as root.")
	targetFlag := flagSet.String("target", "", "Target vertex (label or ID) for path.")
	methodFlag := flagSet.String("mst-method", "prim", "Spanning tree algorithm: prim or kruskal.")
	symFlag := flagSet.Bool("symmetrize", false, "Treat every arc as two-way for mst and reach.")
	formatFlag := flagSet.String("format", app.OutputText, "Report format: text, json or yaml.")
	logLevelFlag := flagSet.String("log-level", defaultLevel, "Logging level: debug, info, warn or error (env "+EnvLogLevel+").")
	logFormatFlag := flagSet.String("log-format", app.LogConsole, "Log output format: console or json.")
	metricsFlag := flagSet.Bool("metrics", false, "Dump Prometheus metrics to stderr after the run.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "exactly one GRAPH_PATH is expected"}
	}

	config, err := app.NewConfig(app.Config{
		GraphPath:   flagSet.Arg(0),
		InputFormat: strings.ToLower(*inputFlag),
		Mode:        strings.ToLower(*modeFlag),
		Root:        *rootFlag,
		RootNear:    *rootNearFlag,
		Target:      *targetFlag,
		MSTMethod:   strings.ToLower(*methodFlag),
		Symmetrize:  *symFlag,
		Output:      strings.ToLower(*formatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		LogFormat:   strings.ToLower(*logFormatFlag),
		Metrics:     *metricsFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return config, false, nil
}

// ExitCode maps an error returned by Parse or App.Run to a process exit code.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return 0
	case stderrors.As(err, &exitErr):
		return exitErr.Code
	case stderrors.Is(err, loader.ErrUnknownFormat),
		stderrors.Is(err, loader.ErrInvalidDocument),
		stderrors.Is(err, loader.ErrUnknownVertex),
		stderrors.Is(err, core.ErrDuplicateLabel):
		return ExitBadInput
	case stderrors.Is(err, cpm.ErrPrecedenceViolation),
		stderrors.Is(err, dfs.ErrUndirectedGraph):
		return ExitUnschedulable
	default:
		return ExitFailure
	}
}
