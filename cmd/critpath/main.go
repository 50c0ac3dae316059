package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/critpath/internal/app"
	"github.com/katalvlaran/critpath/internal/cli"
)

// main is the entrypoint for the critpath command.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "critpath: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW, os.LookupEnv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a, err := app.NewApp(outW, errW, cfg)
	if err != nil {
		return err
	}
	defer a.Logger().Sync() //nolint:errcheck

	return a.Run()
}
