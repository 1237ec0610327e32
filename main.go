package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/tmux-ggg/internal/cli"
	"github.com/atomicstack/tmux-ggg/internal/logging"
)

func main() {
	if err := cli.Execute(context.Background(), os.Args); err != nil {
		code := report(err)
		if code == 1 {
			logging.Error(err)
		}
		os.Exit(code)
	}
}

// report prints err and returns the exit status for it.
func report(err error) int {
	var cfgErr *cli.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", cfgErr.Err)
		return 2
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
