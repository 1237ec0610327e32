package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const binary = "tmux"

type commander interface {
	Run() error
	Output() ([]byte, error)
}

var (
	runExecCommand = func(ctx context.Context, name string, args ...string) commander {
		return realCommander{cmd: exec.CommandContext(ctx, name, args...)} //nolint:gosec
	}

	// runTerminalCommand hands the process's stdio to the child so tmux can
	// take over the controlling terminal.
	runTerminalCommand = func(ctx context.Context, name string, args ...string) commander {
		cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return realCommander{cmd: cmd}
	}
)

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// commandError decorates err with the command line and any captured stderr.
func commandError(args []string, err error) error {
	line := strings.Join(append([]string{binary}, args...), " ")
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if stderr := strings.TrimSpace(string(exitErr.Stderr)); stderr != "" {
			return fmt.Errorf("%s: %w: %s", line, err, stderr)
		}
	}
	return fmt.Errorf("%s: %w", line, err)
}
