package tmux

import (
	"context"
	"strings"

	"github.com/atomicstack/tmux-ggg/internal/logging/events"
	"github.com/atomicstack/tmux-ggg/internal/session"
)

// Options configures how tmux is invoked.
type Options struct {
	// SocketPath selects a server socket with -S. Empty uses tmux's default.
	SocketPath string
	// ConfigFile is passed with -f when creating sessions. Empty skips -f.
	ConfigFile string
	// StartupCommand runs inside every new session. Empty starts a shell.
	StartupCommand string
}

// Client drives an external tmux binary.
type Client struct {
	opts Options
}

// NewClient returns a client using opts.
func NewClient(opts Options) *Client {
	return &Client{opts: opts}
}

// ListActive returns the running sessions. Any failure, including a missing
// binary or no running server, yields an empty result: to callers a server
// that has not started yet looks exactly like one without sessions.
func (c *Client) ListActive(ctx context.Context) Active {
	args := append(baseArgs(c.opts.SocketPath), "list-sessions")
	output, err := runExecCommand(ctx, binary, args...).Output()
	if err != nil {
		events.Tmux.ListDegraded(commandError(args, err))
		return Active{Names: []string{}}
	}
	active := ParseSessionList(splitLines(output))
	events.Tmux.List(active.Names, active.Attached)
	return active
}

// Create starts a detached session named after s, rooted at s.Path.
func (c *Client) Create(ctx context.Context, s session.Session) error {
	args := c.createArgs(s)
	events.Tmux.Create(s.Name, s.Path, args)
	if _, err := runExecCommand(ctx, binary, args...).Output(); err != nil {
		return commandError(args, err)
	}
	return nil
}

// Attach attaches the current terminal to s and blocks until the client
// detaches or the session ends.
func (c *Client) Attach(ctx context.Context, s session.Session) error {
	args := append(baseArgs(c.opts.SocketPath), "attach-session", "-t", s.Name)
	events.Tmux.Attach(s.Name)
	if err := runTerminalCommand(ctx, binary, args...).Run(); err != nil {
		return commandError(args, err)
	}
	return nil
}

func (c *Client) createArgs(s session.Session) []string {
	args := baseArgs(c.opts.SocketPath)
	if cfg := strings.TrimSpace(c.opts.ConfigFile); cfg != "" {
		args = append(args, "-f", cfg)
	}
	args = append(args, "new-session", "-d", "-s", s.Name, "-c", s.Path)
	if startup := strings.TrimSpace(c.opts.StartupCommand); startup != "" {
		args = append(args, startup)
	}
	return args
}
