package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/tmux-ggg/internal/app"
	"github.com/atomicstack/tmux-ggg/internal/config"
	"github.com/atomicstack/tmux-ggg/internal/logging"
	"github.com/atomicstack/tmux-ggg/internal/logging/events"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ConfigError wraps failures that happen while resolving configuration,
// before any command runs.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

var runLauncher = func(ctx context.Context, cfg app.Config, out io.Writer) error {
	launcher := app.New(cfg)
	launcher.Out = out
	return launcher.Run(ctx)
}

type runState struct {
	env config.Environment
	v   *viper.Viper
	cfg config.Config
}

// Execute resolves the environment from argv[0] and runs the command line.
func Execute(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return &ConfigError{Err: errors.New("missing program name")}
	}
	env, err := config.DetectEnvironment(argv[0])
	if err != nil {
		return &ConfigError{Err: err}
	}
	logging.Configure(config.DefaultLogFile(env))
	cmd := NewRootCommand(env)
	cmd.SetArgs(argv[1:])
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree for env.
func NewRootCommand(env config.Environment) *cobra.Command {
	rt := &runState{env: env, v: config.NewViper(env)}

	root := &cobra.Command{
		Use:   env.AppName,
		Short: "Pick a project directory and open it as a tmux session",
		Long: `Lists the project directories found under the registered roots, skips
the ones that already have a tmux session, and opens the chosen one in a new
session.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rt.prepare,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLauncher(cmd.Context(), rt.cfg.App, cmd.OutOrStdout())
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", fmt.Sprintf("config file (default is $XDG_CONFIG_HOME/%s/config.yaml)", env.AppName))
	flags.String("socket", "", "tmux socket path")
	flags.String("tmux-config", "", "tmux config file passed to new sessions")
	flags.String("startup-command", "", "command started in new sessions")
	flags.String("data-dir", "", "directory holding the roots file")
	flags.String("log-file", "", "log file path")
	flags.Bool("trace", false, "write JSON trace events to the log file")
	bindings := map[string]string{
		config.KeyConfigFile:     "config",
		config.KeySocket:         "socket",
		config.KeyTmuxConfig:     "tmux-config",
		config.KeyStartupCommand: "startup-command",
		config.KeyDataDir:        "data-dir",
		config.KeyLogFile:        "log-file",
		config.KeyTrace:          "trace",
	}
	for key, name := range bindings {
		_ = rt.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(newAddCommand(rt), newRootsCommand(rt))
	return root
}

func (rt *runState) prepare(cmd *cobra.Command, args []string) error {
	if err := config.ReadConfigFile(rt.v, rt.env); err != nil {
		return &ConfigError{Err: err}
	}
	cfg := config.FromViper(rt.v, rt.env, append([]string{cmd.CommandPath()}, args...))
	if err := config.Validate(cfg); err != nil {
		return &ConfigError{Err: err}
	}
	rt.cfg = cfg
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	events.App.Start(startupTracePayload(cfg))
	return nil
}
