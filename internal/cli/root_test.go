package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tmux-ggg/internal/app"
	"github.com/atomicstack/tmux-ggg/internal/config"
	"github.com/atomicstack/tmux-ggg/internal/logging"
	"github.com/atomicstack/tmux-ggg/internal/roots"
)

func testEnvironment(t *testing.T) config.Environment {
	t.Helper()
	home := t.TempDir()
	return config.Environment{
		AppName:    "tmux-ggg",
		Home:       home,
		GOOS:       "linux",
		ConfigHome: filepath.Join(home, ".config"),
	}
}

func execute(t *testing.T, env config.Environment, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(env)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func withStubLauncher(t *testing.T, fn func(context.Context, app.Config, io.Writer) error) {
	t.Helper()
	orig := runLauncher
	runLauncher = fn
	t.Cleanup(func() { runLauncher = orig })
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRootCommand(testEnvironment(t))
	if cmd.Use != "tmux-ggg" {
		t.Fatalf("expected Use tmux-ggg, got %q", cmd.Use)
	}
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"add", "roots"} {
		if !names[want] {
			t.Fatalf("expected subcommand %q", want)
		}
	}
}

func TestDefaultActionRunsLauncherWithResolvedConfig(t *testing.T) {
	env := testEnvironment(t)
	var got app.Config
	withStubLauncher(t, func(_ context.Context, cfg app.Config, out io.Writer) error {
		got = cfg
		_, err := io.WriteString(out, "ran\n")
		return err
	})

	out, err := execute(t, env, "--socket", "/tmp/tmux-test/default", "--startup-command", "htop")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "ran\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if got.Name != "tmux-ggg" {
		t.Fatalf("unexpected app name %q", got.Name)
	}
	wantData := filepath.Join(env.Home, ".local", "share", "tmux-ggg")
	if got.DataDir != wantData {
		t.Fatalf("expected data dir %s, got %s", wantData, got.DataDir)
	}
	if got.Tmux.SocketPath != "/tmp/tmux-test/default" || got.Tmux.StartupCommand != "htop" {
		t.Fatalf("flags not applied: %#v", got.Tmux)
	}
	if got.Tmux.ConfigFile != filepath.Join(env.Home, ".config", "tmux", "config") {
		t.Fatalf("unexpected tmux config default %q", got.Tmux.ConfigFile)
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	env := testEnvironment(t)
	t.Setenv("TMUX_GGG_TMUX_STARTUP_COMMAND", "vim")
	var got app.Config
	withStubLauncher(t, func(_ context.Context, cfg app.Config, _ io.Writer) error {
		got = cfg
		return nil
	})
	if _, err := execute(t, env); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Tmux.StartupCommand != "vim" {
		t.Fatalf("expected env override, got %q", got.Tmux.StartupCommand)
	}
}

func TestConfigFileIsRead(t *testing.T) {
	env := testEnvironment(t)
	dir := filepath.Join(env.ConfigHome, "tmux-ggg")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "tmux:\n  startup_command: emacs\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var got app.Config
	withStubLauncher(t, func(_ context.Context, cfg app.Config, _ io.Writer) error {
		got = cfg
		return nil
	})
	if _, err := execute(t, env); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Tmux.StartupCommand != "emacs" {
		t.Fatalf("expected config file value, got %q", got.Tmux.StartupCommand)
	}
}

func TestMissingExplicitConfigIsConfigError(t *testing.T) {
	env := testEnvironment(t)
	withStubLauncher(t, func(context.Context, app.Config, io.Writer) error {
		t.Fatalf("launcher should not run")
		return nil
	})
	_, err := execute(t, env, "--config", filepath.Join(env.Home, "absent.yaml"))
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestRelativeDataDirIsConfigError(t *testing.T) {
	env := testEnvironment(t)
	_, err := execute(t, env, "--data-dir", "relative/dir", "roots")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestAddAndListRoots(t *testing.T) {
	env := testEnvironment(t)
	dataDir := filepath.Join(env.Home, "data")
	project := t.TempDir()

	out, err := execute(t, env, "--data-dir", dataDir, "add", project)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, project) {
		t.Fatalf("expected confirmation, got %q", out)
	}

	_, err = execute(t, env, "--data-dir", dataDir, "add", project)
	var dup *app.AlreadyRegisteredError
	if !errors.As(err, &dup) {
		t.Fatalf("expected AlreadyRegisteredError, got %v", err)
	}
	if _, err := execute(t, env, "--data-dir", dataDir, "add", "--exist-ok", project); err != nil {
		t.Fatalf("add --exist-ok: %v", err)
	}

	workspace := t.TempDir()
	if _, err := execute(t, env, "--data-dir", dataDir, "add", "--workspace", workspace); err != nil {
		t.Fatalf("add --workspace: %v", err)
	}

	gone := filepath.Join(env.Home, "gone")
	if _, err := roots.NewStore(filepath.Join(dataDir, "projects.json")).Add(gone); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	out, err = execute(t, env, "--data-dir", dataDir, "roots")
	if err != nil {
		t.Fatalf("roots: %v", err)
	}
	want := "ok       workspace  " + workspace + "\n" +
		"ok       project    " + project + "\n" +
		"missing  project    " + gone + "\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRootsWithEmptyStoreShowsHint(t *testing.T) {
	env := testEnvironment(t)
	out, err := execute(t, env, "--data-dir", filepath.Join(env.Home, "data"), "roots")
	if err != nil {
		t.Fatalf("roots: %v", err)
	}
	if !strings.Contains(out, "tmux-ggg add path/to/projects/dir") {
		t.Fatalf("expected hint, got %q", out)
	}
}

func TestAddRequiresPath(t *testing.T) {
	if _, err := execute(t, testEnvironment(t), "add"); err == nil {
		t.Fatalf("expected error without path")
	}
}

func TestExecuteRequiresProgramName(t *testing.T) {
	var cfgErr *ConfigError
	if err := Execute(context.Background(), nil); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestUsageErrorLogsUnderDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Cleanup(func() { logging.Configure("") })

	err := Execute(context.Background(), []string{"tmux-ggg", "unexpected-arg"})
	if err == nil {
		t.Fatalf("expected an error for an unknown argument")
	}
	path := logging.Path()
	if !filepath.IsAbs(path) || !strings.HasPrefix(path, home) {
		t.Fatalf("expected log path under %s, got %s", home, path)
	}
}
