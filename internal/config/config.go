package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-ggg/internal/app"
	"github.com/atomicstack/tmux-ggg/internal/tmux"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Environment holds the process-level facts resolved once at startup. Every
// default path is derived from it, so nothing below reads globals.
type Environment struct {
	AppName    string
	Home       string
	GOOS       string
	ConfigHome string
}

const (
	envPrefix      = "TMUX_GGG"
	configFileName = "config"
	logFileSuffix  = ".log"

	defaultStartupCommand = "active-neovim"
)

// Viper keys. The CLI binds its flags to these.
const (
	KeyConfigFile     = "config"
	KeySocket         = "tmux.socket"
	KeyTmuxConfig     = "tmux.config_file"
	KeyStartupCommand = "tmux.startup_command"
	KeyDataDir        = "data_dir"
	KeyLogFile        = "logging.file"
	KeyTrace          = "logging.trace"
)

// DetectEnvironment resolves the app name from argv0 and the user's home.
func DetectEnvironment(argv0 string) (Environment, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Environment{}, fmt.Errorf("resolve home directory: %w", err)
	}
	name := filepath.Base(strings.TrimSpace(argv0))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "tmux-ggg"
	}
	name = strings.TrimSuffix(name, ".exe")
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return Environment{
		AppName:    name,
		Home:       home,
		GOOS:       runtime.GOOS,
		ConfigHome: configHome,
	}, nil
}

// DataDir returns the per-user data directory for app on the given platform.
func DataDir(goos, home, app string) string {
	switch goos {
	case "windows":
		return filepath.Join(home, "AppData", "Local", app)
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", app)
	default:
		return filepath.Join(home, ".local", "share", app)
	}
}

// DefaultLogFile is the log destination used until a config has been
// resolved, and afterwards when neither a log file nor a data dir is set.
func DefaultLogFile(env Environment) string {
	return filepath.Join(DataDir(env.GOOS, env.Home, env.AppName), env.AppName+logFileSuffix)
}

// NewViper returns a viper instance with defaults and environment bindings
// registered for env.
func NewViper(env Environment) *viper.Viper {
	v := viper.New()
	SetDefaults(v, env)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper, env Environment) {
	v.SetDefault(KeyConfigFile, "")
	v.SetDefault(KeySocket, "")
	v.SetDefault(KeyTmuxConfig, filepath.Join(env.Home, ".config", "tmux", "config"))
	v.SetDefault(KeyStartupCommand, defaultStartupCommand)
	v.SetDefault(KeyDataDir, DataDir(env.GOOS, env.Home, env.AppName))
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTrace, false)
}

// ReadConfigFile loads the optional YAML config file. An explicit --config
// path must exist; the default search locations may be absent.
func ReadConfigFile(v *viper.Viper, env Environment) error {
	if explicit := strings.TrimSpace(v.GetString(KeyConfigFile)); explicit != "" {
		v.SetConfigFile(expandHome(explicit, env.Home))
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", explicit, err)
		}
		return nil
	}
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(env.ConfigHome, env.AppName))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// FromViper builds the runtime configuration from the resolved settings.
func FromViper(v *viper.Viper, env Environment, args []string) Config {
	dataDir := expandHome(strings.TrimSpace(v.GetString(KeyDataDir)), env.Home)
	logFile := expandHome(strings.TrimSpace(v.GetString(KeyLogFile)), env.Home)
	if logFile == "" {
		logFile = DefaultLogFile(env)
		if dataDir != "" {
			logFile = filepath.Join(dataDir, env.AppName+logFileSuffix)
		}
	}
	socket := expandHome(strings.TrimSpace(v.GetString(KeySocket)), env.Home)
	tmuxConfig := expandHome(strings.TrimSpace(v.GetString(KeyTmuxConfig)), env.Home)
	startup := strings.TrimSpace(v.GetString(KeyStartupCommand))
	trace := v.GetBool(KeyTrace)

	return Config{
		App: app.Config{
			Name:    env.AppName,
			DataDir: dataDir,
			Tmux: tmux.Options{
				SocketPath:     socket,
				ConfigFile:     tmuxConfig,
				StartupCommand: startup,
			},
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			"socket":         socket,
			"tmuxConfig":     tmuxConfig,
			"startupCommand": startup,
			"dataDir":        dataDir,
			"logFile":        logFile,
			"trace":          strconv.FormatBool(trace),
			"configFile":     v.ConfigFileUsed(),
		},
		Args: append([]string(nil), args...),
	}
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Name) == "" {
		return errors.New("application name is empty")
	}
	if !filepath.IsAbs(cfg.App.DataDir) {
		return fmt.Errorf("data directory must be absolute, got %q", cfg.App.DataDir)
	}
	if strings.ContainsAny(cfg.App.Tmux.SocketPath, "\n\r") {
		return fmt.Errorf("invalid tmux socket path %q", cfg.App.Tmux.SocketPath)
	}
	return nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
