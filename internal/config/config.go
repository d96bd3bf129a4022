package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/tabdeck/internal/app"
	"github.com/atomicstack/tabdeck/internal/ui"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid marks configuration the program cannot start with.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string `yaml:"log_file"`
	Trace    bool   `yaml:"trace"`
}

type Features struct {
	Verbose bool
	Mouse   bool
}

const (
	envPrefix  = "TABDECK"
	envConfig  = "TABDECK_CONFIG"
	configName = "config.yaml"
)

// keys read from the config file, environment and flags.
const (
	keyWidth   = "width"
	keyHeight  = "height"
	keyFooter  = "footer"
	keyMouse   = "mouse"
	keyVerbose = "verbose"
	keyTrace   = "trace"
	keyLogFile = "log_file"
	keyTabs    = "tabs"
	keyKeys    = "keys"
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"width":    keyWidth,
	"height":   keyHeight,
	"footer":   keyFooter,
	"mouse":    keyMouse,
	"verbose":  keyVerbose,
	"trace":    keyTrace,
	"log-file": keyLogFile,
	"tab":      keyTabs,
}

// RegisterFlags adds the runtime flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file (default $XDG_CONFIG_HOME/tabdeck/config.yaml)")
	fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool("footer", false, "enable footer hint row")
	fs.Bool("mouse", true, "enable mouse support")
	fs.Bool("verbose", false, "show success messages for actions")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", "", "path to the log file")
	fs.StringArray("tab", nil, "open a tab of the given type at startup (repeatable)")
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tabdeck", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return FromFlags(fs, environ, args)
}

// FromFlags resolves configuration from parsed flags, TABDECK_* variables and
// an optional YAML file. Explicit flags win over the environment, the
// environment wins over the file and the file wins over the defaults.
func FromFlags(fs *pflag.FlagSet, environ []string, args []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault(keyWidth, 0)
	v.SetDefault(keyHeight, 0)
	v.SetDefault(keyFooter, false)
	v.SetDefault(keyMouse, true)
	v.SetDefault(keyVerbose, false)
	v.SetDefault(keyTrace, false)
	v.SetDefault(keyLogFile, "")
	v.SetDefault(keyTabs, []string{})
	v.SetDefault(keyKeys, map[string]interface{}{})

	path, explicit := configPath(fs, env)
	if path != "" {
		if _, err := os.Stat(path); err == nil || explicit {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("%w: read %s: %v", ErrInvalid, path, err)
			}
		}
	}

	flagged := make(map[string]bool, len(flagKeys))
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
			flagged[key] = true
		}
	}
	applyEnv(v, env, flagged)

	width, height := v.GetInt(keyWidth), v.GetInt(keyHeight)
	if width < 0 {
		return Config{}, fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalid, width)
	}
	if height < 0 {
		return Config{}, fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalid, height)
	}

	cfg := Config{
		App: app.Config{
			Width:      width,
			Height:     height,
			ShowFooter: v.GetBool(keyFooter),
			Verbose:    v.GetBool(keyVerbose),
			Mouse:      v.GetBool(keyMouse),
			Tabs:       cleanList(v.GetStringSlice(keyTabs)),
			Keys:       v.GetStringMapStringSlice(keyKeys),
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		Features: Features{
			Verbose: v.GetBool(keyVerbose),
			Mouse:   v.GetBool(keyMouse),
		},
		File: v.ConfigFileUsed(),
		Flags: map[string]string{
			"width":   strconv.Itoa(width),
			"height":  strconv.Itoa(height),
			"footer":  strconv.FormatBool(v.GetBool(keyFooter)),
			"mouse":   strconv.FormatBool(v.GetBool(keyMouse)),
			"trace":   strconv.FormatBool(v.GetBool(keyTrace)),
			"verbose": strconv.FormatBool(v.GetBool(keyVerbose)),
			"logFile": v.GetString(keyLogFile),
			"tabs":    strings.Join(cleanList(v.GetStringSlice(keyTabs)), ","),
			"config":  v.ConfigFileUsed(),
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// configPath returns the config file to read and whether it was asked for
// explicitly.
func configPath(fs *pflag.FlagSet, env map[string]string) (string, bool) {
	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		return f.Value.String(), true
	}
	if p := strings.TrimSpace(env[envConfig]); p != "" {
		return p, true
	}
	if dir := env["XDG_CONFIG_HOME"]; dir != "" {
		return filepath.Join(dir, "tabdeck", configName), false
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "tabdeck", configName), false
	}
	return "", false
}

// applyEnv layers TABDECK_* values over the file and defaults. Keys set by an
// explicit flag are left alone; unparsable values keep the lower layer.
func applyEnv(v *viper.Viper, env map[string]string, flagged map[string]bool) {
	set := func(key string, value func(name string) interface{}) {
		name := envName(key)
		if _, ok := env[name]; ok && !flagged[key] {
			v.Set(key, value(name))
		}
	}
	for _, key := range []string{keyWidth, keyHeight} {
		set(key, func(name string) interface{} { return envOrInt(env, name, v.GetInt(key)) })
	}
	for _, key := range []string{keyFooter, keyMouse, keyVerbose, keyTrace} {
		set(key, func(name string) interface{} { return envOrBool(env, name, v.GetBool(key)) })
	}
	set(keyLogFile, func(name string) interface{} { return envOrDefault(env, name, v.GetString(keyLogFile)) })
	set(keyTabs, func(name string) interface{} { return envOrList(env, name) })
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrList(env map[string]string, key string) []string {
	return cleanList(strings.Split(env[key], ","))
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings that only make sense once the UI is known, such
// as key bindings for actions that do not exist.
func Validate(cfg Config) error {
	var unknown []string
	for name := range cfg.App.Keys {
		if !ui.KnownAction(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown key actions %s (known: %s)", ErrInvalid,
			strings.Join(unknown, ", "), strings.Join(ui.ActionNames(), ", "))
	}
	return nil
}
