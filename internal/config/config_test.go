package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/tabdeck/internal/app"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.App.ShowFooter || cfg.App.Verbose {
		t.Fatalf("unexpected defaults %+v", cfg.App)
	}
	if !cfg.App.Mouse || !cfg.Features.Mouse {
		t.Fatalf("mouse should default on")
	}
	if len(cfg.App.Tabs) != 0 || len(cfg.App.Keys) != 0 {
		t.Fatalf("expected no seed tabs or key overrides, got %+v", cfg.App)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"--width", "100", "--height=30", "--footer", "--verbose", "--trace",
		"--log-file", "/tmp/tabdeck.log", "--tab", "Settings", "--tab", "Level Editor", "--mouse=false"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{Width: 100, Height: 30, ShowFooter: true, Verbose: true}
	if cfg.App.Width != want.Width || cfg.App.Height != want.Height || !cfg.App.ShowFooter || !cfg.App.Verbose {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.App.Mouse {
		t.Fatalf("expected --mouse=false to disable mouse")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/tabdeck.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if len(cfg.App.Tabs) != 2 || cfg.App.Tabs[0] != "Settings" || cfg.App.Tabs[1] != "Level Editor" {
		t.Fatalf("unexpected tabs %v", cfg.App.Tabs)
	}
	if cfg.Flags["width"] != "100" || cfg.Flags["tabs"] != "Settings,Level Editor" {
		t.Fatalf("unexpected flags map %v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be recorded")
	}
}

func TestPrecedenceFlagOverEnvOverFile(t *testing.T) {
	path := writeConfig(t, "width: 90\nheight: 25\nfooter: true\ntabs:\n  - Text Document\n")
	env := []string{
		"TABDECK_CONFIG=" + path,
		"TABDECK_WIDTH=70",
		"TABDECK_HEIGHT=oops",
		"TABDECK_VERBOSE=true",
		"TABDECK_TABS=Settings, Level Editor",
	}

	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 70 {
		t.Fatalf("env should beat the file for width, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 25 {
		t.Fatalf("unparsable env should keep the file value, got %d", cfg.App.Height)
	}
	if !cfg.App.ShowFooter || !cfg.App.Verbose {
		t.Fatalf("file and env should both contribute, got %+v", cfg.App)
	}
	if len(cfg.App.Tabs) != 2 || cfg.App.Tabs[0] != "Settings" || cfg.App.Tabs[1] != "Level Editor" {
		t.Fatalf("env tabs should beat file tabs, got %v", cfg.App.Tabs)
	}
	if cfg.File != path {
		t.Fatalf("expected config file %q, got %q", path, cfg.File)
	}

	cfg, err = LoadArgs([]string{"--width", "120", "--footer=false", "--tab", "Settings"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 120 || cfg.App.ShowFooter {
		t.Fatalf("flags should beat env and file, got %+v", cfg.App)
	}
	if len(cfg.App.Tabs) != 1 || cfg.App.Tabs[0] != "Settings" {
		t.Fatalf("flag tabs should beat env tabs, got %v", cfg.App.Tabs)
	}
}

func TestEnvOnly(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"TABDECK_TABS=Settings,,Text Document", "TABDECK_MOUSE=0", "TABDECK_WIDTH=oops"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.App.Tabs) != 2 || cfg.App.Tabs[1] != "Text Document" {
		t.Fatalf("unexpected tabs %v", cfg.App.Tabs)
	}
	if cfg.App.Mouse {
		t.Fatalf("expected TABDECK_MOUSE=0 to disable mouse")
	}
	if cfg.App.Width != 0 {
		t.Fatalf("unparsable env values should fall back, got %d", cfg.App.Width)
	}
}

func TestDefaultConfigLocation(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "tabdeck"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "tabdeck", "config.yaml")
	if err := os.WriteFile(path, []byte("height: 33\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 33 {
		t.Fatalf("expected height from default config, got %d", cfg.App.Height)
	}

	// a missing default file is not an error
	if _, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + t.TempDir()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestKeysFromFile(t *testing.T) {
	path := writeConfig(t, "keys:\n  new_tab: [ctrl+n]\n  close_tab: []\n")
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.App.Keys["new_tab"]; len(got) != 1 || got[0] != "ctrl+n" {
		t.Fatalf("unexpected key overrides %v", cfg.App.Keys)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestInvalidConfiguration(t *testing.T) {
	cases := map[string][]string{
		"negative width":  {"--width", "-1"},
		"negative height": {"--height=-5"},
		"unknown flag":    {"--socket", "x"},
		"missing file":    {"--config", filepath.Join(t.TempDir(), "nope.yaml")},
		"bad yaml":        {"--config", writeConfig(t, "width: [\n")},
	}
	for name, args := range cases {
		if _, err := LoadArgs(args, nil); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestValidateRejectsUnknownKeyActions(t *testing.T) {
	cfg := Config{App: app.Config{Keys: map[string][]string{"explode": {"x"}, "new_tab": {"ctrl+n"}}}}
	err := Validate(cfg)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
