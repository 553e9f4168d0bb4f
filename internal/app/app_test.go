package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/venvdir/venvdir/internal/config"
	"github.com/venvdir/venvdir/internal/errors"
	"github.com/venvdir/venvdir/internal/paths"
	"github.com/venvdir/venvdir/internal/registry"
	"github.com/venvdir/venvdir/internal/system"
	"github.com/venvdir/venvdir/internal/venv"
)

func TestNew(t *testing.T) {
	t.Setenv(paths.EnvHome, "/custom/venvdir")

	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}
	if app.Paths == nil {
		t.Fatal("Paths should not be nil")
	}
	if app.Paths.Home != "/custom/venvdir" {
		t.Errorf("Home = %q, want /custom/venvdir", app.Paths.Home)
	}
	if app.FS == nil || app.Executor == nil {
		t.Error("FS and Executor should default to the OS implementations")
	}
}

func TestNew_Options(t *testing.T) {
	p := paths.New("/custom")
	s := config.DefaultSettings()
	fs := system.NewMockFS()
	exec := system.NewMockExecutor()
	creator := venv.NewMockCreator()

	app := New(
		WithPaths(p),
		WithSettings(s),
		WithFS(fs),
		WithExecutor(exec),
		WithCreator(creator),
	)

	if app.Paths != p {
		t.Error("Paths not set correctly")
	}
	if app.Settings != s {
		t.Error("Settings not set correctly")
	}
	if app.FS != fs {
		t.Error("FS not set correctly")
	}
	if app.Executor != exec {
		t.Error("Executor not set correctly")
	}
	if app.Creator != creator {
		t.Error("Creator not set correctly")
	}
}

func TestLoadSettings(t *testing.T) {
	home := t.TempDir()
	cfg := "venv_command = \"uv venv\"\nwith_pip = false\n"
	if err := os.WriteFile(filepath.Join(home, paths.ConfigFileName), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	app := New(WithPaths(paths.New(home)))
	s, err := app.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.VenvCommand != "uv venv" || s.WithPip {
		t.Errorf("settings = %+v", s)
	}

	again, _ := app.LoadSettings()
	if again != s {
		t.Error("settings should be cached after first load")
	}
}

func TestRegistry_UsesSettingsCommand(t *testing.T) {
	home := t.TempDir()
	exec := system.NewMockExecutor()
	settings := &config.Settings{VenvCommand: "python3.12 -m venv --copies", WithPip: false}

	app := New(
		WithPaths(paths.New(home)),
		WithSettings(settings),
		WithExecutor(exec),
	)

	reg, err := app.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}

	// The mock executor does not touch the disk, so the target stays absent.
	base := t.TempDir()
	if _, err := reg.Create(context.Background(), "web", base); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("venv command was not executed")
	}
	if cmd.Name != "python3.12" {
		t.Errorf("command = %q, want python3.12", cmd.Name)
	}
	want := []string{"-m", "venv", "--copies", "--without-pip", filepath.Join(base, "web")}
	if len(cmd.Args) != len(want) {
		t.Fatalf("args = %v, want %v", cmd.Args, want)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, cmd.Args[i], want[i])
		}
	}
}

func TestRegistry_DefaultEnvironmentsDir(t *testing.T) {
	home := t.TempDir()
	app := New(
		WithPaths(paths.New(home)),
		WithSettings(config.DefaultSettings()),
		WithCreator(venv.NewMockCreator()),
	)

	reg, err := app.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	e, err := reg.Create(context.Background(), "web", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if want := filepath.Join(home, paths.VenvsDirName, "web"); e.Path() != want {
		t.Errorf("path = %q, want %q", e.Path(), want)
	}
}

func TestRegistry_EnvironmentsDirOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "envs")
	settings := config.DefaultSettings()
	settings.EnvironmentsDir = dir

	app := New(
		WithPaths(paths.New(t.TempDir())),
		WithSettings(settings),
		WithCreator(venv.NewMockCreator()),
	)

	reg, err := app.Registry()
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	e, err := reg.Create(context.Background(), "web", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if want := filepath.Join(dir, "web"); e.Path() != want {
		t.Errorf("path = %q, want %q", e.Path(), want)
	}
}

func TestRegistry_OptionsOverrideSettings(t *testing.T) {
	creator := venv.NewMockCreator()
	app := New(
		WithPaths(paths.New(t.TempDir())),
		WithSettings(config.DefaultSettings()),
		WithCreator(creator),
	)

	reg, err := app.Registry(registry.WithPip(false))
	if err != nil {
		t.Fatalf("Registry: %v", err)
	}
	if _, err := reg.Create(context.Background(), "web", t.TempDir()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if creator.Calls[0].WithPip {
		t.Error("WithPip(false) should override settings")
	}
}

func TestRegistry_BadSettings(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, paths.ConfigFileName), []byte("venv_command = ["), 0644); err != nil {
		t.Fatal(err)
	}

	app := New(WithPaths(paths.New(home)))
	_, err := app.Registry()
	if !errors.HasCode(err, errors.ExitConfigError) {
		t.Errorf("err = %v, want ConfigError", err)
	}
}

func TestSetDefault(t *testing.T) {
	original := Default
	defer func() { Default = original }()

	customApp := New(WithPaths(paths.New("/custom")))
	SetDefault(customApp)

	if Default != customApp {
		t.Error("SetDefault did not update Default")
	}
}

func TestResetDefault(t *testing.T) {
	original := Default
	defer func() { Default = original }()

	customApp := New(WithPaths(paths.New("/custom")))
	SetDefault(customApp)

	ResetDefault()

	if Default == customApp {
		t.Error("ResetDefault did not create new Default")
	}
	if Default.Paths == nil {
		t.Error("ResetDefault should create app with default paths")
	}
}
