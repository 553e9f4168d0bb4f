package app

import (
	"github.com/venvdir/venvdir/internal/config"
	"github.com/venvdir/venvdir/internal/errors"
	"github.com/venvdir/venvdir/internal/logging"
	"github.com/venvdir/venvdir/internal/paths"
	"github.com/venvdir/venvdir/internal/registry"
	"github.com/venvdir/venvdir/internal/system"
	"github.com/venvdir/venvdir/internal/venv"
)

// App holds the application dependencies
type App struct {
	// Paths holds the resolved state locations
	Paths *paths.Paths

	// Settings is the loaded config.toml; nil means load on first use
	Settings *config.Settings

	// FS is used for existence checks and removal
	FS system.FileSystem

	// Executor runs the venv command
	Executor system.CommandExecutor

	// Creator builds environments; nil means a CommandCreator from Settings
	Creator venv.Creator

	pathsErr error
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(p *paths.Paths) Option {
	return func(a *App) {
		a.Paths = p
		a.pathsErr = nil
	}
}

// WithSettings sets preloaded settings
func WithSettings(s *config.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithFS sets a custom filesystem
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithCreator sets a custom environment creator
func WithCreator(c venv.Creator) Option {
	return func(a *App) {
		a.Creator = c
	}
}

// New creates a new App with the given options.
// Paths default to the current user's state directory.
func New(opts ...Option) *App {
	app := &App{
		FS:       system.DefaultFS(),
		Executor: system.DefaultExecutor(),
	}

	p, err := paths.DefaultPaths()
	if err != nil {
		logging.Debug("failed to resolve state directory", "error", err)
		app.pathsErr = err
	} else {
		app.Paths = p
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// LoadSettings returns the app settings, reading config.toml on first use.
func (a *App) LoadSettings() (*config.Settings, error) {
	if a.Settings != nil {
		return a.Settings, nil
	}
	if a.Paths == nil {
		return nil, a.pathsError()
	}

	s, err := config.LoadSettings(a.Paths.ConfigFile)
	if err != nil {
		return nil, err
	}
	a.Settings = s
	return s, nil
}

// Registry builds a registry over the app's entries file. Extra options are
// applied last and override the ones derived from settings.
func (a *App) Registry(opts ...registry.Option) (*registry.Registry, error) {
	if a.Paths == nil {
		return nil, a.pathsError()
	}

	settings, err := a.LoadSettings()
	if err != nil {
		return nil, err
	}

	creator := a.Creator
	if creator == nil {
		argv, err := settings.VenvArgs()
		if err != nil {
			return nil, errors.ConfigError("invalid venv_command", err)
		}
		creator = venv.NewCommandCreator(argv, a.Executor)
	}

	base := []registry.Option{
		registry.WithFS(a.FS),
		registry.WithCreator(creator),
		registry.WithDefaultDir(a.environmentsDir(settings)),
		registry.WithPip(settings.WithPip),
	}
	return registry.New(a.Paths.EntriesFile, append(base, opts...)...), nil
}

func (a *App) environmentsDir(settings *config.Settings) func() (string, error) {
	if settings.EnvironmentsDir == "" {
		return a.Paths.DefaultEnvironmentsDir
	}
	dir := settings.EnvironmentsDir
	return func() (string, error) {
		if err := a.FS.MkdirAll(dir, 0755); err != nil {
			return "", errors.IOError("failed to create environments directory "+dir, err)
		}
		return dir, nil
	}
}

func (a *App) pathsError() error {
	if a.pathsErr != nil {
		return a.pathsErr
	}
	return errors.IOError("state directory is not configured", nil)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
