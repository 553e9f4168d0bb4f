// Package app provides the application context for venvdir.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths    *paths.Paths            // State directory layout
//	    Settings *config.Settings        // Loaded config.toml
//	    FS       system.FileSystem       // Existence checks and removal
//	    Executor system.CommandExecutor  // Runs the venv command
//	    Creator  venv.Creator            // Builds environments
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//	reg, err := a.Registry()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithPaths(paths.New(t.TempDir())),
//	    app.WithCreator(venv.NewMockCreator()),
//	)
//
// # Available Options
//
//	WithPaths(paths)       // Custom state directory
//	WithSettings(settings) // Preloaded settings
//	WithFS(fs)             // Custom filesystem
//	WithExecutor(exec)     // Custom command executor
//	WithCreator(creator)   // Custom environment creator
package app
