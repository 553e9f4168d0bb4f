package health

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/venvdir/venvdir/internal/system"
)

// Status represents the health status of a registered environment
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusBroken  Status = "broken"
	StatusMissing Status = "missing"

	// ConfigFile marks a directory as a virtual environment root.
	ConfigFile = "pyvenv.cfg"
)

// createdKey is the metadata key holding the registration time.
const createdKey = "created"

// Target is the part of an entry the checks look at.
type Target interface {
	Name() string
	Path() string
	Get(key string) (string, bool)
}

// CheckResult contains the results of health checks
type CheckResult struct {
	Name        string
	Path        string
	PathExists  bool
	HasConfig   bool
	Interpreter string
	Age         string
}

// Status summarizes the result.
func (r *CheckResult) Status() Status {
	switch {
	case !r.PathExists:
		return StatusMissing
	case !r.HasConfig || r.Interpreter == "":
		return StatusBroken
	default:
		return StatusHealthy
	}
}

// Keys lets a result render as a table row.
func (r *CheckResult) Keys() []string {
	return []string{"name", "status", "age", "path"}
}

func (r *CheckResult) Get(key string) (string, bool) {
	switch key {
	case "name":
		return r.Name, true
	case "status":
		return formatStatus(r.Status()), true
	case "age":
		return r.Age, r.Age != ""
	case "path":
		return r.Path, true
	}
	return "", false
}

func formatStatus(s Status) string {
	switch s {
	case StatusHealthy:
		return "✓ healthy"
	case StatusBroken:
		return "⚠ broken"
	case StatusMissing:
		return "✗ missing"
	default:
		return string(s)
	}
}

// interpreterCandidates are the interpreter locations inside an environment,
// POSIX layout first.
var interpreterCandidates = []string{
	filepath.Join("bin", "python"),
	filepath.Join("bin", "python3"),
	filepath.Join("Scripts", "python.exe"),
}

// FindInterpreter returns the environment's interpreter path, or "" when
// none is present.
func FindInterpreter(fs system.FileSystem, root string) string {
	for _, rel := range interpreterCandidates {
		p := filepath.Join(root, rel)
		if fs.Exists(p) {
			return p
		}
	}
	return ""
}

// GetAge returns the time since the entry was registered in human-readable
// format, or "" when the entry carries no parseable timestamp.
func GetAge(t Target, now time.Time) string {
	created, ok := t.Get(createdKey)
	if !ok || created == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return ""
	}
	return formatDuration(now.Sub(ts))
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		hours := int(d.Hours())
		mins := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	return fmt.Sprintf("%dd %dh", days, hours)
}

// Check performs all health checks for an environment.
func Check(fs system.FileSystem, t Target, now time.Time) *CheckResult {
	result := &CheckResult{
		Name: t.Name(),
		Path: t.Path(),
		Age:  GetAge(t, now),
	}

	result.PathExists = fs.IsDir(t.Path())
	if !result.PathExists {
		return result
	}

	result.HasConfig = fs.Exists(filepath.Join(t.Path(), ConfigFile))
	result.Interpreter = FindInterpreter(fs, t.Path())

	return result
}
