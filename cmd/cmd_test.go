package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/venvdir/venvdir/internal/errors"
	"github.com/venvdir/venvdir/internal/logging"
	"github.com/venvdir/venvdir/internal/system"
	"github.com/venvdir/venvdir/internal/testutil"
)

// resetFlags restores every flag to its default so state from one
// execution does not leak into the next.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(args ...string) (string, string, error) {
	resetFlags(rootCmd)

	cmd := rootCmd
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	// Reset args for next test
	cmd.SetArgs(nil)
	cmd.SetOut(nil)
	cmd.SetErr(nil)
	logging.SetUserOutput(nil, nil)

	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "venvdir") {
		t.Error("Help output should contain 'venvdir'")
	}
	for _, sub := range []string{"list", "create", "add", "remove", "which", "pick"} {
		if !strings.Contains(stdout, sub) {
			t.Errorf("Help output should list %q", sub)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help failed: %v", err)
	}

	if !strings.Contains(stdout, "--verbose") {
		t.Error("Should have --verbose flag")
	}
	if !strings.Contains(stdout, "--json") {
		t.Error("Should have --json flag")
	}
}

func TestCommandHelp(t *testing.T) {
	tests := []struct {
		cmd  string
		want []string
	}{
		{"list", []string{"--all", "--no-header"}},
		{"create", []string{"--path", "--without-pip"}},
		{"add", []string{"--path"}},
		{"remove", []string{"--keep-files", "rm"}},
		{"which", []string{"path"}},
		{"pick", []string{"Enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			stdout, _, err := executeCommand(tt.cmd, "--help")
			if err != nil {
				t.Fatalf("Help command failed: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(stdout, want) {
					t.Errorf("%s help should mention %q", tt.cmd, want)
				}
			}
		})
	}
}

func TestCommandRequiresArgs(t *testing.T) {
	testutil.NewTestEnv(t)

	for _, name := range []string{"create", "add", "remove", "which"} {
		t.Run(name, func(t *testing.T) {
			_, stderr, err := executeCommand(name)
			if err == nil {
				t.Fatalf("%s without a name should fail", name)
			}
			if !strings.Contains(stderr, "Error:") {
				t.Errorf("stderr should contain an error line, got %q", stderr)
			}
		})
	}
}

func TestList_Empty(t *testing.T) {
	testutil.NewTestEnv(t)

	stdout, _, err := executeCommand("list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(stdout, "No virtual environments managed with venvdir") {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestCreate_ThenList(t *testing.T) {
	env := testutil.NewTestEnv(t)

	stdout, _, err := executeCommand("create", "web")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	want := filepath.Join(env.Paths.EnvironmentsDir, "web")
	if !strings.Contains(stdout, "Created web at "+want) {
		t.Errorf("create output = %q", stdout)
	}
	if env.Creator.CallCount() != 1 || !env.Creator.Calls[0].WithPip {
		t.Errorf("creator calls = %+v", env.Creator.Calls)
	}

	stdout, _, err = executeCommand("ls")
	if err != nil {
		t.Fatalf("ls failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", stdout)
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "PATH") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "web") || !strings.Contains(lines[1], want) {
		t.Errorf("row = %q", lines[1])
	}
}

func TestCreate_WithoutPip(t *testing.T) {
	env := testutil.NewTestEnv(t)

	if _, _, err := executeCommand("create", "bare", "--without-pip"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if env.Creator.Calls[0].WithPip {
		t.Error("--without-pip should create the environment without pip")
	}
}

func TestCreate_ExplicitPath(t *testing.T) {
	env := testutil.NewTestEnv(t)
	base := env.CreateEnvironment("base")

	if _, _, err := executeCommand("create", "web", "-p", base); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "web", "pyvenv.cfg")); err != nil {
		t.Errorf("environment not created under base: %v", err)
	}
}

func TestCreate_Errors(t *testing.T) {
	env := testutil.NewTestEnv(t)
	base := env.CreateEnvironment("base")
	if err := os.Mkdir(filepath.Join(base, "taken"), 0755); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(env.TmpDir, "missing")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "path exists",
			args:     []string{"create", "taken", "--path", base},
			wantCode: errors.ExitEntryExists,
			wantErr:  "Error: virtual environment '" + filepath.Join(base, "taken") + "' already exists",
		},
		{
			name:     "base missing",
			args:     []string{"create", "web", "--path", missing},
			wantCode: errors.ExitPathNotFound,
			wantErr:  "Error: base path '" + missing + "' does not exist",
		},
		{
			name:     "invalid name",
			args:     []string{"create", "../escape"},
			wantCode: errors.ExitGeneralError,
			wantErr:  "invalid entry name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := executeCommand(tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := errors.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantErr)
			}
			if strings.Contains(stderr, "Usage:") {
				t.Error("usage should not be printed for runtime errors")
			}
		})
	}

	if env.Creator.CallCount() != 0 {
		t.Errorf("creator should not run, got %d calls", env.Creator.CallCount())
	}
}

func TestCreate_CreatorFails(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.Creator.Err = os.ErrPermission

	_, _, err := executeCommand("create", "web")
	if code := errors.GetExitCode(err); code != errors.ExitCreationFailed {
		t.Errorf("exit code = %d, want %d", code, errors.ExitCreationFailed)
	}
	if env.EntryExists("web") {
		t.Error("failed creation should not be registered")
	}
}

func TestAdd_ThenWhich(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.CreateEnvironment("existing")

	stdout, _, err := executeCommand("add", "ext", "--path", dir)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(stdout, "Registered ext at "+dir) {
		t.Errorf("add output = %q", stdout)
	}
	if env.Creator.CallCount() != 0 {
		t.Error("add must not create an environment")
	}

	stdout, _, err = executeCommand("which", "ext")
	if err != nil {
		t.Fatalf("which failed: %v", err)
	}
	if stdout != dir+"\n" {
		t.Errorf("which output = %q, want %q", stdout, dir+"\n")
	}
}

func TestAdd_PathMissing(t *testing.T) {
	env := testutil.NewTestEnv(t)

	_, stderr, err := executeCommand("add", "ext", "--path", "/nowhere")
	if code := errors.GetExitCode(err); code != errors.ExitPathNotFound {
		t.Errorf("exit code = %d, want %d", code, errors.ExitPathNotFound)
	}
	if !strings.Contains(stderr, "Error: venv path '/nowhere' does not exist") {
		t.Errorf("stderr = %q", stderr)
	}
	if env.EntryExists("ext") {
		t.Error("registry should be unchanged")
	}
}

func TestAdd_RequiresPath(t *testing.T) {
	testutil.NewTestEnv(t)

	_, _, err := executeCommand("add", "ext")
	if err == nil || !strings.Contains(err.Error(), "path") {
		t.Errorf("err = %v, want required flag error", err)
	}
}

func TestWhich_NotFound(t *testing.T) {
	testutil.NewTestEnv(t)

	_, stderr, err := executeCommand("which", "ghost")
	if code := errors.GetExitCode(err); code != errors.ExitEntryNotFound {
		t.Errorf("exit code = %d, want %d", code, errors.ExitEntryNotFound)
	}
	if !strings.Contains(stderr, "Error: entry 'ghost' does not exist") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestWhich_MissingDirectoryWarns(t *testing.T) {
	env := testutil.NewTestEnv(t)
	if err := env.InstallEntries("valid_entries.cfg"); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := executeCommand("which", "web")
	if err != nil {
		t.Fatalf("which failed: %v", err)
	}
	if stdout != "/srv/venvs/web\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "missing") {
		t.Errorf("stderr should warn about the missing directory, got %q", stderr)
	}
}

func TestWhich_UsesAppFileSystem(t *testing.T) {
	env := testutil.NewTestEnv(t)
	if err := env.InstallEntries("valid_entries.cfg"); err != nil {
		t.Fatal(err)
	}
	fs := system.NewMockFS()
	fs.AddDir("/srv/venvs/web")
	env.App.FS = fs

	stdout, stderr, err := executeCommand("which", "web")
	if err != nil {
		t.Fatalf("which failed: %v", err)
	}
	if stdout != "/srv/venvs/web\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if strings.Contains(stderr, "missing") {
		t.Errorf("no warning expected when the filesystem has the directory, got %q", stderr)
	}
}

func TestRemove(t *testing.T) {
	env := testutil.NewTestEnv(t)

	if _, _, err := executeCommand("create", "web"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	envPath := filepath.Join(env.Paths.EnvironmentsDir, "web")

	stdout, _, err := executeCommand("rm", "web")
	if err != nil {
		t.Fatalf("rm failed: %v", err)
	}
	if !strings.Contains(stdout, "Removed web") {
		t.Errorf("rm output = %q", stdout)
	}
	if env.EntryExists("web") {
		t.Error("entry should be removed")
	}
	if _, err := os.Stat(envPath); !os.IsNotExist(err) {
		t.Error("environment directory should be deleted")
	}

	_, _, err = executeCommand("remove", "web")
	if code := errors.GetExitCode(err); code != errors.ExitEntryNotFound {
		t.Errorf("second remove exit code = %d, want %d", code, errors.ExitEntryNotFound)
	}
}

func TestRemove_KeepFiles(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.CreateEnvironment("existing")

	if _, _, err := executeCommand("add", "ext", "-p", dir); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, _, err := executeCommand("remove", "ext", "--keep-files"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if env.EntryExists("ext") {
		t.Error("entry should be removed")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory should be kept: %v", err)
	}
}

func TestList_Fixture(t *testing.T) {
	env := testutil.NewTestEnv(t)
	if err := env.InstallEntries("valid_entries.cfg"); err != nil {
		t.Fatal(err)
	}

	t.Run("default columns", func(t *testing.T) {
		stdout, _, err := executeCommand("list")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		want := strings.Join([]string{
			"NAME           PATH                      ",
			"web            /srv/venvs/web            ",
			"data science   /srv/venvs/data science   ",
		}, "\n") + "\n"
		if stdout != want {
			t.Errorf("list output:\n%q\nwant:\n%q", stdout, want)
		}
	})

	t.Run("no header", func(t *testing.T) {
		stdout, _, err := executeCommand("list", "--no-header")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if strings.Contains(stdout, "NAME") {
			t.Errorf("header should be omitted: %q", stdout)
		}
		if n := strings.Count(stdout, "\n"); n != 2 {
			t.Errorf("lines = %d, want 2", n)
		}
	})

	t.Run("all columns", func(t *testing.T) {
		stdout, _, err := executeCommand("list", "--all")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		header := strings.SplitN(stdout, "\n", 2)[0]
		for _, col := range []string{"created", "name", "owner", "path"} {
			if !strings.Contains(header, col) {
				t.Errorf("header %q should contain %q", header, col)
			}
		}
		if !strings.Contains(stdout, "analytics") {
			t.Error("metadata values should be shown")
		}
	})
}

func TestList_MalformedEntries(t *testing.T) {
	env := testutil.NewTestEnv(t)
	if err := env.InstallEntries("malformed_entries.cfg"); err != nil {
		t.Fatal(err)
	}
	before := env.EntriesData()

	_, stderr, err := executeCommand("list")
	if code := errors.GetExitCode(err); code != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, errors.ExitConfigError)
	}
	if !strings.Contains(stderr, "Error:") {
		t.Errorf("stderr = %q", stderr)
	}
	if env.EntriesData() != before {
		t.Error("malformed entries file must not be rewritten")
	}
}

func TestPick_NotATerminal(t *testing.T) {
	env := testutil.NewTestEnv(t)
	if err := env.InstallEntries("valid_entries.cfg"); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := executeCommand("pick")
	if err != nil {
		t.Fatalf("pick failed: %v", err)
	}
	for _, want := range []string{"1. web", "2. data science", "/srv/venvs/web"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("pick output should contain %q:\n%s", want, stdout)
		}
	}
}

func TestCheck(t *testing.T) {
	env := testutil.NewTestEnv(t)

	healthy := env.CreateEnvironment("healthy")
	for _, f := range []string{"pyvenv.cfg", filepath.Join("bin", "python")} {
		p := filepath.Join(healthy, f)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if _, _, err := executeCommand("add", "good", "-p", healthy); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	t.Run("healthy", func(t *testing.T) {
		stdout, _, err := executeCommand("check", "good")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if !strings.Contains(stdout, "✓ healthy") {
			t.Errorf("output = %q", stdout)
		}
	})

	t.Run("missing", func(t *testing.T) {
		gone := env.CreateEnvironment("gone")
		if _, _, err := executeCommand("add", "gone", "-p", gone); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := os.RemoveAll(gone); err != nil {
			t.Fatal(err)
		}

		stdout, stderr, err := executeCommand("check")
		if err == nil {
			t.Fatal("check should fail when an environment is missing")
		}
		if !strings.Contains(stdout, "✗ missing") || !strings.Contains(stdout, "✓ healthy") {
			t.Errorf("output = %q", stdout)
		}
		if !strings.Contains(stderr, "1 of 2 environments are not healthy") {
			t.Errorf("stderr = %q", stderr)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, _, err := executeCommand("check", "ghost")
		if code := errors.GetExitCode(err); code != errors.ExitEntryNotFound {
			t.Errorf("exit code = %d, want %d", code, errors.ExitEntryNotFound)
		}
	})
}

func TestUnknownCommandSuggestion(t *testing.T) {
	_, _, err := executeCommand("lst")
	if err == nil {
		t.Fatal("unknown command should fail")
	}
	if !strings.Contains(err.Error(), "Did you mean this?") || !strings.Contains(err.Error(), "list") {
		t.Errorf("err = %v, want a suggestion for list", err)
	}
}

func TestHistory(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.CreateEnvironment("existing")

	stdout, _, err := executeCommand("history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(stdout, "No history recorded") {
		t.Errorf("output = %q", stdout)
	}

	steps := [][]string{
		{"create", "web"},
		{"add", "ext", "-p", dir},
		{"remove", "ext", "--keep-files"},
		{"rm", "web"},
	}
	for _, args := range steps {
		if _, _, err := executeCommand(args...); err != nil {
			t.Fatalf("%v failed: %v", args, err)
		}
	}

	stdout, _, err = executeCommand("history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %q", stdout)
	}
	for i, want := range []string{"create", "add", "forget", "remove"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want %s", i, lines[i], want)
		}
	}

	stdout, _, err = executeCommand("history", "ext", "--json")
	if err != nil {
		t.Fatalf("history --json failed: %v", err)
	}
	lines = strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], `"type":"add"`) {
		t.Errorf("json output = %q", stdout)
	}
}
