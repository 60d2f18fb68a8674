package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/hylla/taskboard/internal/config"
	"github.com/hylla/taskboard/internal/tui"
)

// TestMain sets deterministic environment defaults for CLI tests.
func TestMain(m *testing.M) {
	_ = os.Setenv("TASKBOARD_DEV_MODE", "false")
	os.Exit(m.Run())
}

// fakeProgram represents fake program data used by this package.
type fakeProgram struct {
	runErr error
}

// Run runs the requested command flow.
func (f fakeProgram) Run() (tea.Model, error) {
	return nil, f.runErr
}

// execute runs the root command with args.
func execute(t *testing.T, args []string, stdout, stderr io.Writer) error {
	t.Helper()
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

// stubProgram swaps the program factory for the test and records the model.
func stubProgram(t *testing.T, runErr error) *tea.Model {
	t.Helper()
	origFactory := programFactory
	t.Cleanup(func() { programFactory = origFactory })
	var started tea.Model
	programFactory = func(m tea.Model) program {
		started = m
		return fakeProgram{runErr: runErr}
	}
	return &started
}

// TestRunVersion verifies behavior for the covered scenario.
func TestRunVersion(t *testing.T) {
	var out strings.Builder
	if err := execute(t, []string{"--version"}, &out, io.Discard); err != nil {
		t.Fatalf("execute(version) error = %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

// TestRunStartsProgram verifies behavior for the covered scenario.
func TestRunStartsProgram(t *testing.T) {
	started := stubProgram(t, nil)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := execute(t, []string{"--config", cfgPath}, io.Discard, io.Discard); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if _, ok := (*started).(tui.Model); !ok {
		t.Fatalf("expected tui.Model to start, got %T", *started)
	}
}

// TestRunProgramError verifies program failures are wrapped.
func TestRunProgramError(t *testing.T) {
	stubProgram(t, errors.New("tty gone"))
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	err := execute(t, []string{"--config", cfgPath}, io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "run tui program") {
		t.Fatalf("expected wrapped program error, got %v", err)
	}
}

// TestRunWithUserAndCustomStates verifies config and flags reach the model.
func TestRunWithUserAndCustomStates(t *testing.T) {
	started := stubProgram(t, nil)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[board]
default_day = "Friday"

[[board.states]]
id = "backlog"
name = "Backlog"
position = 0

[[board.states]]
id = "shipped"
name = "Shipped"
position = 1
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := execute(t, []string{"--config", cfgPath, "--user", "grace"}, io.Discard, io.Discard); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	m, ok := (*started).(tui.Model)
	if !ok {
		t.Fatalf("expected tui.Model, got %T", *started)
	}
	msg := m.Init()()
	updated, _ := m.Update(msg)
	updated, _ = updated.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if updated == nil {
		t.Fatal("expected model after load")
	}
}

// TestRunInvalidFlag verifies behavior for the covered scenario.
func TestRunInvalidFlag(t *testing.T) {
	if err := execute(t, []string{"--wat"}, io.Discard, io.Discard); err == nil {
		t.Fatal("expected invalid flag error")
	}
}

// TestRunUnknownCommand verifies behavior for the covered scenario.
func TestRunUnknownCommand(t *testing.T) {
	if err := execute(t, []string{"wat"}, io.Discard, io.Discard); err == nil {
		t.Fatal("expected unknown command error")
	}
}

// TestRunPathsCommand verifies behavior for the covered scenario.
func TestRunPathsCommand(t *testing.T) {
	var out strings.Builder
	if err := execute(t, []string{"--app", "boardtest", "paths"}, &out, io.Discard); err != nil {
		t.Fatalf("execute(paths) error = %v", err)
	}
	for _, want := range []string{"app: boardtest", "dev_mode: false", "config:", "data_dir:", "log_dir:"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in paths output, got %q", want, out.String())
		}
	}
}

// TestRunConfigEnvOverride verifies behavior for the covered scenario.
func TestRunConfigEnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "env.toml")
	t.Setenv("TASKBOARD_CONFIG", cfgPath)
	t.Setenv("TASKBOARD_APP_NAME", "envboard")
	var out strings.Builder
	if err := execute(t, []string{"paths"}, &out, io.Discard); err != nil {
		t.Fatalf("execute(paths) error = %v", err)
	}
	if !strings.Contains(out.String(), "config: "+cfgPath) {
		t.Fatalf("expected env config path, got %q", out.String())
	}
	if !strings.Contains(out.String(), "app: envboard") {
		t.Fatalf("expected env app name, got %q", out.String())
	}
}

// TestParseBoolEnv verifies behavior for the covered scenario.
func TestParseBoolEnv(t *testing.T) {
	t.Setenv("TASKBOARD_TEST_BOOL", "true")
	if v, ok := parseBoolEnv("TASKBOARD_TEST_BOOL"); !ok || !v {
		t.Fatalf("expected true, got %v %v", v, ok)
	}
	t.Setenv("TASKBOARD_TEST_BOOL", "nope")
	if _, ok := parseBoolEnv("TASKBOARD_TEST_BOOL"); ok {
		t.Fatal("expected invalid bool to be ignored")
	}
	if _, ok := parseBoolEnv("TASKBOARD_TEST_UNSET"); ok {
		t.Fatal("expected unset env to be ignored")
	}
}

// TestRunRejectsInvalidLoggingLevelFromConfig verifies behavior for the covered scenario.
func TestRunRejectsInvalidLoggingLevelFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "taskboard.toml")
	if err := os.WriteFile(cfgPath, []byte("[logging]\nlevel = \"verbose\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	err := execute(t, []string{"--config", cfgPath}, io.Discard, io.Discard)
	if err == nil {
		t.Fatal("expected invalid logging level error")
	}
	if !strings.Contains(err.Error(), "invalid logging.level") {
		t.Fatalf("expected logging level validation error, got %v", err)
	}
}

// TestRunTUIModeWritesRuntimeLogsToFileOnly verifies TUI runtime logs stay out of stderr and persist to the dev log file.
func TestRunTUIModeWritesRuntimeLogsToFileOnly(t *testing.T) {
	stubProgram(t, nil)
	workspace := t.TempDir()
	t.Chdir(workspace)

	cfgPath := filepath.Join(workspace, "config.toml")
	var stderr bytes.Buffer
	if err := execute(t, []string{"--dev", "--config", cfgPath}, io.Discard, &stderr); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if got := strings.TrimSpace(stderr.String()); got != "" {
		t.Fatalf("expected no runtime stderr output in TUI mode, got %q", got)
	}

	logDir := filepath.Join(workspace, ".taskboard", "log")
	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	var logPath string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		logPath = filepath.Join(logDir, entry.Name())
		break
	}
	if logPath == "" {
		t.Fatalf("expected a .log file in %s", logDir)
	}
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{"starting tui program loop", "board ready"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("expected runtime log file to include %q, got %q", want, string(content))
		}
	}
}

// TestWorkspaceRootFromUsesNearestMarker verifies workspace-root resolution behavior.
func TestWorkspaceRootFromUsesNearestMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/test\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	nested := filepath.Join(root, "cmd", "taskboard")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	got := workspaceRootFrom(nested)
	if filepath.Clean(got) != filepath.Clean(root) {
		t.Fatalf("expected workspace root %q, got %q", root, got)
	}
}

// TestDevLogFilePathResolvesAgainstWorkspaceRoot verifies relative log dirs anchor at workspace root.
func TestDevLogFilePathResolvesAgainstWorkspaceRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/test\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	nested := filepath.Join(root, "cmd", "taskboard")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	t.Chdir(nested)
	got, err := devLogFilePath(".taskboard/log", "task board", time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("devLogFilePath() error = %v", err)
	}
	normalize := func(p string) string {
		return strings.TrimPrefix(filepath.Clean(p), "/private")
	}
	want := filepath.Join(root, ".taskboard", "log", "task-board-20261019.log")
	if normalize(got) != normalize(want) {
		t.Fatalf("expected log path %q, got %q", want, got)
	}
}

// TestRuntimeLoggerCanMuteConsoleSink verifies console muting.
func TestRuntimeLoggerCanMuteConsoleSink(t *testing.T) {
	var console bytes.Buffer
	logger, err := newRuntimeLogger(&console, "taskboard", false, config.Default().Logging, func() time.Time {
		return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	})
	if err != nil {
		t.Fatalf("newRuntimeLogger() error = %v", err)
	}

	logger.Info("before")
	logger.SetConsoleEnabled(false)
	logger.Info("during")
	logger.SetConsoleEnabled(true)
	logger.Info("after")

	out := console.String()
	if !strings.Contains(out, "before") {
		t.Fatalf("expected console log to include 'before', got %q", out)
	}
	if strings.Contains(out, "during") {
		t.Fatalf("expected muted console log to omit 'during', got %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Fatalf("expected console log to include 'after', got %q", out)
	}
}

// TestToStateTemplates verifies config states map onto column templates.
func TestToStateTemplates(t *testing.T) {
	got := toStateTemplates(config.Default().Board.States)
	if len(got) != 3 || got[0].Name == "" {
		t.Fatalf("unexpected templates %#v", got)
	}
}

// TestSanitizeLogFileStem verifies file-name normalization.
func TestSanitizeLogFileStem(t *testing.T) {
	if got := sanitizeLogFileStem(" a/b:c "); got != "a-b-c" {
		t.Fatalf("sanitizeLogFileStem() = %q", got)
	}
	if got := sanitizeLogFileStem("//"); got != "taskboard" {
		t.Fatalf("sanitizeLogFileStem() = %q", got)
	}
}
