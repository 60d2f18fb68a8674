package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	"github.com/hylla/taskboard/internal/adapters/storage/sqlite"
	"github.com/hylla/taskboard/internal/app"
	"github.com/hylla/taskboard/internal/config"
	"github.com/hylla/taskboard/internal/platform"
	"github.com/hylla/taskboard/internal/tui"
	"github.com/spf13/cobra"
)

// version stores a package-level helper value.
var version = "dev"

// program represents program data used by this package.
type program interface {
	Run() (tea.Model, error)
}

// programFactory stores a package-level helper value.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	appName    string
	devMode    bool
	username   string
}

// main handles main.
func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := fang.Execute(context.Background(), root, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the taskboard command tree.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	opts := rootOptions{appName: platform.DefaultAppName, devMode: version == "dev"}
	if envDev, ok := parseBoolEnv("TASKBOARD_DEV_MODE"); ok {
		opts.devMode = envDev
	}
	if envApp := strings.TrimSpace(os.Getenv("TASKBOARD_APP_NAME")); envApp != "" {
		opts.appName = envApp
	}

	root := &cobra.Command{
		Use:           "taskboard",
		Short:         "A terminal kanban board with drag and drop",
		Long:          "Taskboard is a terminal kanban board. Sign in, add tasks, and drag them between columns with the mouse or keyboard.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd.Context(), opts, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config TOML")
	flags.StringVar(&opts.appName, "app", opts.appName, "application name for config/log path resolution")
	flags.BoolVar(&opts.devMode, "dev", opts.devMode, "use dev mode paths (<app>-dev)")
	root.Flags().StringVar(&opts.username, "user", "", "sign in as this user and skip the login screen")

	root.AddCommand(&cobra.Command{
		Use:   "paths",
		Short: "Print resolved config and log paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printPaths(cmd.OutOrStdout(), opts)
		},
	})
	return root
}

// resolvePaths resolves platform paths for the selected app and mode.
func resolvePaths(opts rootOptions) (platform.Paths, error) {
	return platform.DefaultPathsWithOptions(platform.Options{
		AppName: opts.appName,
		DevMode: opts.devMode,
	})
}

// printPaths writes the resolved runtime paths.
func printPaths(stdout io.Writer, opts rootOptions) error {
	paths, err := resolvePaths(opts)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "app: %s\n", opts.appName)
	_, _ = fmt.Fprintf(stdout, "dev_mode: %t\n", opts.devMode)
	_, _ = fmt.Fprintf(stdout, "config: %s\n", resolveConfigPath(opts, paths))
	_, _ = fmt.Fprintf(stdout, "data_dir: %s\n", paths.DataDir)
	_, _ = fmt.Fprintf(stdout, "log_dir: %s\n", paths.LogDir)
	return nil
}

// resolveConfigPath applies flag, env, then platform default.
func resolveConfigPath(opts rootOptions, paths platform.Paths) string {
	if path := strings.TrimSpace(opts.configPath); path != "" {
		return path
	}
	if envPath := strings.TrimSpace(os.Getenv("TASKBOARD_CONFIG")); envPath != "" {
		return envPath
	}
	return paths.ConfigPath
}

// runBoard runs the board TUI against a fresh in-memory store.
func runBoard(ctx context.Context, opts rootOptions, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	paths, err := resolvePaths(opts)
	if err != nil {
		return err
	}
	configPath := resolveConfigPath(opts, paths)

	cfg, err := config.Load(configPath, config.Default())
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}

	logger, err := newRuntimeLogger(stderr, opts.appName, opts.devMode, cfg.Logging, time.Now)
	if err != nil {
		return fmt.Errorf("configure runtime logger: %w", err)
	}
	// Keep TUI rendering clean: runtime logs stay in the dev-file sink while the board is active.
	logger.SetConsoleEnabled(false)
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			_, _ = fmt.Fprintf(stderr, "warning: close runtime log sink: %v\n", closeErr)
		}
	}()

	logger.Info("startup configuration resolved", "app", opts.appName, "dev_mode", opts.devMode)
	logger.Debug("runtime paths resolved", "config_path", configPath, "data_dir", paths.DataDir, "log_dir", paths.LogDir)
	logger.Info("configuration loaded", "config_path", configPath, "states", strings.Join(cfg.StateIDs(), ","), "log_level", cfg.Logging.Level)
	if devPath := logger.DevLogPath(); devPath != "" {
		logger.Info("dev file logging enabled", "path", devPath)
	}

	logger.Info("opening in-memory sqlite repository")
	repo, err := sqlite.OpenInMemory()
	if err != nil {
		logger.Error("sqlite open failed", "err", err)
		return fmt.Errorf("open sqlite repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("sqlite close failed", "err", closeErr)
		}
	}()

	svc := app.NewService(repo, uuid.NewString, nil, app.ServiceConfig{
		StateTemplates: toStateTemplates(cfg.Board.States),
	})
	columns, err := svc.EnsureBoard(ctx)
	if err != nil {
		logger.Error("board bootstrap failed", "err", err)
		return fmt.Errorf("ensure board: %w", err)
	}
	logger.Info("board ready", "columns", len(columns))

	m := tui.NewModel(newLoggedBoard(svc, logger), tuiOptions(cfg, opts.username)...)
	logger.Info("starting tui program loop")
	if _, err := programFactory(m).Run(); err != nil {
		logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	logger.Info("command flow complete", "command", "tui")
	return nil
}

// tuiOptions maps config onto model options.
func tuiOptions(cfg config.Config, username string) []tui.Option {
	return []tui.Option{
		tui.WithConfirmDelete(cfg.UI.ConfirmDelete),
		tui.WithDateFormat(cfg.UI.DateFormat),
		tui.WithDefaultDay(cfg.Board.DefaultDay),
		tui.WithMouseDrag(cfg.UI.MouseDrag),
		tui.WithMarkdownStyle(cfg.UI.MarkdownStyle),
		tui.WithKeyConfig(tui.KeyConfig{
			AddCard:     cfg.Keys.AddCard,
			ActivityLog: cfg.Keys.ActivityLog,
			CopyCard:    cfg.Keys.CopyCard,
		}),
		tui.WithUsername(username),
	}
}

// toStateTemplates converts configured board states into column templates.
func toStateTemplates(states []config.StateConfig) []app.StateTemplate {
	out := make([]app.StateTemplate, 0, len(states))
	for _, state := range states {
		out = append(out, app.StateTemplate{
			ID:       state.ID,
			Name:     state.Name,
			Position: state.Position,
		})
	}
	return out
}

// parseBoolEnv parses input into a normalized form.
func parseBoolEnv(name string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
