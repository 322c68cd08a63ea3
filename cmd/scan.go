package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovetools/patrol/cli"
	"github.com/grovetools/patrol/config"
	"github.com/grovetools/patrol/errors"
	"github.com/grovetools/patrol/git"
	"github.com/grovetools/patrol/logging"
	"github.com/grovetools/patrol/pkg/repos"
	"github.com/grovetools/patrol/printer"
	"github.com/grovetools/patrol/tui"
	"github.com/grovetools/patrol/tui/dashboard"
)

// NewScanCmd creates the root command. Running patrol with no subcommand
// scans for repositories and reports their status.
func NewScanCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"patrol",
		"Patrol every git repository under a directory",
	)
	cmd.Long = "Walks a directory tree, finds every git repository in it, and reports " +
		"each one's branch and working-tree changes. Dirty repositories sort first, " +
		"most changes on top."
	cmd.Example = `# Scan the current directory
patrol

# Scan a workspace three levels deep, listing changed files
patrol -p ~/work -d 3 -v

# Plain text output for scripts
patrol --no-tui

# Keep the dashboard open and re-probe repositories on file changes
patrol -w`

	cmd.Flags().StringP("path", "p", "", "Directory to scan (default: current directory)")
	cmd.Flags().IntP("depth", "d", 0, "Maximum directory depth to search")
	cmd.Flags().Bool("no-tui", false, "Print plain text instead of the dashboard")
	cmd.Flags().BoolP("watch", "w", false, "Keep running and re-probe repositories on file changes")

	cmd.RunE = runScan
	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	logger := logging.NewLogger("patrol")
	handler := cli.NewErrorHandler(opts.Verbose)

	cfg, err := loadConfig(opts.ConfigFile)
	if err != nil {
		return handler.Handle(err)
	}

	root, depth := resolveScanArgs(cmd, cfg)

	if _, err := exec.LookPath("git"); err != nil {
		return handler.Handle(errors.GitNotInstalled(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	discovery, err := repos.NewDiscoveryService(logger, cfg.Ignore)
	if err != nil {
		return handler.Handle(err)
	}
	paths, err := discovery.Discover(root, depth)
	if err != nil {
		return handler.Handle(err)
	}

	prober := repos.NewProber(git.NewCLIClient())
	collector := repos.NewCollector(prober, logger)

	noTUI, _ := cmd.Flags().GetBool("no-tui")
	watch, _ := cmd.Flags().GetBool("watch")

	if opts.JSONOutput {
		return handler.Handle(printJSON(collector.Collect(ctx, paths, opts.Verbose)))
	}

	if noTUI || !isatty.IsTerminal(os.Stdout.Fd()) {
		list := collector.Collect(ctx, paths, opts.Verbose)
		return handler.Handle(printer.New(os.Stdout).Print(list, opts.Verbose))
	}

	tui.InitializeTUI()

	var updates <-chan *repos.Repo
	if watch {
		watcher, watchErr := repos.NewWatcher(prober, logger, paths)
		if watchErr != nil {
			logger.WithError(watchErr).Warn("Watch mode unavailable, continuing without it")
		} else {
			defer watcher.Close()
			updates = watcher.Run(ctx, opts.Verbose)
		}
	}

	stream := collector.Stream(ctx, paths, opts.Verbose)
	if err := dashboard.Run(stream, updates, opts.Verbose, cfg.Columns); err != nil {
		// The alternate screen never came up; render the same scan as text.
		logger.WithError(err).Debug("Dashboard failed, falling back to plain output")
		list := collector.Collect(ctx, paths, opts.Verbose)
		return handler.Handle(printer.New(os.Stdout).Print(list, opts.Verbose))
	}
	return nil
}

// loadConfig resolves and loads the configuration: an explicit --config path
// must exist, a discovered one is best-effort.
func loadConfig(explicit string) (*config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to resolve working directory")
	}
	return config.LoadFrom(cwd)
}

// resolveScanArgs picks the scan root and depth: flags win over the config
// file, which wins over built-in defaults.
func resolveScanArgs(cmd *cobra.Command, cfg *config.Config) (string, int) {
	root, _ := cmd.Flags().GetString("path")
	if root == "" {
		root = cfg.Root
	}
	if root == "" {
		root = "."
	}

	depth := cfg.Depth
	if cmd.Flags().Changed("depth") {
		depth, _ = cmd.Flags().GetInt("depth")
	}
	if depth <= 0 {
		depth = config.DefaultDepth
	}

	return root, depth
}

func printJSON(list []*repos.Repo) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
