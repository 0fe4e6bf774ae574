package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/setup-gh/setup-gh/internal/command"
	"github.com/setup-gh/setup-gh/internal/config"
	"github.com/setup-gh/setup-gh/internal/errors"
	"github.com/setup-gh/setup-gh/internal/logger"
	"github.com/setup-gh/setup-gh/internal/origin"
	"github.com/setup-gh/setup-gh/internal/progress"
	"github.com/setup-gh/setup-gh/internal/publish"
)

const (
	flagPathspec      = "pathspec"
	flagMaster        = "master"
	flagCommitMessage = "commit-message"
	flagNoCheck       = "no-check"
	flagConfig        = "config"
	flagDebug         = "debug"
	flagDryRun        = "dry-run"
)

// dependencies are swapped out in tests
type dependencies struct {
	newLogger   func(debug bool) (*zap.Logger, error)
	newExecutor func(log *zap.Logger) command.Executor
	newReporter func() progress.Reporter
}

func defaultDependencies() dependencies {
	return dependencies{
		newLogger: logger.New,
		newExecutor: func(log *zap.Logger) command.Executor {
			return command.NewExecutor(command.NewRealShellExecutor(log))
		},
		newReporter: func() progress.Reporter {
			return progress.New(os.Stderr)
		},
	}
}

func newApp(deps dependencies) *cli.Command {
	return &cli.Command{
		Name:      "setup-gh",
		Usage:     "Publish a new local repository to GitHub",
		UsageText: "setup-gh [options] <origin>",
		ArgsUsage: "<origin>",
		Description: "setup-gh stages files, creates the initial commit, renames the default branch, " +
			"adds the origin remote and pushes with upstream tracking.",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagPathspec,
				Aliases: []string{"p"},
				Value:   config.DefaultPathspec,
				Usage:   "Pathspec used for adding files",
			},
			&cli.BoolFlag{
				Name:    flagMaster,
				Aliases: []string{"m"},
				Usage:   "Keep default branch name as master",
			},
			&cli.StringFlag{
				Name:    flagCommitMessage,
				Aliases: []string{"c"},
				Value:   config.DefaultCommitMessage,
				Usage:   "Initial commit message",
			},
			&cli.BoolFlag{
				Name:  flagNoCheck,
				Usage: "Skip validation for origin string",
			},
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   "Path to configuration file (default: user config dir)",
				Sources: cli.EnvVars("SETUP_GH_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("SETUP_GH_DEBUG"),
			},
			&cli.BoolFlag{
				Name:  flagDryRun,
				Usage: "Print the git commands without running them",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return publishCommand(ctx, cmd, deps)
		},
	}
}

func publishCommand(ctx context.Context, cmd *cli.Command, deps dependencies) error {
	switch {
	case cmd.Args().Len() == 0:
		return errors.OriginRequired()
	case cmd.Args().Len() > 1:
		return fmt.Errorf("unexpected arguments: %s", strings.Join(cmd.Args().Tail(), " "))
	}

	log, err := deps.newLogger(cmd.Bool(flagDebug))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(cmd.String(flagConfig), log)
	if err != nil {
		return err
	}

	opts := buildOptions(cmd, cfg)

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	if cmd.Bool(flagDryRun) {
		return printPlan(w, opts)
	}

	reporter := deps.newReporter()
	defer reporter.Stop()

	publisher := publish.New(deps.newExecutor(log), reporter, log)
	if err := publisher.Run(ctx, opts); err != nil {
		return err
	}

	reporter.Stop()
	_, err = fmt.Fprintf(w, "✓ Pushed '%s' to %s (%s)\n", opts.PushBranch(), opts.Remote, opts.Origin)
	return err
}

func loadConfig(path string, log *zap.Logger) (*config.Config, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			log.Debug("No user config directory, using built-in defaults", zap.Error(err))
			return config.Default(), nil
		}
		path = defaultPath
	}

	log.Debug("Loading configuration", zap.String("path", path))
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	return cfg, nil
}

// buildOptions applies explicit flags over configuration values.
func buildOptions(cmd *cli.Command, cfg *config.Config) publish.Options {
	opts := publish.Options{
		Origin:          cmd.Args().First(),
		Pathspec:        cfg.Defaults.Pathspec,
		CommitMessage:   cfg.Defaults.CommitMessage,
		KeepMaster:      cmd.Bool(flagMaster),
		SkipOriginCheck: cmd.Bool(flagNoCheck),
		Branch:          cfg.Defaults.Branch,
		MasterBranch:    cfg.Defaults.MasterBranch,
		Remote:          cfg.Defaults.Remote,
	}
	if cmd.IsSet(flagPathspec) {
		opts.Pathspec = cmd.String(flagPathspec)
	}
	if cmd.IsSet(flagCommitMessage) {
		opts.CommitMessage = cmd.String(flagCommitMessage)
	}
	return opts
}

func printPlan(w io.Writer, opts publish.Options) error {
	if !opts.SkipOriginCheck && !origin.IsGitHubOrigin(opts.Origin) {
		return errors.InvalidOrigin(opts.Origin)
	}
	for _, c := range publish.Steps(opts) {
		if _, err := fmt.Fprintln(w, strings.Join(append([]string{c.Name}, quoteArgs(c.Args)...), " ")); err != nil {
			return err
		}
	}
	return nil
}

func quoteArgs(args []string) []string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n'\"") {
			quoted[i] = fmt.Sprintf("%q", arg)
		} else {
			quoted[i] = arg
		}
	}
	return quoted
}
