// Package publish pushes a freshly initialised repository to its remote for
// the first time.
package publish

import (
	"context"

	"go.uber.org/zap"

	"github.com/setup-gh/setup-gh/internal/command"
	"github.com/setup-gh/setup-gh/internal/config"
	"github.com/setup-gh/setup-gh/internal/errors"
	"github.com/setup-gh/setup-gh/internal/origin"
	"github.com/setup-gh/setup-gh/internal/progress"
)

// Progress messages shown before each step
const (
	MessageStaging   = "Staging file(s)"
	MessageCommit    = "Committing file(s)"
	MessageRename    = "Renaming default branch"
	MessageRemoteAdd = "Setting up origin"
	MessagePush      = "Pushing to remote"
)

// Options describes a single publish run. Zero values fall back to the
// built-in defaults from the config package.
type Options struct {
	Origin          string
	Pathspec        string
	CommitMessage   string
	KeepMaster      bool
	SkipOriginCheck bool

	Branch       string // target name the current branch is renamed to
	MasterBranch string // branch pushed when KeepMaster is set
	Remote       string
	WorkDir      string // empty means the process working directory
}

// PushBranch returns the branch that will be pushed upstream.
func (o Options) PushBranch() string {
	if o.KeepMaster {
		return o.MasterBranch
	}
	return o.Branch
}

func (o Options) withDefaults() Options {
	d := config.Default().Defaults
	if o.Pathspec == "" {
		o.Pathspec = d.Pathspec
	}
	if o.CommitMessage == "" {
		o.CommitMessage = d.CommitMessage
	}
	if o.Branch == "" {
		o.Branch = d.Branch
	}
	if o.MasterBranch == "" {
		o.MasterBranch = d.MasterBranch
	}
	if o.Remote == "" {
		o.Remote = d.Remote
	}
	return o
}

type step struct {
	message string
	cmd     command.Command
}

// Steps returns the commands a run with opts executes, in order.
func Steps(opts Options) []command.Command {
	opts = opts.withDefaults()
	steps := plan(opts)
	cmds := make([]command.Command, 0, len(steps))
	for _, s := range steps {
		cmds = append(cmds, s.cmd)
	}
	return cmds
}

func plan(opts Options) []step {
	steps := []step{
		{MessageStaging, command.GitAdd(opts.Pathspec)},
		{MessageCommit, command.GitCommit(opts.CommitMessage)},
	}
	if !opts.KeepMaster {
		steps = append(steps, step{MessageRename, command.GitBranchRename(opts.Branch)})
	}
	steps = append(steps,
		step{MessageRemoteAdd, command.GitRemoteAdd(opts.Remote, opts.Origin)},
		step{MessagePush, command.GitPushUpstream(opts.Remote, opts.PushBranch())},
	)

	for i := range steps {
		steps[i].cmd = command.InDir(steps[i].cmd, opts.WorkDir)
	}
	return steps
}

// Publisher runs the publish steps through an Executor
type Publisher struct {
	executor command.Executor
	reporter progress.Reporter
	logger   *zap.Logger
}

// New creates a Publisher. A nil logger disables logging.
func New(executor command.Executor, reporter progress.Reporter, logger *zap.Logger) *Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		executor: executor,
		reporter: reporter,
		logger:   logger,
	}
}

// Run validates the origin unless told not to, then stages, commits,
// optionally renames the branch, adds the remote and pushes with upstream
// tracking. The first failing step aborts the run; earlier steps are not
// undone.
func (p *Publisher) Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()

	if !opts.SkipOriginCheck && !origin.IsGitHubOrigin(opts.Origin) {
		p.logger.Debug("Origin rejected", zap.String("origin", opts.Origin))
		return errors.InvalidOrigin(opts.Origin)
	}

	for _, s := range plan(opts) {
		p.reporter.Step(s.message)
		p.logger.Debug("Running step",
			zap.String("step", s.message),
			zap.Strings("args", s.cmd.Args))

		if err := p.executor.Run(ctx, s.cmd); err != nil {
			p.logger.Debug("Step failed", zap.String("step", s.message), zap.Error(err))
			return err
		}
	}

	p.logger.Debug("Published",
		zap.String("origin", opts.Origin),
		zap.String("remote", opts.Remote),
		zap.String("branch", opts.PushBranch()))
	return nil
}
