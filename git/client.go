package git

import (
	"context"
	"strings"

	"github.com/grovetools/patrol/command"
	"github.com/grovetools/patrol/errors"
)

// Client is the version-control query surface patrol consumes. Every query
// takes the repository path explicitly; implementations must never rely on
// the process working directory, which is shared across concurrent probes.
type Client interface {
	// CurrentBranch returns the checked-out branch name for the repository,
	// or a short-hash sentinel like "(a1b2c3d)" when HEAD is detached.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)

	// ShortStatus returns the parsed `git status --short` entries for the
	// repository's working tree.
	ShortStatus(ctx context.Context, repoPath string) ([]StatusEntry, error)
}

// CLIClient implements Client by shelling out to the git executable.
type CLIClient struct {
	cmdBuilder *command.SafeBuilder
}

// Ensure it implements the interface
var _ Client = (*CLIClient)(nil)

// NewCLIClient creates a git client backed by the real git executable.
func NewCLIClient() *CLIClient {
	return &CLIClient{cmdBuilder: command.NewSafeBuilder()}
}

// NewCLIClientWithExecutor creates a git client with a custom command
// executor, used by tests to substitute the git binary.
func NewCLIClientWithExecutor(exec command.Executor) *CLIClient {
	return &CLIClient{cmdBuilder: command.NewSafeBuilderWithExecutor(exec)}
}

// CurrentBranch returns the current branch for the repository at repoPath.
func (c *CLIClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	out, err := c.run(ctx, repoPath, "branch", "--show-current")
	if err != nil {
		return "", err
	}

	branch := strings.TrimSpace(out)
	if branch != "" {
		return branch, nil
	}

	// Detached HEAD: fall back to a short commit hash sentinel.
	hash, err := c.run(ctx, repoPath, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return "(" + strings.TrimSpace(hash) + ")", nil
}

// ShortStatus returns the working-tree change entries for the repository.
func (c *CLIClient) ShortStatus(ctx context.Context, repoPath string) ([]StatusEntry, error) {
	out, err := c.run(ctx, repoPath, "status", "--short")
	if err != nil {
		return nil, err
	}
	return ParseShortStatus(out), nil
}

// run executes a git subcommand with the repository path set as the working
// directory of the child process only.
func (c *CLIClient) run(ctx context.Context, repoPath string, args ...string) (string, error) {
	if err := c.cmdBuilder.Validate("repoPath", repoPath); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid repository path")
	}

	cmd, err := c.cmdBuilder.Build(ctx, "git", args...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to build git command")
	}

	execCmd := cmd.Exec()
	execCmd.Dir = repoPath
	output, err := execCmd.Output()
	if err != nil {
		return "", errors.CommandFailed("git "+strings.Join(args, " "), err).
			WithDetail("path", repoPath)
	}

	return string(output), nil
}
