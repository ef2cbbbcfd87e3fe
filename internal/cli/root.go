// Package cli wires the command-line surface to the runner.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clintrovert/landed/internal/github"
	"github.com/clintrovert/landed/internal/gitremote"
	"github.com/clintrovert/landed/internal/runner"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitStartupError = 2
)

var (
	flagState  string
	flagToken  string
	flagDryRun bool
)

// exitCode is set by the command handler to control the process exit code.
var exitCode = ExitSuccess

var rootCmd = &cobra.Command{
	Use:   "landed <repo> <branch> <status>",
	Short: "Comment on pull requests whose commits a branch already contains",
	Long: `landed checks, for each pull request in a repository, whether the target
branch already contains all of that PR's commits. PRs whose commits have
landed on the branch get the given status text posted as a comment.

Pass "." as <repo> to detect owner/name from the origin remote of the
current git working tree.`,
	Args: cobra.ExactArgs(3),
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&flagState, "state", "open", "which PRs to process: open, closed or all")
	rootCmd.Flags().StringVar(&flagToken, "token", "", "GitHub token (overrides GITHUB_TOKEN/GH_TOKEN env vars)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "classify PRs but do not post comments")
}

// Run executes the root command and returns the process exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitStartupError
	}
	return exitCode
}

func runRoot(cmd *cobra.Command, args []string) error {
	repoArg, branch, status := args[0], args[1], args[2]

	switch flagState {
	case "open", "closed", "all":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid --state %q: must be open, closed or all\n", flagState)
		exitCode = ExitStartupError
		return nil
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	token, err := github.ResolveToken(flagToken)
	if err != nil {
		logger.Error("missing credential", zap.Error(err))
		exitCode = ExitStartupError
		return nil
	}

	repo := repoArg
	if repo == "." {
		repo, err = gitremote.Detect(".")
		if err != nil {
			logger.Error("failed to detect repository from working tree", zap.Error(err))
			exitCode = ExitStartupError
			return nil
		}
		logger.Info("detected repository", zap.String("repo", repo))
	}

	client, err := github.NewClient(token, repo, logger)
	if err != nil {
		logger.Error("invalid repository argument", zap.String("repo", repo), zap.Error(err))
		exitCode = ExitStartupError
		return nil
	}

	ctx := context.Background()
	if err := client.LookupRepository(ctx); err != nil {
		logger.Error("could not access repository", zap.String("repo", repo), zap.Error(err))
		exitCode = ExitStartupError
		return nil
	}

	run := runner.NewRunner(client, runner.Options{
		Repo:   repo,
		Branch: branch,
		Status: status,
		State:  flagState,
		DryRun: flagDryRun,
	}, os.Stdout, logger)

	if _, err := run.Run(ctx); err != nil {
		logger.Error("run failed", zap.Error(err))
		exitCode = ExitRuntimeError
	}

	return nil
}
