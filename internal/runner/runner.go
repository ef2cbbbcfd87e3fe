// Package runner walks every pull request of a repository once and
// comments on the ones whose commits a target branch already contains.
package runner

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/clintrovert/landed/pkg/types"
)

// Outcome is the terminal result for one processed pull request.
type Outcome string

const (
	OutcomeCommented     Outcome = "commented"
	OutcomeCommentFailed Outcome = "comment_failed"
	OutcomeNotContained  Outcome = "not_contained"
	OutcomeWouldComment  Outcome = "would_comment"
)

// GitHubService is the slice of the GitHub boundary the runner consumes.
type GitHubService interface {
	ListPullRequests(ctx context.Context, state string) ([]*types.PullRequest, error)
	CompareRefs(ctx context.Context, base, head string) (types.ComparisonStatus, error)
	CreateComment(ctx context.Context, number int, body string) error
}

// Options configures a run.
type Options struct {
	Repo   string
	Branch string
	Status string
	State  string
	DryRun bool
}

// Report holds the totals of one run.
type Report struct {
	Processed int
	Commented int
}

// Runner coordinates listing, classification and commenting.
type Runner struct {
	service GitHubService
	opts    Options
	out     io.Writer
	logger  *zap.Logger
}

// NewRunner creates a new runner writing program output to out.
func NewRunner(service GitHubService, opts Options, out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{
		service: service,
		opts:    opts,
		out:     out,
		logger:  logger,
	}
}

// Run processes all pull requests sequentially and returns the totals.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	fmt.Fprintf(r.out, "Repository: %s\n", r.opts.Repo)
	fmt.Fprintf(r.out, "Target branch: %s\n", r.opts.Branch)
	fmt.Fprintf(r.out, "PR state: %s\n", r.opts.State)

	prs, err := r.service.ListPullRequests(ctx, r.opts.State)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	report := &Report{}
	for _, pr := range prs {
		report.Processed++

		status, err := r.service.CompareRefs(ctx, r.opts.Branch, pr.HeadSHA)
		if err != nil {
			r.logger.Error("compare failed",
				zap.Int("pr_number", pr.Number),
				zap.String("base", pr.BaseRef),
				zap.String("head", pr.HeadRef),
				zap.Error(err),
			)
			continue
		}

		contained := status.Contained()
		outcome := OutcomeNotContained
		if contained {
			outcome = r.comment(ctx, pr, report)
		}

		fmt.Fprintf(r.out, "PR #%d [%s <- %s] %q: contained=%t -> %s\n",
			pr.Number, pr.BaseRef, pr.HeadRef, pr.Title, contained, outcome)
	}

	fmt.Fprintf(r.out, "Done. Processed %d PR(s); commented on %d PR(s).\n",
		report.Processed, report.Commented)

	return report, nil
}

// comment posts the status text on pr, or skips posting in dry-run mode.
func (r *Runner) comment(ctx context.Context, pr *types.PullRequest, report *Report) Outcome {
	if r.opts.DryRun {
		return OutcomeWouldComment
	}

	if err := r.service.CreateComment(ctx, pr.Number, r.opts.Status); err != nil {
		r.logger.Error("contains all commits, but commenting failed",
			zap.Int("pr_number", pr.Number),
			zap.Error(err),
		)
		return OutcomeCommentFailed
	}

	report.Commented++
	return OutcomeCommented
}
