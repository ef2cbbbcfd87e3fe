package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/clintrovert/landed/pkg/types"
)

// Client wraps the GitHub API for a single repository.
type Client struct {
	api    *github.Client
	owner  string
	name   string
	logger *zap.Logger
}

// NewClient creates a client authenticated with accessToken and bound
// to the repository fullName ("owner/name").
func NewClient(accessToken, fullName string, logger *zap.Logger) (*Client, error) {
	owner, name, err := SplitFullName(fullName)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: accessToken},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		api:    github.NewClient(tc),
		owner:  owner,
		name:   name,
		logger: logger,
	}, nil
}

// SplitFullName splits an "owner/name" repository string.
func SplitFullName(fullName string) (owner, name string, err error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", fullName)
	}
	return parts[0], parts[1], nil
}

// LookupRepository verifies the repository exists and is accessible
// with the configured credentials.
func (c *Client) LookupRepository(ctx context.Context) error {
	if _, _, err := c.api.Repositories.Get(ctx, c.owner, c.name); err != nil {
		return wrapErr("lookup repository", err)
	}
	return nil
}

// ListPullRequests returns every pull request in the given state, in
// the order the API yields them. Listing is paginated internally.
func (c *Client) ListPullRequests(ctx context.Context, state string) ([]*types.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []*types.PullRequest
	for {
		prs, resp, err := c.api.PullRequests.List(ctx, c.owner, c.name, opts)
		if err != nil {
			return nil, wrapErr("list pull requests", err)
		}

		for _, pr := range prs {
			all = append(all, &types.PullRequest{
				Number:  pr.GetNumber(),
				Title:   pr.GetTitle(),
				BaseRef: pr.GetBase().GetRef(),
				HeadRef: pr.GetHead().GetRef(),
				HeadSHA: pr.GetHead().GetSHA(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.logger.Info("listed pull requests",
		zap.String("state", state),
		zap.Int("count", len(all)),
	)

	return all, nil
}

// CompareRefs runs a three-way comparison of base..head and returns
// the resulting status.
func (c *Client) CompareRefs(ctx context.Context, base, head string) (types.ComparisonStatus, error) {
	cmp, _, err := c.api.Repositories.CompareCommits(ctx, c.owner, c.name, base, head, nil)
	if err != nil {
		return "", wrapErr("compare refs", err)
	}
	return types.ParseComparisonStatus(cmp.GetStatus())
}

// CreateComment posts body as an issue-style comment on the pull
// request identified by number.
func (c *Client) CreateComment(ctx context.Context, number int, body string) error {
	comment := &github.IssueComment{
		Body: github.String(body),
	}

	if _, _, err := c.api.Issues.CreateComment(ctx, c.owner, c.name, number, comment); err != nil {
		return wrapErr("create comment", err)
	}

	c.logger.Info("posted comment",
		zap.Int("pr_number", number),
	)

	return nil
}
