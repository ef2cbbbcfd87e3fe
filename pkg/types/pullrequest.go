package types

// PullRequest contains the pull request fields the tool works with,
// decoupled from the GitHub client's object model.
type PullRequest struct {
	Number  int
	Title   string
	BaseRef string
	HeadRef string
	HeadSHA string
}
