package github

import (
	"fmt"
	"os"
)

// tokenEnvVars is the lookup order when no explicit token is given.
var tokenEnvVars = []string{
	"GITHUB_TOKEN",
	"GH_TOKEN",
	"GITHUB_PAT",
	"TOKEN",
}

// ResolveToken returns the explicit token if set, otherwise the first
// non-empty value among the known environment variables.
func ResolveToken(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range tokenEnvVars {
		if token := os.Getenv(name); token != "" {
			return token, nil
		}
	}
	return "", fmt.Errorf("no GitHub token provided: set GITHUB_TOKEN (or GH_TOKEN) or pass --token")
}
