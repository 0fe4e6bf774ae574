// Package origin validates remote addresses before they are registered.
package origin

import "regexp"

// GitHubHost is the only hosting provider accepted by IsGitHubOrigin.
const GitHubHost = "github.com"

// Owner and repository names are restricted to ASCII letters, digits and hyphens.
var githubOriginPattern = regexp.MustCompile(`^git@github\.com:[A-Za-z0-9-]+/[A-Za-z0-9-]+\.git$`)

// IsGitHubOrigin reports whether address is exactly a GitHub ssh remote of the
// form git@github.com:<owner>/<repo>.git. The whole string must match.
func IsGitHubOrigin(address string) bool {
	return githubOriginPattern.MatchString(address)
}
