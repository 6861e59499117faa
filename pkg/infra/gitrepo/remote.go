package gitrepo

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Remotes is what a checkout tells about where pull requests go.
type Remotes struct {
	// ForkOwner is the owner of "origin".
	ForkOwner string
	// UpstreamOwner and UpstreamRepo come from "upstream" when it exists.
	UpstreamOwner string
	UpstreamRepo  string
}

// DetectRemotes reads GitHub owner and repository of the origin and upstream
// remotes of the checkout at path.
func DetectRemotes(path string) (*Remotes, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}

	var result Remotes

	origin, err := repo.Remote("origin")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get remote origin", goerr.V("path", path))
	}
	if len(origin.Config().URLs) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no remote URL found", goerr.V("path", path))
	}
	owner, _, err := ParseGitHubURL(origin.Config().URLs[0])
	if err != nil {
		return nil, err
	}
	result.ForkOwner = owner

	if upstream, err := repo.Remote(UpstreamRemote); err == nil && len(upstream.Config().URLs) > 0 {
		owner, name, err := ParseGitHubURL(upstream.Config().URLs[0])
		if err != nil {
			return nil, err
		}
		result.UpstreamOwner, result.UpstreamRepo = owner, name
	}

	return &result, nil
}

// ParseGitHubURL parses git@github.com:owner/repo.git or https://github.com/owner/repo.git.
func ParseGitHubURL(url string) (owner, repo string, err error) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		parts := strings.SplitN(url, "github.com/", 2)
		path = parts[1]
	}

	ownerRepo := strings.Split(strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git"), "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	return ownerRepo[0], ownerRepo[1], nil
}
