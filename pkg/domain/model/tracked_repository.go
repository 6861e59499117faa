package model

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultBaseBranch = "master"
	DefinitionFileExt = ".rb"
)

// Upstream is the repository that receives pull requests, e.g. Homebrew/homebrew-core.
type Upstream struct {
	Owner      string `json:"owner"`
	Repo       string `json:"repo"`
	BaseBranch string `json:"base_branch,omitempty"`
}

func (x Upstream) Base() string {
	if x.BaseBranch == "" {
		return DefaultBaseBranch
	}
	return x.BaseBranch
}

// TrackedRepository is an upstream source repository watched for new releases.
type TrackedRepository struct {
	Name            types.RepoName         `json:"name"`
	Owner           string                 `json:"owner"`
	Repo            string                 `json:"repo"`
	Strategy        types.ResolverStrategy `json:"strategy"`
	ArchiveTemplate string                 `json:"archive_template,omitempty"`
	VersionRule     types.VersionRule      `json:"version_rule,omitempty"`

	CurrentVersion string `json:"current_version,omitempty"`
	ArchiveURL     string `json:"archive_url,omitempty"`
	ArchiveHash    string `json:"archive_hash,omitempty"`

	CheckoutPath     string   `json:"checkout_path,omitempty"`
	Upstream         Upstream `json:"upstream"`
	ForkOwner        string   `json:"fork_owner,omitempty"`
	PullRequestURL   string   `json:"pull_request_url,omitempty"`
	RevisionTargets  []string `json:"revision_targets,omitempty"`
	DependentTargets []string `json:"dependent_targets,omitempty"`

	Enabled   bool      `json:"enabled"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShortName returns the portion of Name after the last "/".
func (x *TrackedRepository) ShortName() string {
	name := string(x.Name)
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// FullName returns "{owner}/{repo}" of the watched repository.
func (x *TrackedRepository) FullName() string {
	return x.Owner + "/" + x.Repo
}

// DefinitionPath returns the path of the primary definition file in the checkout.
func (x *TrackedRepository) DefinitionPath() string {
	return filepath.Join(x.CheckoutPath, strings.ToLower(x.ShortName())+DefinitionFileExt)
}

// TargetPath returns the path of a sibling or dependent definition file in the checkout.
func (x *TrackedRepository) TargetPath(target string) string {
	return filepath.Join(x.CheckoutPath, target+DefinitionFileExt)
}

// BranchName is "{shortName}-{version}".
func (x *TrackedRepository) BranchName(version string) types.BranchName {
	return types.BranchName(x.ShortName() + "-" + version)
}

// Subject is used as both commit message and pull request title.
func (x *TrackedRepository) Subject(version string) string {
	return x.ShortName() + " " + version
}

func (x *TrackedRepository) Publishable() bool {
	return x.CheckoutPath != ""
}

func (x *TrackedRepository) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "name is empty")
	}
	if x.Owner == "" || x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner or repo is empty",
			goerr.V("name", x.Name),
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
		)
	}
	if strings.Contains(x.Owner, "/") || strings.Contains(x.Repo, "/") {
		return goerr.Wrap(types.ErrValidationFailed, "owner or repo contains '/'",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
		)
	}
	if !x.Strategy.Valid() {
		return goerr.Wrap(types.ErrValidationFailed, "unknown resolver strategy",
			goerr.V("name", x.Name),
			goerr.V("strategy", x.Strategy),
		)
	}
	if !x.VersionRule.Valid() {
		return goerr.Wrap(types.ErrValidationFailed, "unknown version rule",
			goerr.V("name", x.Name),
			goerr.V("rule", x.VersionRule),
		)
	}

	if x.CheckoutPath != "" {
		if !filepath.IsAbs(x.CheckoutPath) {
			return goerr.Wrap(types.ErrValidationFailed, "checkout path must be absolute",
				goerr.V("path", x.CheckoutPath),
			)
		}
		if x.Upstream.Owner == "" || x.Upstream.Repo == "" {
			return goerr.Wrap(types.ErrValidationFailed, "upstream is required when checkout path is set",
				goerr.V("name", x.Name),
			)
		}
		if x.ForkOwner == "" {
			return goerr.Wrap(types.ErrValidationFailed, "fork owner is required when checkout path is set",
				goerr.V("name", x.Name),
			)
		}
	}

	for _, target := range append(append([]string{}, x.RevisionTargets...), x.DependentTargets...) {
		if target == "" || strings.ContainsAny(target, `/\`) {
			return goerr.Wrap(types.ErrValidationFailed, "invalid definition target",
				goerr.V("name", x.Name),
				goerr.V("target", target),
			)
		}
	}

	return nil
}

// Copy returns a deep copy of the record.
func (x *TrackedRepository) Copy() *TrackedRepository {
	if x == nil {
		return nil
	}
	c := *x
	if x.RevisionTargets != nil {
		c.RevisionTargets = append([]string{}, x.RevisionTargets...)
	}
	if x.DependentTargets != nil {
		c.DependentTargets = append([]string{}, x.DependentTargets...)
	}
	return &c
}
