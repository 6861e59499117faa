package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")

	// ErrNoReleaseYet means the upstream repository has no tag.
	ErrNoReleaseYet = goerr.New("no release yet")
	// ErrUnparsableVersion means a version is not a semantic version after normalization.
	ErrUnparsableVersion = goerr.New("unparsable version")
	// ErrArchiveUnavailable means the artifact of a version could not be fetched.
	ErrArchiveUnavailable = goerr.New("archive unavailable")
	// ErrNothingToCommit means the primary definition file has no url or hash line to replace.
	ErrNothingToCommit = goerr.New("nothing to commit")
	// ErrDependentPatchSkipped is the same condition as ErrNothingToCommit on a secondary definition file.
	ErrDependentPatchSkipped = goerr.New("dependent patch skipped")
	// ErrTransientIO covers network, timeout and git process failures.
	ErrTransientIO = goerr.New("transient I/O failure")
)
