package model

import (
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/types"
)

// Tag is an upstream tag. The tag list API does not carry a timestamp.
type Tag struct {
	Name     string
	CommitID types.CommitID
}

// CommitRecord caches the authored time of an upstream commit. It is written
// once per (RepoName, CommitID) and never updated.
type CommitRecord struct {
	RepoName    types.RepoName
	CommitID    types.CommitID
	CommittedAt time.Time
}
