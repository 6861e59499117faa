package model

import (
	"time"

	"github.com/m-mizutani/brewup/pkg/domain/types"
)

type CheckOptions struct {
	// Name restricts the check to one repository regardless of its Enabled flag.
	Name        types.RepoName
	Concurrency int
}

type CheckResult struct {
	Name            types.RepoName
	PreviousVersion string
	Decision        Decision
	Release         *Release
	Publish         *PublishContext
	Err             error
}

// CheckHistory is a row of the check history table in BigQuery.
type CheckHistory struct {
	ID              types.HistoryID `json:"id" bigquery:"id"`
	Timestamp       time.Time       `json:"timestamp" bigquery:"timestamp"`
	RepoName        string          `json:"repo_name" bigquery:"repo_name"`
	PreviousVersion string          `json:"previous_version" bigquery:"previous_version"`
	LatestVersion   string          `json:"latest_version" bigquery:"latest_version"`
	Decision        string          `json:"decision" bigquery:"decision"`
	ArchiveURL      string          `json:"archive_url" bigquery:"archive_url"`
	ArchiveHash     string          `json:"archive_hash" bigquery:"archive_hash"`
	PublishState    string          `json:"publish_state" bigquery:"publish_state"`
	PullRequestURL  string          `json:"pull_request_url" bigquery:"pull_request_url"`
	Error           string          `json:"error" bigquery:"error"`
}

// CheckHistoryRecord is the form written through the storage write API, which
// expects TIMESTAMP columns as microseconds.
type CheckHistoryRecord struct {
	CheckHistory
	Timestamp int64 `json:"timestamp"`
}

func NewCheckHistory(ts time.Time, result *CheckResult) *CheckHistory {
	h := &CheckHistory{
		ID:              types.NewHistoryID(),
		Timestamp:       ts.UTC(),
		RepoName:        string(result.Name),
		PreviousVersion: result.PreviousVersion,
		Decision:        string(result.Decision.Kind),
	}
	if result.Release != nil {
		h.LatestVersion = result.Release.Version
		h.ArchiveURL = result.Release.Archive.URL
		h.ArchiveHash = result.Release.Archive.Hash
	}
	if result.Publish != nil {
		h.PublishState = string(result.Publish.State)
		h.PullRequestURL = result.Publish.PullRequestURL
	}
	if result.Err != nil {
		h.Error = result.Err.Error()
	}
	return h
}
