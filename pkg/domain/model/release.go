package model

import "log/slog"

type Archive struct {
	URL  string `json:"url"`
	Hash string `json:"hash"`
}

// Release is resolved on each check and persisted only through TrackedRepository.
type Release struct {
	RawTag  string  `json:"raw_tag"`
	Version string  `json:"version"`
	Archive Archive `json:"archive"`
}

func (x Release) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("raw_tag", x.RawTag),
		slog.String("version", x.Version),
		slog.String("url", x.Archive.URL),
		slog.String("hash", x.Archive.Hash),
	)
}

type DecisionKind string

const (
	DecisionNewVersion DecisionKind = "new_version"
	DecisionNoChange   DecisionKind = "no_change"
)

type Decision struct {
	Kind    DecisionKind
	Version string
	// Reason is set for NoChange, e.g. "not greater" or "unparsable candidate".
	Reason string
}

func NewVersion(version string) Decision {
	return Decision{Kind: DecisionNewVersion, Version: version}
}

func NoChange(reason string) Decision {
	return Decision{Kind: DecisionNoChange, Reason: reason}
}

func (x Decision) IsNew() bool {
	return x.Kind == DecisionNewVersion
}
