package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CheckTotal counts repository checks by result: new_version, no_change, no_release, error.
	CheckTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brewup_check_total",
			Help: "The total number of tracked repository checks",
		},
		[]string{"result"},
	)
	CheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "brewup_check_duration_seconds",
			Help:    "The duration of a tracked repository check",
			Buckets: []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120, 300},
		},
	)
	// PublishTotal counts publish workflow runs by final state.
	PublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brewup_publish_total",
			Help: "The total number of publish workflow runs",
		},
		[]string{"state"},
	)
	// CommitDateLookups counts commit date lookups by source: cache or api.
	CommitDateLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brewup_commit_date_lookup_total",
			Help: "The total number of commit date lookups",
		},
		[]string{"source"},
	)

	mGitHubRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brewup_github_request_total",
			Help: "The total number of GitHub API requests",
		},
		[]string{"code", "method"},
	)
	mGitHubDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "brewup_github_request_duration_seconds",
			Help:    "The duration of GitHub API requests",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"code", "method"},
	)
)

// WrapTransport instruments GitHub API requests sent through t.
func WrapTransport(t http.RoundTripper) http.RoundTripper {
	if t == nil {
		t = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(mGitHubRequests,
		promhttp.InstrumentRoundTripperDuration(mGitHubDuration, t),
	)
}

// Handler serves collected metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
