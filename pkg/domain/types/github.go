package types

import (
	"log/slog"
	"strconv"
	"strings"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubWebhookSecret string
	GitHubToken         string
)

func (x GitHubWebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubWebhookSecret) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

// PullRequestNumber extracts the trailing number of a pull request URL such as
// https://github.com/Homebrew/homebrew-core/pull/1234. It returns 0 if the URL
// does not end with a positive number.
func PullRequestNumber(url string) int {
	url = strings.TrimRight(url, "/")
	n, err := strconv.Atoi(url[strings.LastIndex(url, "/")+1:])
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
