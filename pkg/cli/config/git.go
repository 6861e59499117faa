package config

import (
	"log/slog"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/gitcmd"
	"github.com/m-mizutani/brewup/pkg/infra/gitrepo"
	"github.com/m-mizutani/brewup/pkg/workflow"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	GitBackendCLI   = "git"
	GitBackendGoGit = "go-git"
)

type Git struct {
	backend     string
	binary      string
	authorName  string
	authorEmail string
	remote      string
	pushToken   types.GitHubToken `masq:"secret"`
}

func (x *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "git-backend",
			Usage:       "Git backend [git|go-git]",
			Category:    "Git",
			Destination: &x.backend,
			Value:       GitBackendCLI,
			Sources:     cli.EnvVars("BREWUP_GIT_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "git-path",
			Usage:       "Path to git binary, used by git backend",
			Category:    "Git",
			Destination: &x.binary,
			Value:       "git",
			Sources:     cli.EnvVars("BREWUP_GIT_PATH"),
		},
		&cli.StringFlag{
			Name:        "git-author-name",
			Usage:       "Author name of commits",
			Category:    "Git",
			Destination: &x.authorName,
			Sources:     cli.EnvVars("BREWUP_GIT_AUTHOR_NAME"),
		},
		&cli.StringFlag{
			Name:        "git-author-email",
			Usage:       "Author email of commits",
			Category:    "Git",
			Destination: &x.authorEmail,
			Sources:     cli.EnvVars("BREWUP_GIT_AUTHOR_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "git-remote",
			Usage:       "Remote of the fork to push branches to",
			Category:    "Git",
			Destination: &x.remote,
			Value:       workflow.DefaultRemote,
			Sources:     cli.EnvVars("BREWUP_GIT_REMOTE"),
		},
		&cli.StringFlag{
			Name:        "git-push-token",
			Usage:       "Token to push over HTTPS, used by go-git backend (default: GitHub token)",
			Category:    "Git",
			Destination: (*string)(&x.pushToken),
			Sources:     cli.EnvVars("BREWUP_GIT_PUSH_TOKEN"),
		},
	}
}

// NewVCS builds the selected backend. fallbackToken is used by go-git when
// no push token is given.
func (x *Git) NewVCS(fallbackToken types.GitHubToken) (interfaces.VCS, error) {
	switch x.backend {
	case GitBackendCLI, "":
		var options []gitcmd.Option
		if x.binary != "" {
			options = append(options, gitcmd.WithBinary(x.binary))
		}
		if x.authorName != "" && x.authorEmail != "" {
			options = append(options, gitcmd.WithAuthor(x.authorName, x.authorEmail))
		}
		return gitcmd.New(options...), nil

	case GitBackendGoGit:
		var options []gitrepo.Option
		if x.authorName != "" && x.authorEmail != "" {
			options = append(options, gitrepo.WithAuthor(x.authorName, x.authorEmail))
		}
		token := x.pushToken
		if token == "" {
			token = fallbackToken
		}
		if token != "" {
			options = append(options, gitrepo.WithToken(token))
		}
		return gitrepo.New(options...), nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown git backend", goerr.V("backend", x.backend))
	}
}

func (x *Git) Remote() string {
	return x.remote
}

func (x Git) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("binary", x.binary),
		slog.String("authorName", x.authorName),
		slog.String("authorEmail", x.authorEmail),
		slog.String("remote", x.remote),
		slog.Int("pushToken.len", len(x.pushToken)),
	)
}
