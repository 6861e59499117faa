package gh

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// FindInstallationID looks up the installation of a GitHub App for owner,
// trying an organization first and a user account next.
func FindInstallationID(ctx context.Context, appID types.GitHubAppID, pem types.GitHubAppPrivateKey, owner string, options ...Option) (types.GitHubAppInstallID, error) {
	cfg := newConfig(options)
	itr, err := ghinstallation.NewAppsTransport(cfg.baseTransport(), int64(appID), []byte(pem))
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create app transport")
	}
	if cfg.baseURL != "" {
		itr.BaseURL = cfg.baseURL
	}
	app, err := cfg.build(&http.Client{Transport: itr})
	if err != nil {
		return 0, err
	}
	client := app.client

	installation, resp, orgErr := client.Apps.FindOrganizationInstallation(ctx, owner)
	if orgErr == nil && installation != nil {
		logging.From(ctx).Info("Found organization installation",
			slog.String("owner", owner),
			slog.Int64("installID", installation.GetID()),
		)
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	// Not an organization, try user installation
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		installation, _, userErr := client.Apps.FindUserInstallation(ctx, owner)
		if userErr != nil {
			return 0, goerr.Wrap(userErr, "failed to find user installation for owner",
				goerr.V("owner", owner),
			)
		}

		if installation != nil {
			logging.From(ctx).Info("Found user installation",
				slog.String("owner", owner),
				slog.Int64("installID", installation.GetID()),
			)
			return types.GitHubAppInstallID(installation.GetID()), nil
		}
	}

	if orgErr != nil {
		return 0, goerr.Wrap(orgErr, "failed to find organization installation for owner",
			goerr.V("owner", owner),
		)
	}

	return 0, goerr.Wrap(types.ErrInvalidGitHubData, "installation not found for owner",
		goerr.V("owner", owner),
	)
}

