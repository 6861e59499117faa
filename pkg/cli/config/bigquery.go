package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/bq"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

// BigQuery is the check history sink. It is optional.
type BigQuery struct {
	projectID                 types.GoogleProjectID
	datasetID                 types.BQDatasetID
	tableID                   types.BQTableID
	impersonateServiceAccount string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("BREWUP_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("BREWUP_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID of check history",
			Category:    "BigQuery",
			Destination: (*string)(&x.tableID),
			Value:       "check_history",
			Sources:     cli.EnvVars("BREWUP_BIGQUERY_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate when writing to BigQuery",
			Category:    "BigQuery",
			Destination: &x.impersonateServiceAccount,
			Sources:     cli.EnvVars("BREWUP_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

// NewClient returns nil if project ID or dataset ID is not set.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if x.projectID == "" || x.datasetID == "" {
		logging.From(ctx).Debug("BigQuery is not configured, check history is not recorded")
		return nil, nil
	}

	var options []option.ClientOption
	if x.impersonateServiceAccount != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateServiceAccount,
			Scopes: []string{
				"https://www.googleapis.com/auth/bigquery",
				"https://www.googleapis.com/auth/cloud-platform",
			},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create impersonated token source",
				goerr.V("serviceAccount", x.impersonateServiceAccount),
			)
		}
		options = append(options, option.WithTokenSource(ts))
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
		slog.String("impersonateServiceAccount", x.impersonateServiceAccount),
	)
}
