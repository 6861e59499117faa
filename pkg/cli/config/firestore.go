package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/brewup/pkg/repository/firestore"
	"github.com/urfave/cli/v3"
)

// Firestore selects Cloud Firestore as the store of tracked repositories and
// the commit date cache.
type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Google Cloud project ID of Firestore to store tracked repositories",
			Category:    "Store",
			Sources:     cli.EnvVars("BREWUP_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Store",
			Sources:     cli.EnvVars("BREWUP_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

// Enabled reports whether Firestore is selected. Database ID alone does not
// select it because it has a default value.
func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

func (x *Firestore) NewRepository(ctx context.Context) (*firestore.Repository, error) {
	return firestore.New(ctx, x.projectID, x.databaseID)
}

func (x *Firestore) LogValue() slog.Value {
	if !x.Enabled() {
		return slog.StringValue("disabled")
	}
	return slog.GroupValue(
		slog.String("projectID", x.projectID),
		slog.String("databaseID", x.databaseID),
	)
}
