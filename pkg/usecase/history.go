package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/utils/errutil"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// recordHistory appends a row of the check to BigQuery if it is configured.
// Failures are only reported.
func (x *UseCase) recordHistory(ctx context.Context, result *model.CheckResult) {
	if x.clients.BigQuery() == nil {
		return
	}

	if err := insertCheckHistory(ctx, x.clients.BigQuery(), model.NewCheckHistory(logging.CtxTime(ctx), result)); err != nil {
		errutil.HandleError(ctx, "failed to insert check history", err)
	}
}

func insertCheckHistory(ctx context.Context, bq interfaces.BigQuery, history *model.CheckHistory) error {
	schema, err := createOrUpdateBigQueryTable(ctx, bq, history)
	if err != nil {
		return err
	}

	record := &model.CheckHistoryRecord{
		CheckHistory: *history,
		Timestamp:    history.Timestamp.UnixMicro(),
	}
	if err := bq.Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert check history to BigQuery", goerr.V("id", history.ID))
	}
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, history *model.CheckHistory) (bigquery.Schema, error) {
	schema, err := bqs.Infer(history)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer check history schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
