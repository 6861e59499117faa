package bq_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/brewup/pkg/domain/model"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/infra/bq"
	"github.com/m-mizutani/brewup/pkg/utils/testutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newHistory(ts time.Time) *model.CheckHistoryRecord {
	history := model.NewCheckHistory(ts, &model.CheckResult{
		Name:            "homebrew/php/composer",
		PreviousVersion: "2.7.0",
		Decision:        model.NewVersion("2.8.0"),
		Release: &model.Release{
			RawTag:  "2.8.0",
			Version: "2.8.0",
			Archive: model.Archive{
				URL:  "https://getcomposer.org/download/2.8.0/composer.phar",
				Hash: "sha256:0123456789abcdef",
			},
		},
		Publish: &model.PublishContext{
			State:          model.StateDone,
			PullRequestURL: "https://github.com/Homebrew/homebrew-php/pull/1",
		},
	})
	return &model.CheckHistoryRecord{CheckHistory: *history, Timestamp: ts.UnixMicro()}
}

func TestClient(t *testing.T) {
	projectID := types.GoogleProjectID(testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID"))
	datasetID := types.BQDatasetID(testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID"))
	ctx := context.Background()

	t.Run("metadata of missing table is nil", func(t *testing.T) {
		client := gt.R1(bq.New(ctx, projectID, datasetID, "check_history_missing_999999")).NoError(t)
		md, err := client.GetMetadata(ctx)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})

	t.Run("check history is inserted into created table", func(t *testing.T) {
		tblName := types.BQTableID(time.Now().Format("check_history_test_20060102_150405"))
		client := gt.R1(bq.New(ctx, projectID, datasetID, tblName)).NoError(t)

		schema := gt.R1(bqs.Infer(&model.CheckHistory{})).NoError(t)
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))

		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.True(t, bqs.Equal(md.Schema, schema))

		gt.NoError(t, client.Insert(ctx, schema, newHistory(time.Now())))
	})

	t.Run("insert after column is added", func(t *testing.T) {
		tblName := types.BQTableID(time.Now().Format("check_history_evolve_20060102_150405"))
		client := gt.R1(bq.New(ctx, projectID, datasetID, tblName)).NoError(t)

		fullSchema := gt.R1(bqs.Infer(&model.CheckHistory{})).NoError(t)
		var oldSchema bigquery.Schema
		for _, field := range fullSchema {
			if field.Name != "pull_request_url" {
				oldSchema = append(oldSchema, field)
			}
		}
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: oldSchema,
		}))

		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		merged := gt.R1(bqs.Merge(md.Schema, fullSchema)).NoError(t)
		gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{Schema: merged}, md.ETag))

		// The write API may not see the new column yet; Insert retries until it does.
		gt.NoError(t, client.Insert(ctx, merged, newHistory(time.Now())))
	})

	t.Run("insert of row unknown to schema fails", func(t *testing.T) {
		tblName := types.BQTableID(time.Now().Format("check_history_mismatch_20060102_150405"))
		client := gt.R1(bq.New(ctx, projectID, datasetID, tblName)).NoError(t)

		schema := bigquery.Schema{{Name: "repo_name", Type: bigquery.StringFieldType}}
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))

		gt.Error(t, client.Insert(ctx, schema, struct{ Revision int }{Revision: 1}))
	})
}

func TestProtoFieldJSONName(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid name is kept",
			input: "repo_name",
			want:  "repo_name",
		},
		{
			name:  "formula name with symbols is encoded",
			input: "php-cs-fixer@2",
			want:  "col_cGhwLWNzLWZpeGVyQDI",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, bq.ProtoFieldJSONName(tc.input)).Equal(tc.want)
		})
	}
}

func TestSanitizeProtoJSON(t *testing.T) {
	raw := []byte(`{"targets":{"php-cs-fixer@2":"patched","phpunit":"bumped"},"skipped":[{"php-cs-fixer@2":1}]}`)
	sanitized := gt.R1(bq.SanitizeProtoJSON(raw)).NoError(t)

	dec := json.NewDecoder(bytes.NewReader(sanitized))
	dec.UseNumber()
	payload := map[string]any{}
	gt.NoError(t, dec.Decode(&payload))

	targets, ok := payload["targets"].(map[string]any)
	gt.True(t, ok)

	t.Run("invalid keys are renamed", func(t *testing.T) {
		_, ok := targets[bq.ProtoFieldJSONName("php-cs-fixer@2")]
		gt.True(t, ok)
		_, ok = targets["php-cs-fixer@2"]
		gt.False(t, ok)
	})

	t.Run("valid keys are kept", func(t *testing.T) {
		_, ok := targets["phpunit"]
		gt.True(t, ok)
	})

	t.Run("keys in list elements are renamed", func(t *testing.T) {
		list, ok := payload["skipped"].([]any)
		gt.True(t, ok)
		item, ok := list[0].(map[string]any)
		gt.True(t, ok)
		_, ok = item[bq.ProtoFieldJSONName("php-cs-fixer@2")]
		gt.True(t, ok)
	})
}

func TestEncodeRow(t *testing.T) {
	schema := gt.R1(bqs.Infer(&model.CheckHistory{})).NoError(t)
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("check history record is encoded", func(t *testing.T) {
		history := model.NewCheckHistory(ts, &model.CheckResult{
			Name:     "homebrew/php/phpunit",
			Decision: model.NoChange("not greater"),
		})
		desc, row, err := bq.EncodeRow(schema, &model.CheckHistoryRecord{
			CheckHistory: *history,
			Timestamp:    ts.UnixMicro(),
		})
		gt.NoError(t, err)
		gt.V(t, desc).NotEqual(nil)
		gt.True(t, len(row) > 0)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, _, err := bq.EncodeRow(schema, map[string]any{"no_such_column": 1})
		gt.Error(t, err)
	})
}

func TestIsSchemaNotFoundError(t *testing.T) {
	t.Run("detects gRPC InvalidArgument with schema mismatch message", func(t *testing.T) {
		err := status.Error(codes.InvalidArgument, "Input schema has more fields than BigQuery schema, extra fields: 'field1,field2'")
		result := bq.IsSchemaNotFoundError(err)
		gt.V(t, result).Equal(true)
	})

	t.Run("detects wrapped gRPC error with goerr", func(t *testing.T) {
		baseErr := status.Error(codes.InvalidArgument, "Input schema has more fields than BigQuery schema, extra fields: 'field1'")
		wrappedErr := goerr.Wrap(baseErr, "failed to insert")
		result := bq.IsSchemaNotFoundError(wrappedErr)
		gt.V(t, result).Equal(true)
	})

	t.Run("returns false for InvalidArgument with different message", func(t *testing.T) {
		err := status.Error(codes.InvalidArgument, "Invalid request parameters")
		result := bq.IsSchemaNotFoundError(err)
		gt.V(t, result).Equal(false)
	})

	t.Run("returns false for different gRPC code", func(t *testing.T) {
		err := status.Error(codes.PermissionDenied, "Input schema has more fields than BigQuery schema, extra fields: 'field1'")
		result := bq.IsSchemaNotFoundError(err)
		gt.V(t, result).Equal(false)
	})

	t.Run("returns false for non-gRPC error", func(t *testing.T) {
		err := errors.New("some other error")
		result := bq.IsSchemaNotFoundError(err)
		gt.V(t, result).Equal(false)
	})

	t.Run("detects schema error in deeply nested goerr wrapping", func(t *testing.T) {
		baseErr := status.Error(codes.InvalidArgument, "Input schema has more fields than BigQuery schema, extra fields: 'a,b,c'")
		wrapped1 := goerr.Wrap(baseErr, "level 1")
		wrapped2 := goerr.Wrap(wrapped1, "level 2")
		wrapped3 := goerr.Wrap(wrapped2, "level 3")
		result := bq.IsSchemaNotFoundError(wrapped3)
		gt.V(t, result).Equal(true)
	})
}

