package bq

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/bigquery/storage/managedwriter"
	"cloud.google.com/go/bigquery/storage/managedwriter/adapt"
	"github.com/m-mizutani/brewup/pkg/domain/interfaces"
	"github.com/m-mizutani/brewup/pkg/domain/types"
	"github.com/m-mizutani/brewup/pkg/utils/logging"
	"github.com/m-mizutani/brewup/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

const (
	defaultInsertRetries = 3
	defaultRetryInterval = 5 * time.Second
)

// Client writes check history rows into one BigQuery table through the
// storage write API.
type Client struct {
	bqClient *bigquery.Client
	mwClient *managedwriter.Client
	project  string
	dataset  string
	tableID  types.BQTableID

	insertRetries int
	retryInterval time.Duration
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, options ...option.ClientOption) (*Client, error) {
	mwClient, err := managedwriter.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create bigquery client", goerr.V("projectID", projectID))
	}

	bqClient, err := bigquery.NewClient(ctx, string(projectID), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient:      bqClient,
		mwClient:      mwClient,
		project:       projectID.String(),
		dataset:       datasetID.String(),
		tableID:       tableID,
		insertRetries: defaultInsertRetries,
		retryInterval: defaultRetryInterval,
	}, nil
}

func (x *Client) table() *bigquery.Table {
	return x.bqClient.Dataset(x.dataset).Table(x.tableID.String())
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.table().Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.table().Metadata(ctx)
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && gErr.Code == 404 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}

	return md, nil
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table().Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID), goerr.V("meta", md))
	}

	return nil
}

// Insert implements interfaces.BigQuery. A schema change takes a while to be
// visible to the write API, so an insert rejected for unknown fields is
// retried a few times.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, data any) error {
	descriptor, row, err := encodeRow(schema, data)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		err := x.appendRows(ctx, descriptor, [][]byte{row})
		if err == nil {
			return nil
		}
		if !IsSchemaNotFoundError(err) || attempt >= x.insertRetries {
			return err
		}

		logging.From(ctx).Warn("schema is not propagated yet, retrying insert",
			slog.Int("attempt", attempt),
			slog.Any("table", x.tableID),
		)
		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "insert canceled")
		case <-time.After(x.retryInterval):
		}
	}
}

func (x *Client) appendRows(ctx context.Context, descriptor *descriptorpb.DescriptorProto, rows [][]byte) error {
	ms, err := x.mwClient.NewManagedStream(ctx,
		managedwriter.WithDestinationTable(
			managedwriter.TableParentFromParts(x.project, x.dataset, x.tableID.String()),
		),
		managedwriter.WithSchemaDescriptor(descriptor),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create managed stream")
	}
	defer safe.Close(ms)

	result, err := ms.AppendRows(ctx, rows)
	if err != nil {
		return goerr.Wrap(err, "failed to append rows")
	}
	if _, err := result.FullResponse(ctx); err != nil {
		return goerr.Wrap(err, "failed to get append result")
	}
	return nil
}

// encodeRow converts data into a proto message of schema through JSON.
func encodeRow(schema bigquery.Schema, data any) (*descriptorpb.DescriptorProto, []byte, error) {
	storageSchema, err := adapt.BQSchemaToStorageTableSchema(schema)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to convert schema")
	}

	descriptor, err := adapt.StorageSchemaToProto2Descriptor(storageSchema, "root")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to convert schema to descriptor")
	}
	messageDescriptor, ok := descriptor.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, nil, goerr.New("adapted descriptor is not a message descriptor")
	}
	descriptorProto, err := adapt.NormalizeDescriptor(messageDescriptor)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to normalize descriptor")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to Marshal json message", goerr.V("v", data))
	}
	sanitized, err := sanitizeProtoJSON(raw)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to sanitize json message", goerr.V("raw", string(raw)))
	}

	message := dynamicpb.NewMessage(messageDescriptor)
	if err := protojson.Unmarshal(sanitized, message); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to Unmarshal json message", goerr.V("raw", string(raw)))
	}
	row, err := proto.Marshal(message)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to Marshal proto message")
	}

	return descriptorProto, row, nil
}

// IsSchemaNotFoundError reports whether err is the write API rejecting fields
// that the table schema does not know yet.
func IsSchemaNotFoundError(err error) bool {
	var grpcErr interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &grpcErr) {
		return false
	}
	st := grpcErr.GRPCStatus()
	return st.Code() == codes.InvalidArgument &&
		strings.Contains(st.Message(), "Input schema has more fields than BigQuery schema")
}

func sanitizeProtoJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}

	return json.Marshal(sanitizeProtoJSONValue(data))
}

func sanitizeProtoJSONValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(val))
		for key, value := range val {
			res[protoFieldJSONName(key)] = sanitizeProtoJSONValue(value)
		}
		return res
	case []any:
		for i := range val {
			val[i] = sanitizeProtoJSONValue(val[i])
		}
		return val
	default:
		return v
	}
}

// protoFieldJSONName renames keys that are not valid proto field names.
func protoFieldJSONName(name string) string {
	if protoreflect.Name(name).IsValid() {
		return name
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(name))
	encoded = strings.NewReplacer("+", "_", "/", "_", "=", "").Replace(encoded)
	return "col_" + encoded
}
