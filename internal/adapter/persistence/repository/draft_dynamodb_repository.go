package repository

import (
	"context"
	"fmt"
	"time"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	json "github.com/goccy/go-json"
)

const (
	// DraftHashKey is the partition key of the drafts table.
	DraftHashKey = "work_order_id"

	defaultDraftsTableName = "work_drafts"
	draftRetention         = 7 * 24 * time.Hour
)

// DynamoAPI is the subset of the DynamoDB client used by the repositories.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type draftItem struct {
	WorkOrderID string `dynamodbav:"work_order_id"`
	Fields      string `dynamodbav:"fields"`
	SavedAt     string `dynamodbav:"saved_at"`
	ExpiresAt   int64  `dynamodbav:"expires_at"`
}

// DraftDynamoRepository persists autosaved completion forms in DynamoDB.
//
// Table requirements:
//   - PK: work_order_id (string)
//   - TTL attribute: expires_at (optional)
//
// One draft per work order; Save overwrites.
type DraftDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb DynamoAPI, tableName string) *DraftDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("DRAFTS_TABLE", defaultDraftsTableName)
	}
	return &DraftDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DraftDynamoRepository) Save(ctx context.Context, d entities.Draft) error {
	it, err := toDraftItem(d)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// Restore returns a zero Draft when nothing is stored.
func (r *DraftDynamoRepository) Restore(ctx context.Context, workOrderID string) (entities.Draft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            draftKey(workOrderID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Draft{}, err
	}
	if len(out.Item) == 0 {
		return entities.Draft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Draft{}, err
	}
	return fromDraftItem(it)
}

// Clear is idempotent; deleting a missing draft is not an error.
func (r *DraftDynamoRepository) Clear(ctx context.Context, workOrderID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       draftKey(workOrderID),
	})
	return err
}

func draftKey(workOrderID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		DraftHashKey: &types.AttributeValueMemberS{Value: workOrderID},
	}
}

func toDraftItem(d entities.Draft) (draftItem, error) {
	fields, err := json.Marshal(d.Fields)
	if err != nil {
		return draftItem{}, fmt.Errorf("encode draft fields: %w", err)
	}
	return draftItem{
		WorkOrderID: d.WorkOrderID,
		Fields:      string(fields),
		SavedAt:     d.SavedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:   d.SavedAt.Add(draftRetention).Unix(),
	}, nil
}

func fromDraftItem(it draftItem) (entities.Draft, error) {
	d := entities.Draft{WorkOrderID: it.WorkOrderID, Fields: map[string]any{}}
	if it.Fields != "" {
		if err := json.Unmarshal([]byte(it.Fields), &d.Fields); err != nil {
			return entities.Draft{}, fmt.Errorf("decode draft fields: %w", err)
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, it.SavedAt); err == nil {
		d.SavedAt = t
	}
	return d, nil
}
