package repository

import (
	"context"
	"time"

	"marketplace_b2b/internal/domain/entities"
	"marketplace_b2b/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersStatusIndex      = "status-index"
)

type orderItem struct {
	ID          string `dynamodbav:"id"`
	QuotationID string `dynamodbav:"quotation_id"`
	CompanyID   string `dynamodbav:"company_id"`
	Status      string `dynamodbav:"status"`

	TrackingNumber        string `dynamodbav:"tracking_number,omitempty"`
	NfeAccessKey          string `dynamodbav:"nfe_access_key,omitempty"`
	NfeURL                string `dynamodbav:"nfe_url,omitempty"`
	EstimatedDeliveryDate string `dynamodbav:"estimated_delivery_date,omitempty"`
	Notes                 string `dynamodbav:"notes,omitempty"`

	// Quotation projection, denormalized at order creation time by the
	// ordering flow.
	QuotationNumber string `dynamodbav:"quotation_number,omitempty"`
	BuyerCompanyID  string `dynamodbav:"buyer_company_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// created_at/updated_at are stored as RFC3339Nano UTC strings, so range
// filters compare lexicographically.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// Update writes only the fields present in the patch plus updated_at; any
// field outside the patch is left untouched.
func (r *OrderDynamoRepository) Update(ctx context.Context, id string, patch entities.OrderPatch) error {
	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	set := func(attr string, value string) {
		expr += ", #" + attr + " = :" + attr
		vals[":"+attr] = &types.AttributeValueMemberS{Value: value}
		names["#"+attr] = attr
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.TrackingNumber != nil {
		set("tracking_number", *patch.TrackingNumber)
	}
	if patch.NfeAccessKey != nil {
		set("nfe_access_key", *patch.NfeAccessKey)
	}
	if patch.NfeURL != nil {
		set("nfe_url", *patch.NfeURL)
	}
	if patch.EstimatedDeliveryDate != nil {
		set("estimated_delivery_date", patch.EstimatedDeliveryDate.UTC().Format(time.RFC3339Nano))
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
	})
	return err
}

// List pages orders in a status via the status-index GSI. The offset is
// applied client-side while walking the query pages; the total comes from a
// second COUNT query with the same conditions.
func (r *OrderDynamoRepository) List(ctx context.Context, f entities.OrderFilter, limit, offset int) ([]entities.Order, int64, error) {
	input := r.listQueryInput(f)

	orders := make([]entities.Order, 0, limit)
	skipped := 0
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, 0, err
		}
		for _, raw := range out.Items {
			if skipped < offset {
				skipped++
				continue
			}
			if len(orders) >= limit {
				break
			}
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, 0, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(orders) >= limit || out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	total, err := r.count(ctx, r.listQueryInput(f))
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderDynamoRepository) listQueryInput(f entities.OrderFilter) *dynamodb.QueryInput {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(f.Status)},
		},
	}

	filter := ""
	if f.CompanyID != "" {
		filter = "company_id = :company_id"
		input.ExpressionAttributeValues[":company_id"] = &types.AttributeValueMemberS{Value: f.CompanyID}
	}
	if f.CreatedFrom != nil && f.CreatedTo != nil {
		if filter != "" {
			filter += " AND "
		}
		filter += "created_at BETWEEN :created_from AND :created_to"
		input.ExpressionAttributeValues[":created_from"] = &types.AttributeValueMemberS{Value: f.CreatedFrom.UTC().Format(time.RFC3339Nano)}
		input.ExpressionAttributeValues[":created_to"] = &types.AttributeValueMemberS{Value: f.CreatedTo.UTC().Format(time.RFC3339Nano)}
	}
	if filter != "" {
		input.FilterExpression = aws.String(filter)
	}
	return input
}

func (r *OrderDynamoRepository) count(ctx context.Context, input *dynamodb.QueryInput) (int64, error) {
	input.Select = types.SelectCount
	input.ExclusiveStartKey = nil

	var total int64
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return 0, err
		}
		total += int64(out.Count)
		if out.LastEvaluatedKey == nil {
			return total, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// CountByStatus aggregates per-status counts. DynamoDB has no server-side
// GROUP BY, so each status gets its own COUNT query on the GSI.
func (r *OrderDynamoRepository) CountByStatus(ctx context.Context) (map[entities.OrderStatus]int64, error) {
	counts := make(map[entities.OrderStatus]int64, len(entities.OrderStatuses))
	for _, status := range entities.OrderStatuses {
		total, err := r.count(ctx, r.listQueryInput(entities.OrderFilter{Status: status}))
		if err != nil {
			return nil, err
		}
		counts[status] = total
	}
	return counts, nil
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	input := r.listQueryInput(entities.OrderFilter{Status: status})

	var orders []entities.Order
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	order := entities.Order{
		ID:             it.ID,
		QuotationID:    it.QuotationID,
		CompanyID:      it.CompanyID,
		Status:         entities.OrderStatus(it.Status),
		TrackingNumber: it.TrackingNumber,
		NfeAccessKey:   it.NfeAccessKey,
		NfeURL:         it.NfeURL,
		Notes:          it.Notes,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.EstimatedDeliveryDate != "" {
		if estimated, err := time.Parse(time.RFC3339Nano, it.EstimatedDeliveryDate); err == nil {
			order.EstimatedDeliveryDate = &estimated
		}
	}
	if it.QuotationID != "" {
		order.Quotation = &entities.QuotationRef{
			ID:             it.QuotationID,
			Number:         it.QuotationNumber,
			BuyerCompanyID: it.BuyerCompanyID,
		}
	}
	return order
}
