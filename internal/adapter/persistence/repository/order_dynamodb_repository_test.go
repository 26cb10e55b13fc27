package repository

import (
	"testing"
	"time"

	"marketplace_b2b/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestListQueryInput(t *testing.T) {
	repo := &OrderDynamoRepository{tableName: "orders"}

	t.Run("status only", func(t *testing.T) {
		input := repo.listQueryInput(entities.OrderFilter{Status: entities.OrderStatusShipped})

		if *input.IndexName != "status-index" {
			t.Fatalf("unexpected index: %s", *input.IndexName)
		}
		if *input.KeyConditionExpression != "#status = :status" {
			t.Fatalf("unexpected key condition: %s", *input.KeyConditionExpression)
		}
		if input.FilterExpression != nil {
			t.Fatalf("expected no filter expression, got %s", *input.FilterExpression)
		}
		status := input.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS)
		if status.Value != "shipped" {
			t.Fatalf("unexpected status value: %s", status.Value)
		}
	})

	t.Run("company and date range", func(t *testing.T) {
		from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
		input := repo.listQueryInput(entities.OrderFilter{
			Status:      entities.OrderStatusPending,
			CompanyID:   "sup-1",
			CreatedFrom: &from,
			CreatedTo:   &to,
		})

		want := "company_id = :company_id AND created_at BETWEEN :created_from AND :created_to"
		if input.FilterExpression == nil || *input.FilterExpression != want {
			t.Fatalf("unexpected filter expression: %v", input.FilterExpression)
		}
		lower := input.ExpressionAttributeValues[":created_from"].(*types.AttributeValueMemberS)
		if lower.Value != from.Format(time.RFC3339Nano) {
			t.Fatalf("unexpected lower bound: %s", lower.Value)
		}
	})

	t.Run("open date range is ignored", func(t *testing.T) {
		from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		input := repo.listQueryInput(entities.OrderFilter{
			Status:      entities.OrderStatusPending,
			CreatedFrom: &from,
		})
		if input.FilterExpression != nil {
			t.Fatalf("expected no filter expression, got %s", *input.FilterExpression)
		}
	})
}

func TestFromOrderItem(t *testing.T) {
	estimated := time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)
	it := orderItem{
		ID:                    "ord-1",
		QuotationID:           "quo-1",
		CompanyID:             "sup-1",
		Status:                "shipped",
		TrackingNumber:        "BR123",
		NfeAccessKey:          "35250612345678000190550010000000011000000017",
		EstimatedDeliveryDate: estimated.Format(time.RFC3339Nano),
		QuotationNumber:       "COT-2025-001",
		BuyerCompanyID:        "buy-1",
		CreatedAt:             "2025-06-02T10:00:00Z",
		UpdatedAt:             "2025-06-04T10:00:00Z",
	}

	order := fromOrderItem(it)
	if order.Status != entities.OrderStatusShipped {
		t.Fatalf("unexpected status: %s", order.Status)
	}
	if order.EstimatedDeliveryDate == nil || !order.EstimatedDeliveryDate.Equal(estimated) {
		t.Fatalf("unexpected estimated delivery date: %v", order.EstimatedDeliveryDate)
	}
	if order.Quotation == nil || order.Quotation.Number != "COT-2025-001" || order.Quotation.BuyerCompanyID != "buy-1" {
		t.Fatalf("unexpected quotation projection: %+v", order.Quotation)
	}
	if order.CreatedAt.Day() != 2 || order.UpdatedAt.Day() != 4 {
		t.Fatalf("unexpected timestamps: %v %v", order.CreatedAt, order.UpdatedAt)
	}
}

func TestFromOrderItemWithoutQuotation(t *testing.T) {
	order := fromOrderItem(orderItem{
		ID:        "ord-2",
		CompanyID: "sup-1",
		Status:    "pending",
		CreatedAt: "2025-06-02T10:00:00Z",
		UpdatedAt: "2025-06-02T10:00:00Z",
	})
	if order.Quotation != nil {
		t.Fatalf("expected no quotation projection, got %+v", order.Quotation)
	}
	if order.EstimatedDeliveryDate != nil {
		t.Fatalf("expected no estimated delivery date, got %v", order.EstimatedDeliveryDate)
	}
}
