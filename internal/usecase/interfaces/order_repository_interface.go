package interfaces

import (
	"context"
	"marketplace_b2b/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The order-lifecycle-service must be able to:
//   - load a single order with its quotation projection
//   - apply an exclusive-field patch (fields outside the patch are untouched)
//   - page orders by status with optional company/date filters
//   - aggregate order counts per status
//   - load all delivered orders for processing-time reporting
//
// Absent orders are reported as a zero-value Order with a nil error; the use
// case owns the not-found semantics.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, id string, patch entities.OrderPatch) error
	List(ctx context.Context, f entities.OrderFilter, limit, offset int) ([]entities.Order, int64, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatus]int64, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
}
