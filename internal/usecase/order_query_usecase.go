package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"marketplace_b2b/internal/domain/entities"
)

const defaultPageSize = 50

// ListOrdersInput filters the paged status listing. CreatedFrom/CreatedTo
// only take effect when both bounds are given.
type ListOrdersInput struct {
	Status      entities.OrderStatus
	CompanyID   string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// OrderPage is one page of orders plus the unpaged match count.
type OrderPage struct {
	Orders []entities.Order `json:"orders"`
	Total  int64            `json:"total"`
}

// OrderStatusStats aggregates the order book: per-status counts (always all
// five statuses), their sum, and the mean pending->delivered span in days.
type OrderStatusStats struct {
	StatusCounts          map[entities.OrderStatus]int64 `json:"status_counts"`
	TotalOrders           int64                          `json:"total_orders"`
	AverageProcessingDays float64                        `json:"average_processing_days"`
}

// GetOrdersByStatus returns a page of orders in the given status, optionally
// narrowed to a supplier and a creation-date range.
func (u *OrderStatusUseCase) GetOrdersByStatus(ctx context.Context, in ListOrdersInput) (OrderPage, error) {
	if !entities.IsValidStatus(in.Status) {
		return OrderPage{}, fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	filter := entities.OrderFilter{
		Status:    in.Status,
		CompanyID: strings.TrimSpace(in.CompanyID),
	}
	if in.CreatedFrom != nil && in.CreatedTo != nil {
		filter.CreatedFrom = in.CreatedFrom
		filter.CreatedTo = in.CreatedTo
	}

	orders, total, err := u.repo.List(ctx, filter, limit, offset)
	if err != nil {
		log.Printf("[orders][usecase] list failed status=%s err=%v", in.Status, err)
		return OrderPage{}, err
	}
	return OrderPage{Orders: orders, Total: total}, nil
}

// GetOrderStatusStats returns the status distribution and the average
// processing time of delivered orders. Statuses with no orders count as 0
// and the average is 0 when nothing was delivered yet.
func (u *OrderStatusUseCase) GetOrderStatusStats(ctx context.Context) (OrderStatusStats, error) {
	counts, err := u.repo.CountByStatus(ctx)
	if err != nil {
		log.Printf("[orders][usecase] stats count failed err=%v", err)
		return OrderStatusStats{}, err
	}

	stats := OrderStatusStats{StatusCounts: make(map[entities.OrderStatus]int64, len(entities.OrderStatuses))}
	for _, s := range entities.OrderStatuses {
		stats.StatusCounts[s] = counts[s]
		stats.TotalOrders += counts[s]
	}

	delivered, err := u.repo.ListByStatus(ctx, entities.OrderStatusDelivered)
	if err != nil {
		log.Printf("[orders][usecase] stats delivered listing failed err=%v", err)
		return OrderStatusStats{}, err
	}
	if len(delivered) > 0 {
		var totalDays float64
		for _, o := range delivered {
			totalDays += o.UpdatedAt.Sub(o.CreatedAt).Hours() / 24
		}
		stats.AverageProcessingDays = totalDays / float64(len(delivered))
	}
	return stats, nil
}
