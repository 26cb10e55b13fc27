package response

import (
	"time"

	"marketplace_b2b/internal/domain/entities"
	"marketplace_b2b/internal/usecase"
)

type QuotationResponse struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	BuyerCompanyID string `json:"buyer_company_id"`
}

type OrderResponse struct {
	ID                    string             `json:"id"`
	QuotationID           string             `json:"quotation_id"`
	CompanyID             string             `json:"company_id"`
	Status                string             `json:"status"`
	TrackingNumber        string             `json:"tracking_number,omitempty"`
	NfeAccessKey          string             `json:"nfe_access_key,omitempty"`
	NfeURL                string             `json:"nfe_url,omitempty"`
	EstimatedDeliveryDate *time.Time         `json:"estimated_delivery_date,omitempty"`
	Notes                 string             `json:"notes,omitempty"`
	Quotation             *QuotationResponse `json:"quotation,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:                    o.ID,
		QuotationID:           o.QuotationID,
		CompanyID:             o.CompanyID,
		Status:                string(o.Status),
		TrackingNumber:        o.TrackingNumber,
		NfeAccessKey:          o.NfeAccessKey,
		NfeURL:                o.NfeURL,
		EstimatedDeliveryDate: o.EstimatedDeliveryDate,
		Notes:                 o.Notes,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
	if o.Quotation != nil {
		resp.Quotation = &QuotationResponse{
			ID:             o.Quotation.ID,
			Number:         o.Quotation.Number,
			BuyerCompanyID: o.Quotation.BuyerCompanyID,
		}
	}
	return resp
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

type BulkUpdateResponse struct {
	Orders       []OrderResponse `json:"orders"`
	UpdatedCount int             `json:"updated_count"`
}

type TimelineEntryResponse struct {
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	NextStatuses []string  `json:"next_statuses,omitempty"`
}

type OrderHistoryResponse struct {
	OrderID string                  `json:"order_id"`
	History []TimelineEntryResponse `json:"history"`
}

func FromOrderHistory(orderID string, entries []usecase.OrderTimelineEntry) OrderHistoryResponse {
	history := make([]TimelineEntryResponse, 0, len(entries))
	for _, e := range entries {
		entry := TimelineEntryResponse{
			Status:      string(e.Status),
			Description: e.Description,
			Date:        e.Date,
		}
		for _, s := range e.NextStatuses {
			entry.NextStatuses = append(entry.NextStatuses, string(s))
		}
		history = append(history, entry)
	}
	return OrderHistoryResponse{OrderID: orderID, History: history}
}

type OrderStatusStatsResponse struct {
	StatusCounts          map[string]int64 `json:"status_counts"`
	TotalOrders           int64            `json:"total_orders"`
	AverageProcessingDays float64          `json:"average_processing_days"`
}

func FromOrderStatusStats(stats usecase.OrderStatusStats) OrderStatusStatsResponse {
	counts := make(map[string]int64, len(stats.StatusCounts))
	for status, n := range stats.StatusCounts {
		counts[string(status)] = n
	}
	return OrderStatusStatsResponse{
		StatusCounts:          counts,
		TotalOrders:           stats.TotalOrders,
		AverageProcessingDays: stats.AverageProcessingDays,
	}
}
