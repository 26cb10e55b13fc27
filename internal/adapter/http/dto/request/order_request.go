package request

import (
	"errors"
	"strings"
	"time"

	"marketplace_b2b/internal/domain/entities"
)

var (
	ErrInvalidStatusValue = errors.New("invalid status value")
	ErrInvalidDateValue   = errors.New("invalid date value")
)

// UpdateOrderStatusRequest is the status-change payload sent by the
// storefront backend. Shipment fields are only meaningful when moving to
// shipped; estimated_delivery_date is RFC3339 and optional.
type UpdateOrderStatusRequest struct {
	Status                string `json:"status" binding:"required"`
	TrackingNumber        string `json:"tracking_number"`
	NfeAccessKey          string `json:"nfe_access_key"`
	NfeURL                string `json:"nfe_url"`
	Notes                 string `json:"notes"`
	EstimatedDeliveryDate string `json:"estimated_delivery_date"`
}

func (r UpdateOrderStatusRequest) ResolveStatus() (entities.OrderStatus, error) {
	status := entities.OrderStatus(strings.TrimSpace(r.Status))
	if !entities.IsValidStatus(status) {
		return "", ErrInvalidStatusValue
	}
	return status, nil
}

func (r UpdateOrderStatusRequest) ResolveEstimatedDeliveryDate() (*time.Time, error) {
	raw := strings.TrimSpace(r.EstimatedDeliveryDate)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, ErrInvalidDateValue
	}
	return &t, nil
}

// BulkUpdateOrderStatusRequest applies one status change to an ordered list
// of orders.
type BulkUpdateOrderStatusRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required"`
	UpdateOrderStatusRequest
}

// ResolveOrderIDs drops blank entries while preserving the caller's order.
func (r BulkUpdateOrderStatusRequest) ResolveOrderIDs() []string {
	ids := make([]string, 0, len(r.OrderIDs))
	for _, id := range r.OrderIDs {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

// UpdateOrderNfeRequest corrects the fiscal document reference. Either field
// may be omitted; the use case requires at least one.
type UpdateOrderNfeRequest struct {
	NfeAccessKey string `json:"nfe_access_key"`
	NfeURL       string `json:"nfe_url"`
}

// ListOrdersQuery is the query-string filter of the listing endpoint.
type ListOrdersQuery struct {
	Status      string `form:"status" binding:"required"`
	CompanyID   string `form:"company_id"`
	CreatedFrom string `form:"created_from"`
	CreatedTo   string `form:"created_to"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

func (q ListOrdersQuery) ResolveStatus() (entities.OrderStatus, error) {
	status := entities.OrderStatus(strings.TrimSpace(q.Status))
	if !entities.IsValidStatus(status) {
		return "", ErrInvalidStatusValue
	}
	return status, nil
}

func (q ListOrdersQuery) ResolveCreatedRange() (*time.Time, *time.Time, error) {
	parse := func(raw string) (*time.Time, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, nil
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, ErrInvalidDateValue
		}
		return &t, nil
	}

	from, err := parse(q.CreatedFrom)
	if err != nil {
		return nil, nil, err
	}
	to, err := parse(q.CreatedTo)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
