package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"marketplace_b2b/internal/domain/entities"
	"marketplace_b2b/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidNfeState   = errors.New("invalid order state for nfe update")
	ErrEmptyNfePatch     = errors.New("no nfe fields to update")
)

// RoleAdmin bypasses the supplier-ownership check on NF-e corrections.
const RoleAdmin = "admin"

// Requester identifies the caller. The upstream gateway resolves the session
// and forwards company id and role; this service trusts them.
type Requester struct {
	CompanyID string
	Role      string
}

// UpdateOrderStatusInput is the status-change payload. Shipment fields are
// only required on the processing -> shipped edge.
type UpdateOrderStatusInput struct {
	Status                entities.OrderStatus
	TrackingNumber        string
	NfeAccessKey          string
	NfeURL                string
	Notes                 string
	EstimatedDeliveryDate *time.Time
}

// UpdateOrderNfeInput carries a partial NF-e correction. Empty fields are
// left untouched.
type UpdateOrderNfeInput struct {
	NfeAccessKey string
	NfeURL       string
}

// OrderTimelineEntry is one point of the order timeline. NextStatuses is only
// populated on the current-status entry.
type OrderTimelineEntry struct {
	Status       entities.OrderStatus   `json:"status"`
	Description  string                 `json:"description"`
	Date         time.Time              `json:"date"`
	NextStatuses []entities.OrderStatus `json:"next_statuses,omitempty"`
}

// IOrderStatusUseCase is the order lifecycle service: status transitions,
// timeline, bulk updates, NF-e corrections and the read-side reporting.

type IOrderStatusUseCase interface {
	UpdateOrderStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput, requesterCompanyID string) (entities.Order, error)
	BulkUpdateOrderStatus(ctx context.Context, orderIDs []string, in UpdateOrderStatusInput, requesterCompanyID string) ([]entities.Order, error)
	GetOrderHistory(ctx context.Context, orderID string) ([]OrderTimelineEntry, error)
	UpdateOrderNfe(ctx context.Context, orderID string, in UpdateOrderNfeInput, requester Requester) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrdersByStatus(ctx context.Context, in ListOrdersInput) (OrderPage, error)
	GetOrderStatusStats(ctx context.Context) (OrderStatusStats, error)
}

type OrderStatusUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderStatusUseCase = (*OrderStatusUseCase)(nil)

func NewOrderStatusUseCase(repo interfaces.IOrderRepository) *OrderStatusUseCase {
	return &OrderStatusUseCase{repo: repo}
}

// transitionRule attaches per-edge requirements and an optional hook to a
// transition. Hooks run after the order is persisted.
type transitionRule struct {
	requiredFields []string
	hook           func(ctx context.Context, order entities.Order, in UpdateOrderStatusInput) error
}

// transitionRules keys transitions that carry extra requirements. Edges
// without an entry only need to exist in the state machine.
var transitionRules = map[entities.OrderStatus]map[entities.OrderStatus]transitionRule{
	entities.OrderStatusProcessing: {
		entities.OrderStatusShipped: {
			requiredFields: []string{"trackingNumber", "nfeAccessKey"},
		},
	},
}

func (in UpdateOrderStatusInput) fieldValue(name string) string {
	switch name {
	case "trackingNumber":
		return in.TrackingNumber
	case "nfeAccessKey":
		return in.NfeAccessKey
	case "nfeUrl":
		return in.NfeURL
	}
	return ""
}

// UpdateOrderStatus validates the requested transition against the state
// machine, applies the shipment side-effect fields and returns the refreshed
// order.
//
// requesterCompanyID is accepted but not checked against the order's
// supplier; the NF-e correction flow is the only ownership-enforced path.
// Known gap in the authorization model, kept for compatibility with the
// marketplace backend.
func (u *OrderStatusUseCase) UpdateOrderStatus(ctx context.Context, orderID string, in UpdateOrderStatusInput, requesterCompanyID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	log.Printf("[orders][usecase] update-status start order_id=%s target_status=%s company_id=%s", orderID, in.Status, requesterCompanyID)

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if !entities.IsValidTransition(order.Status, in.Status) {
		log.Printf("[orders][usecase] invalid transition order_id=%s from=%s to=%s", orderID, order.Status, in.Status)
		return entities.Order{}, fmt.Errorf("%w: cannot transition from %s to %s (valid next statuses: %s)",
			ErrInvalidTransition, order.Status, in.Status, joinStatuses(entities.ValidNextStatuses(order.Status)))
	}

	rule := transitionRules[order.Status][in.Status]
	for _, field := range rule.requiredFields {
		if strings.TrimSpace(in.fieldValue(field)) == "" {
			log.Printf("[orders][usecase] missing field order_id=%s field=%s target_status=%s", orderID, field, in.Status)
			return entities.Order{}, fmt.Errorf("%w: %s is required for status %s", ErrMissingField, field, in.Status)
		}
	}

	status := in.Status
	patch := entities.OrderPatch{Status: &status}
	if in.TrackingNumber != "" {
		patch.TrackingNumber = &in.TrackingNumber
	}
	if in.NfeAccessKey != "" {
		patch.NfeAccessKey = &in.NfeAccessKey
	}
	if in.NfeURL != "" {
		patch.NfeURL = &in.NfeURL
	}
	if in.EstimatedDeliveryDate != nil {
		patch.EstimatedDeliveryDate = in.EstimatedDeliveryDate
	} else if in.Status == entities.OrderStatusShipped {
		estimated := entities.EstimateDeliveryFromNow(entities.DefaultDeliveryMethod)
		patch.EstimatedDeliveryDate = &estimated
	}

	if err := u.repo.Update(ctx, orderID, patch); err != nil {
		log.Printf("[orders][usecase] update-status persist failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}

	if rule.hook != nil {
		if err := rule.hook(ctx, order, in); err != nil {
			return entities.Order{}, err
		}
	}

	refreshed, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[orders][usecase] update-status success order_id=%s status=%s", orderID, refreshed.Status)
	return refreshed, nil
}

// BulkUpdateOrderStatus applies UpdateOrderStatus to each id sequentially.
// Per-order failures are logged and skipped; the returned slice keeps the
// input order of the ids that succeeded.
func (u *OrderStatusUseCase) BulkUpdateOrderStatus(ctx context.Context, orderIDs []string, in UpdateOrderStatusInput, requesterCompanyID string) ([]entities.Order, error) {
	log.Printf("[orders][usecase] bulk-update start count=%d target_status=%s", len(orderIDs), in.Status)

	updated := make([]entities.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		order, err := u.UpdateOrderStatus(ctx, id, in, requesterCompanyID)
		if err != nil {
			log.Printf("[orders][usecase] bulk-update skipped order_id=%s err=%v", id, err)
			continue
		}
		updated = append(updated, order)
	}
	log.Printf("[orders][usecase] bulk-update done updated=%d skipped=%d", len(updated), len(orderIDs)-len(updated))
	return updated, nil
}

// GetOrderHistory reconstructs the two-point timeline: the synthetic pending
// entry at creation plus, when the order moved on, the current status at the
// last update. Intermediate transitions are not persisted separately.
func (u *OrderStatusUseCase) GetOrderHistory(ctx context.Context, orderID string) ([]OrderTimelineEntry, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}

	history := []OrderTimelineEntry{{
		Status:      entities.OrderStatusPending,
		Description: entities.StatusDescription(entities.OrderStatusPending),
		Date:        order.CreatedAt,
	}}
	if order.Status != entities.OrderStatusPending {
		history = append(history, OrderTimelineEntry{
			Status:       order.Status,
			Description:  entities.StatusDescription(order.Status),
			Date:         order.UpdatedAt,
			NextStatuses: entities.ValidNextStatuses(order.Status),
		})
	}
	return history, nil
}

// UpdateOrderNfe corrects the fiscal document reference after shipment
// without touching the status. Admins may correct any order; suppliers only
// their own.
func (u *OrderStatusUseCase) UpdateOrderNfe(ctx context.Context, orderID string, in UpdateOrderNfeInput, requester Requester) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	log.Printf("[orders][usecase] update-nfe start order_id=%s company_id=%s role=%s", orderID, requester.CompanyID, requester.Role)

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if requester.Role != RoleAdmin && requester.CompanyID != order.CompanyID {
		log.Printf("[orders][usecase] update-nfe denied order_id=%s company_id=%s owner=%s", orderID, requester.CompanyID, order.CompanyID)
		return entities.Order{}, ErrAccessDenied
	}

	if order.Status != entities.OrderStatusShipped && order.Status != entities.OrderStatusDelivered {
		return entities.Order{}, fmt.Errorf("%w: order is %s", ErrInvalidNfeState, order.Status)
	}

	accessKey := strings.TrimSpace(in.NfeAccessKey)
	nfeURL := strings.TrimSpace(in.NfeURL)
	if accessKey == "" && nfeURL == "" {
		return entities.Order{}, ErrEmptyNfePatch
	}

	var patch entities.OrderPatch
	if accessKey != "" {
		patch.NfeAccessKey = &accessKey
	}
	if nfeURL != "" {
		patch.NfeURL = &nfeURL
	}
	if err := u.repo.Update(ctx, orderID, patch); err != nil {
		log.Printf("[orders][usecase] update-nfe persist failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}

	refreshed, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[orders][usecase] update-nfe success order_id=%s", orderID)
	return refreshed, nil
}

// GetOrderByID loads a single order with its quotation projection.
func (u *OrderStatusUseCase) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func joinStatuses(statuses []entities.OrderStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
