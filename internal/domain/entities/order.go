package entities

import "time"

// OrderStatus represents the fulfillment lifecycle of a marketplace order.
//
// Domain notes:
//   - Orders are created by the quotation/checkout flow (outside this service)
//     and always start as pending.
//   - Transitions move only forward along OrderStatusTransitions; delivered
//     and cancelled are terminal.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every defined status, in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidStatus reports whether s is one of the five defined statuses.
func IsValidStatus(s OrderStatus) bool {
	_, ok := orderStatusDescriptions[s]
	return ok
}

// OrderStatusTransitions is the directed adjacency of the status state
// machine. Slice order matters: the forward business transition comes first
// and cancelled comes last, which is the order surfaced to clients.
var OrderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

var orderStatusDescriptions = map[OrderStatus]string{
	OrderStatusPending:    "Pedido recebido e aguardando processamento",
	OrderStatusProcessing: "Pedido em processamento pelo fornecedor",
	OrderStatusShipped:    "Pedido enviado para entrega",
	OrderStatusDelivered:  "Pedido entregue ao comprador",
	OrderStatusCancelled:  "Pedido cancelado",
}

// IsValidTransition reports whether the status state machine has an edge
// from -> to. Unknown statuses have no edges.
func IsValidTransition(from, to OrderStatus) bool {
	for _, next := range OrderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidNextStatuses returns the allowed target statuses from the given
// status. Callers get a copy; the adjacency table is never mutated.
func ValidNextStatuses(from OrderStatus) []OrderStatus {
	allowed := OrderStatusTransitions[from]
	out := make([]OrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// StatusDescription returns the display text for a status, used by the order
// timeline.
func StatusDescription(s OrderStatus) string {
	return orderStatusDescriptions[s]
}

// QuotationRef is the light projection of the quotation an order originated
// from. Read-only in this service.
type QuotationRef struct {
	ID             string `json:"id"`
	Number         string `json:"number"`
	BuyerCompanyID string `json:"buyer_company_id"`
}

// Order is the marketplace order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Shipment fields (TrackingNumber, NfeAccessKey, NfeURL,
// EstimatedDeliveryDate) are only populated once the order reaches shipped.

type Order struct {
	ID          string      `json:"id"`
	QuotationID string      `json:"quotation_id"`
	CompanyID   string      `json:"company_id"`
	Status      OrderStatus `json:"status"`

	TrackingNumber        string     `json:"tracking_number,omitempty"`
	NfeAccessKey          string     `json:"nfe_access_key,omitempty"`
	NfeURL                string     `json:"nfe_url,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	Notes                 string     `json:"notes,omitempty"`

	Quotation *QuotationRef `json:"quotation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderPatch is the exclusive field set written by a single update call.
// Nil pointers are left untouched in storage.
type OrderPatch struct {
	Status                *OrderStatus
	TrackingNumber        *string
	NfeAccessKey          *string
	NfeURL                *string
	EstimatedDeliveryDate *time.Time
	Notes                 *string
}

// IsEmpty reports whether the patch would write no fields.
func (p OrderPatch) IsEmpty() bool {
	return p.Status == nil &&
		p.TrackingNumber == nil &&
		p.NfeAccessKey == nil &&
		p.NfeURL == nil &&
		p.EstimatedDeliveryDate == nil &&
		p.Notes == nil
}

// OrderFilter is the conjunctive filter used by the query layer. Status is
// always required; the created-at range only applies when both bounds are
// set.
type OrderFilter struct {
	Status      OrderStatus
	CompanyID   string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
