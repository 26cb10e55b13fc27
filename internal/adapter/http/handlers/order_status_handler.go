package handlers

import (
	"errors"
	"log"
	request "marketplace_b2b/internal/adapter/http/dto/request"
	response "marketplace_b2b/internal/adapter/http/dto/response"
	"marketplace_b2b/internal/usecase"
	"marketplace_b2b/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Headers set by the upstream gateway after session resolution. This service
// trusts them; token validation happens before requests get here.
const (
	HeaderCompanyID = "X-Company-ID"
	HeaderUserRole  = "X-User-Role"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_PAYLOAD", "Invalid order payload", http.StatusBadRequest)

// OrderStatusHandler handles HTTP requests for the order lifecycle.

type OrderStatusHandler struct {
	usecase usecase.IOrderStatusUseCase
}

func NewOrderStatusHandler(uc usecase.IOrderStatusUseCase) *OrderStatusHandler {
	return &OrderStatusHandler{usecase: uc}
}

func requesterFrom(c *gin.Context) usecase.Requester {
	return usecase.Requester{
		CompanyID: c.GetHeader(HeaderCompanyID),
		Role:      c.GetHeader(HeaderUserRole),
	}
}

// UpdateOrderStatus moves an order along the status state machine.
func (h *OrderStatusHandler) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[orders][handler] update-status start order_id=%s", orderID)

	in, appErr := bindStatusInput(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), orderID, in, requesterFrom(c).CompanyID)
	if err != nil {
		log.Printf("[orders][handler] update-status failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orders][handler] update-status success order_id=%s status=%s", orderID, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// BulkUpdateOrderStatus applies one status change to an ordered list of
// orders; individual failures are skipped, never surfaced as a batch error.
func (h *OrderStatusHandler) BulkUpdateOrderStatus(c *gin.Context) {
	var payload request.BulkUpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	in, appErr := statusInputFrom(payload.UpdateOrderStatusRequest)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ids := payload.ResolveOrderIDs()
	log.Printf("[orders][handler] bulk-update start count=%d target_status=%s", len(ids), in.Status)

	orders, err := h.usecase.BulkUpdateOrderStatus(c.Request.Context(), ids, in, requesterFrom(c).CompanyID)
	if err != nil {
		log.Printf("[orders][handler] bulk-update failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BulkUpdateResponse{
		Orders:       response.FromOrders(orders),
		UpdatedCount: len(orders),
	})
}

// GetOrderHistory returns the order timeline.
func (h *OrderStatusHandler) GetOrderHistory(c *gin.Context) {
	orderID := c.Param("id")

	history, err := h.usecase.GetOrderHistory(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[orders][handler] history failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderHistory(orderID, history))
}

// UpdateOrderNfe corrects the fiscal document reference of a shipped or
// delivered order.
func (h *OrderStatusHandler) UpdateOrderNfe(c *gin.Context) {
	orderID := c.Param("id")

	var payload request.UpdateOrderNfeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	in := usecase.UpdateOrderNfeInput{NfeAccessKey: payload.NfeAccessKey, NfeURL: payload.NfeURL}
	order, err := h.usecase.UpdateOrderNfe(c.Request.Context(), orderID, in, requesterFrom(c))
	if err != nil {
		log.Printf("[orders][handler] update-nfe failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetOrderByID returns a single order with its quotation projection.
func (h *OrderStatusHandler) GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")

	order, err := h.usecase.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders returns a page of orders in a status.
func (h *OrderStatusHandler) ListOrders(c *gin.Context) {
	var query request.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	status, err := query.ResolveStatus()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	from, to, err := query.ResolveCreatedRange()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid created-at range", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page, err := h.usecase.GetOrdersByStatus(c.Request.Context(), usecase.ListOrdersInput{
		Status:      status,
		CompanyID:   query.CompanyID,
		CreatedFrom: from,
		CreatedTo:   to,
		Limit:       query.Limit,
		Offset:      query.Offset,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ListOrdersResponse{
		Orders: response.FromOrders(page.Orders),
		Total:  page.Total,
	})
}

// GetOrderStats returns the per-status distribution and average processing
// time.
func (h *OrderStatusHandler) GetOrderStats(c *gin.Context) {
	stats, err := h.usecase.GetOrderStatusStats(c.Request.Context())
	if err != nil {
		log.Printf("[orders][handler] stats failed err=%v", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderStatusStats(stats))
}

func bindStatusInput(c *gin.Context) (usecase.UpdateOrderStatusInput, *pkg.AppError) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return usecase.UpdateOrderStatusInput{}, errInvalidOrderPayload
	}
	return statusInputFrom(payload)
}

func statusInputFrom(payload request.UpdateOrderStatusRequest) (usecase.UpdateOrderStatusInput, *pkg.AppError) {
	status, err := payload.ResolveStatus()
	if err != nil {
		return usecase.UpdateOrderStatusInput{}, pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status value", http.StatusBadRequest)
	}
	estimated, err := payload.ResolveEstimatedDeliveryDate()
	if err != nil {
		return usecase.UpdateOrderStatusInput{}, pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid estimated delivery date", http.StatusBadRequest)
	}

	return usecase.UpdateOrderStatusInput{
		Status:                status,
		TrackingNumber:        payload.TrackingNumber,
		NfeAccessKey:          payload.NfeAccessKey,
		NfeURL:                payload.NfeURL,
		Notes:                 payload.Notes,
		EstimatedDeliveryDate: estimated,
	}, nil
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingField):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELD", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidNfeState):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyNfePatch):
		return pkg.NewDomainErrorSimple("EMPTY_NFE_PATCH", "At least one NF-e field is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
