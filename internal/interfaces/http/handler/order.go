package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appordering "github.com/swiftora/marketplace/internal/application/ordering"
	"github.com/swiftora/marketplace/internal/interfaces/http/dto"
)

// OrderHandler handles order placement, listing and tracking
type OrderHandler struct {
	BaseHandler
	orderService *appordering.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *appordering.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ProductsForOrdering godoc
// @Summary      Products available to a supermarket
// @Description  Products of every supplier with an accepted tie-up, plus a supplier map
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        supermarketId path string true "Supermarket ID"
// @Success      200 {object} APIResponse[appordering.ProductsForOrderingResponse]
// @Failure      403 {object} ErrorResponse
// @Router       /orders/by-supermarket/{supermarketId} [get]
func (h *OrderHandler) ProductsForOrdering(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	supermarketID, ok := h.UUIDParam(c, "supermarketId")
	if !ok {
		return
	}
	result, err := h.orderService.ProductsForOrdering(c.Request.Context(), session, supermarketID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// PlaceOrder godoc
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key header string false "Deduplicates resent requests"
// @Param        request body dto.PlaceOrderRequest true "Order"
// @Success      201 {object} APIResponse[appordering.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /orders/placeorder [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	var req dto.PlaceOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}
	in, err := req.Normalize()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	// a body without a supermarket orders for the caller
	if in.SupermarketID == uuid.Nil {
		in.SupermarketID = session.ActorID
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), session, appordering.PlaceOrderRequest{
		SupermarketID: in.SupermarketID,
		SupplierID:    in.SupplierID,
		ProductID:     in.ProductID,
		SKU:           in.SKU,
		Quantity:      in.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// SupplierOrders godoc
// @Summary      List orders for the calling supplier
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[[]appordering.OrderResponse]
// @Failure      403 {object} ErrorResponse
// @Router       /orders/getorder [get]
func (h *OrderHandler) SupplierOrders(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	orders, err := h.orderService.ListForSupplier(c.Request.Context(), session)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// SupermarketOrders godoc
// @Summary      List orders placed by a supermarket
// @Description  Each order carries its tracking display_label
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        supermarketId path string true "Supermarket ID"
// @Success      200 {object} APIResponse[[]appordering.OrderResponse]
// @Failure      403 {object} ErrorResponse
// @Router       /orders/supermarket/{supermarketId} [get]
func (h *OrderHandler) SupermarketOrders(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	supermarketID, ok := h.UUIDParam(c, "supermarketId")
	if !ok {
		return
	}
	orders, err := h.orderService.ListForSupermarket(c.Request.Context(), session, supermarketID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// UpdateStatus godoc
// @Summary      Advance an order
// @Description  Moves the order one step: pending, accepted, shipped, delivered
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orderId path string true "Order ID"
// @Param        request body dto.UpdateOrderStatusRequest true "Target status"
// @Success      200 {object} APIResponse[appordering.OrderResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /orders/{orderId}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	orderID, ok := h.UUIDParam(c, "orderId")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	target, err := req.Target()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	order, err := h.orderService.AdvanceOrder(c.Request.Context(), session, orderID, target)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
