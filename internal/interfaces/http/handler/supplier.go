package handler

import (
	"github.com/gin-gonic/gin"
	apptieup "github.com/swiftora/marketplace/internal/application/tieup"
	"github.com/swiftora/marketplace/internal/interfaces/http/dto"
)

// SupplierHandler serves the supplier side of tie-ups
type SupplierHandler struct {
	BaseHandler
	tieUpService *apptieup.TieUpService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(tieUpService *apptieup.TieUpService) *SupplierHandler {
	return &SupplierHandler{tieUpService: tieUpService}
}

// AcceptTieUp godoc
// @Summary      Accept a tie-up
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AcceptTieUpRequest true "Tie-up to accept"
// @Success      200 {object} APIResponse[apptieup.TieUpResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /suppliers/accept-tieup [put]
func (h *SupplierHandler) AcceptTieUp(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	var req dto.AcceptTieUpRequest
	if !h.BindJSON(c, &req) {
		return
	}
	supermarketID, supplierID, err := req.Pair()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	tieUp, err := h.tieUpService.AcceptTieUp(c.Request.Context(), session, supermarketID, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tieUp)
}

// TieUpRequestDetails godoc
// @Summary      List tie-up requests
// @Description  Tie-ups addressed to the calling supplier with supermarket details
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[[]apptieup.TieUpRequestResponse]
// @Failure      403 {object} ErrorResponse
// @Router       /suppliers/tieup-request-details [get]
func (h *SupplierHandler) TieUpRequestDetails(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	requests, err := h.tieUpService.ListRequestsForSupplier(c.Request.Context(), session)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, requests)
}
