package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apppartner "github.com/swiftora/marketplace/internal/application/partner"
	apptieup "github.com/swiftora/marketplace/internal/application/tieup"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/interfaces/http/dto"
)

// maxStatusBatch bounds the supplierIds list of one tie-up status query
const maxStatusBatch = 100

// SupermarketHandler serves the supermarket side of the marketplace:
// supplier discovery, tie-up requests and the supermarket's own profile
type SupermarketHandler struct {
	BaseHandler
	partnerService *apppartner.PartnerService
	tieUpService   *apptieup.TieUpService
}

// NewSupermarketHandler creates a new supermarket handler
func NewSupermarketHandler(partnerService *apppartner.PartnerService, tieUpService *apptieup.TieUpService) *SupermarketHandler {
	return &SupermarketHandler{
		partnerService: partnerService,
		tieUpService:   tieUpService,
	}
}

// FindSuppliers godoc
// @Summary      List suppliers
// @Tags         supermarkets
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[[]apppartner.SupplierResponse]
// @Failure      401 {object} ErrorResponse
// @Router       /supermarkets/findsupplier [get]
func (h *SupermarketHandler) FindSuppliers(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	suppliers, err := h.partnerService.ListSuppliers(c.Request.Context(), session)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, suppliers)
}

// TieUpStatus godoc
// @Summary      Get tie-up status
// @Description  Status of the caller's tie-up with one supplier. A missing
// @Description  relationship answers not_requested, never 404. Pass
// @Description  supplierIds=a,b,c to look up several at once.
// @Tags         supermarkets
// @Produce      json
// @Security     BearerAuth
// @Param        supplierId  query string false "Supplier ID"
// @Param        supplierIds query string false "Comma separated supplier IDs"
// @Success      200 {object} APIResponse[apptieup.StatusResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /supermarkets/tieup-status [get]
func (h *SupermarketHandler) TieUpStatus(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}

	if raw := c.Query("supplierIds"); raw != "" {
		ids, err := parseIDList(raw)
		if err != nil {
			h.Error(c, dto.ErrCodeInvalidInput, "supplierIds must be comma separated UUIDs")
			return
		}
		if len(ids) > maxStatusBatch {
			h.Error(c, dto.ErrCodeInvalidInput, "Too many supplierIds")
			return
		}
		statuses, err := h.tieUpService.QueryStatuses(c.Request.Context(), session, ids)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, statuses)
		return
	}

	raw := c.Query("supplierId")
	if raw == "" {
		raw = c.Query("supplier_id")
	}
	supplierID, err := uuid.Parse(raw)
	if err != nil {
		h.Error(c, dto.ErrCodeInvalidInput, "supplierId must be a UUID")
		return
	}
	status, err := h.tieUpService.QueryStatus(c.Request.Context(), session, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// RequestTieUp godoc
// @Summary      Request a tie-up
// @Tags         supermarkets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key header string false "Deduplicates resent requests"
// @Param        request body dto.RequestTieUpRequest true "Supplier to tie up with"
// @Success      201 {object} APIResponse[apptieup.TieUpResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /supermarkets/request-tieup [post]
func (h *SupermarketHandler) RequestTieUp(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	var req dto.RequestTieUpRequest
	if !h.BindJSON(c, &req) {
		return
	}
	supplierID, err := req.Supplier()
	if err != nil {
		h.HandleError(c, err)
		return
	}

	tieUp, err := h.tieUpService.RequestTieUp(c.Request.Context(), session, supplierID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tieUp)
}

// AcceptedStatus godoc
// @Summary      List accepted tie-ups
// @Description  Suppliers the supermarket may order from, with display addresses
// @Tags         supermarkets
// @Produce      json
// @Security     BearerAuth
// @Param        supermarketId path string true "Supermarket ID"
// @Success      200 {object} APIResponse[[]apptieup.AcceptedTieUpResponse]
// @Failure      403 {object} ErrorResponse
// @Router       /supermarkets/accepted-status/{supermarketId} [get]
func (h *SupermarketHandler) AcceptedStatus(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	supermarketID, ok := h.UUIDParam(c, "supermarketId")
	if !ok {
		return
	}
	accepted, err := h.tieUpService.ListAccepted(c.Request.Context(), session, supermarketID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, accepted)
}

// GetMyProfile godoc
// @Summary      Get own supermarket profile
// @Tags         supermarkets
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[apppartner.SupermarketResponse]
// @Failure      403 {object} ErrorResponse
// @Router       /supermarkets/me [get]
func (h *SupermarketHandler) GetMyProfile(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	profile, err := h.partnerService.GetSupermarketProfile(c.Request.Context(), session)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// GetProfile godoc
// @Summary      Get a supermarket profile
// @Description  Only the supermarket itself may read its profile
// @Tags         supermarkets
// @Produce      json
// @Security     BearerAuth
// @Param        supermarketId path string true "Supermarket ID"
// @Success      200 {object} APIResponse[apppartner.SupermarketResponse]
// @Failure      403 {object} ErrorResponse
// @Router       /supermarkets/{supermarketId} [get]
func (h *SupermarketHandler) GetProfile(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	supermarketID, ok := h.UUIDParam(c, "supermarketId")
	if !ok {
		return
	}
	if err := session.RequireActor(identity.RoleSupermarket, supermarketID); err != nil {
		h.HandleError(c, err)
		return
	}
	profile, err := h.partnerService.GetSupermarketProfile(c.Request.Context(), session)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// UpdateProfile godoc
// @Summary      Update a supermarket profile
// @Description  A changed address is geocoded when no coordinates are given
// @Tags         supermarkets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        supermarketId path string true "Supermarket ID"
// @Param        request body dto.UpdateSupermarketRequest true "Profile"
// @Success      200 {object} APIResponse[apppartner.SupermarketResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /supermarkets/{supermarketId} [put]
func (h *SupermarketHandler) UpdateProfile(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	supermarketID, ok := h.UUIDParam(c, "supermarketId")
	if !ok {
		return
	}
	var req dto.UpdateSupermarketRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.partnerService.UpdateSupermarketProfile(c.Request.Context(), session, supermarketID, apppartner.UpdateSupermarketRequest{
		Name:      req.Name,
		Contact:   req.Contact,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

func parseIDList(raw string) ([]uuid.UUID, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
