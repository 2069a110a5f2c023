package handler

import (
	"github.com/gin-gonic/gin"
	appcatalog "github.com/swiftora/marketplace/internal/application/catalog"
	"github.com/swiftora/marketplace/internal/interfaces/http/dto"
)

// ProductHandler manages a supplier's own catalog
type ProductHandler struct {
	BaseHandler
	productService *appcatalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create godoc
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddProductRequest true "Product"
// @Success      201 {object} APIResponse[appcatalog.ProductResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	var req dto.AddProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.AddProduct(c.Request.Context(), session, appcatalog.AddProductRequest{
		SKU:           req.SKU,
		Name:          req.Name(),
		Company:       req.Company,
		Barcode:       req.Barcode,
		Category:      req.Category,
		HSNNo:         req.HSNNo,
		Unit:          req.Unit,
		CostPrice:     req.CostPrice,
		PurchasePrice: req.PurchasePrice,
		SalesPrice:    req.SalesPrice,
		MRPPrice:      req.MRPPrice,
		Discount:      req.Discount,
		Stock:         req.Stock,
		ExpiryDate:    req.ExpiryDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// ListOwn godoc
// @Summary      List own products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[[]appcatalog.ProductResponse]
// @Failure      403 {object} ErrorResponse
// @Router       /products/all [get]
func (h *ProductHandler) ListOwn(c *gin.Context) {
	session, ok := h.Session(c)
	if !ok {
		return
	}
	products, err := h.productService.ListProducts(c.Request.Context(), session)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}
