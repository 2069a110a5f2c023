package router

import (
	"github.com/gin-gonic/gin"
	"github.com/swiftora/marketplace/internal/interfaces/http/handler"
)

// Handlers groups the route handlers the API is built from
type Handlers struct {
	Auth        *handler.AuthHandler
	Supermarket *handler.SupermarketHandler
	Supplier    *handler.SupplierHandler
	Order       *handler.OrderHandler
	Product     *handler.ProductHandler
	System      *handler.SystemHandler
}

// Router manages HTTP route registration
type Router struct {
	engine       *gin.Engine
	apiVersion   string
	authenticate gin.HandlerFunc
	protected    []gin.HandlerFunc
	public       []gin.HandlerFunc
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithProtectedMiddleware adds middleware that runs after authentication on
// every protected route
func WithProtectedMiddleware(mw ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.protected = append(r.protected, mw...)
	}
}

// WithPublicMiddleware adds middleware to the unauthenticated /auth routes
func WithPublicMiddleware(mw ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.public = append(r.public, mw...)
	}
}

// NewRouter creates a new Router. authenticate guards every route except
// /health and /auth.
func NewRouter(engine *gin.Engine, authenticate gin.HandlerFunc, opts ...RouterOption) *Router {
	r := &Router{
		engine:       engine,
		apiVersion:   "v1",
		authenticate: authenticate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup(h Handlers) {
	if h.System != nil {
		r.engine.GET("/health", h.System.Health)
	}

	api := r.engine.Group("/api/" + r.apiVersion)
	if h.System != nil {
		api.GET("/health", h.System.Health)
	}

	public := api.Group("/auth", r.public...)
	public.POST("/register", h.Auth.Register)
	public.POST("/login", h.Auth.Login)

	protected := api.Group("", append([]gin.HandlerFunc{r.authenticate}, r.protected...)...)
	protected.GET("/me", h.Auth.Me)

	supermarkets := protected.Group("/supermarkets")
	supermarkets.GET("/findsupplier", h.Supermarket.FindSuppliers)
	supermarkets.GET("/tieup-status", h.Supermarket.TieUpStatus)
	supermarkets.POST("/request-tieup", h.Supermarket.RequestTieUp)
	supermarkets.GET("/accepted-status/:supermarketId", h.Supermarket.AcceptedStatus)
	supermarkets.GET("/me", h.Supermarket.GetMyProfile)
	supermarkets.GET("/:supermarketId", h.Supermarket.GetProfile)
	supermarkets.PUT("/:supermarketId", h.Supermarket.UpdateProfile)

	suppliers := protected.Group("/suppliers")
	suppliers.PUT("/accept-tieup", h.Supplier.AcceptTieUp)
	suppliers.GET("/tieup-request-details", h.Supplier.TieUpRequestDetails)

	orders := protected.Group("/orders")
	orders.GET("/by-supermarket/:supermarketId", h.Order.ProductsForOrdering)
	orders.POST("/placeorder", h.Order.PlaceOrder)
	orders.GET("/getorder", h.Order.SupplierOrders)
	orders.GET("/supermarket/:supermarketId", h.Order.SupermarketOrders)
	orders.PUT("/:orderId/status", h.Order.UpdateStatus)

	products := protected.Group("/products")
	products.POST("", h.Product.Create)
	products.GET("/all", h.Product.ListOwn)
}
