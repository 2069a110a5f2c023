package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/domain/catalog"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/tests/testutil"
	"go.uber.org/zap"
)

func validRequest() AddProductRequest {
	return AddProductRequest{
		SKU:        "RICE-5KG",
		Name:       "Basmati Rice 5kg",
		Company:    "Golden Fields",
		Unit:       "bag",
		SalesPrice: decimal.NewFromInt(600),
		MRPPrice:   decimal.NewFromInt(650),
		Discount:   decimal.NewFromInt(10),
		Stock:      8,
	}
}

func TestProductService_AddProduct(t *testing.T) {
	supplierID := testutil.NewTestUUID("acme")
	session := testutil.SupplierSession(supplierID)

	t.Run("adds product", func(t *testing.T) {
		repo := new(testutil.MockProductRepository)
		publisher := &testutil.RecordingPublisher{}
		svc := NewProductService(repo, zap.NewNop())
		svc.SetEventPublisher(publisher)
		repo.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.SKU == "RICE-5KG" && p.SupplierID == supplierID
		})).Return(true, nil)

		req := validRequest()
		req.SKU = "  RICE-5KG "
		res, err := svc.AddProduct(context.Background(), session, req)
		require.NoError(t, err)
		assert.Equal(t, supplierID, res.SupplierID)
		assert.Equal(t, "RICE-5KG", res.SKU)
		assert.Equal(t, catalog.StockLevelLow, res.StockLevel)
		assert.True(t, decimal.NewFromInt(540).Equal(res.NetSalesPrice))
		assert.Len(t, publisher.Types(), 1)
	})

	t.Run("duplicate sku", func(t *testing.T) {
		repo := new(testutil.MockProductRepository)
		svc := NewProductService(repo, zap.NewNop())
		publisher := &testutil.RecordingPublisher{}
		svc.SetEventPublisher(publisher)
		repo.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(false, nil)

		_, err := svc.AddProduct(context.Background(), session, validRequest())
		assert.ErrorIs(t, err, shared.ErrDuplicateRequest)
		assert.Empty(t, publisher.Types(), "a lost insert raises no event")
	})

	t.Run("store failure is not a duplicate", func(t *testing.T) {
		repo := new(testutil.MockProductRepository)
		svc := NewProductService(repo, zap.NewNop())
		repo.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(false, errors.New("db down"))

		_, err := svc.AddProduct(context.Background(), session, validRequest())
		require.Error(t, err)
		assert.Empty(t, shared.CodeOf(err))
	})

	t.Run("negative stock", func(t *testing.T) {
		repo := new(testutil.MockProductRepository)
		svc := NewProductService(repo, zap.NewNop())
		req := validRequest()
		req.Stock = -1
		_, err := svc.AddProduct(context.Background(), session, req)
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		repo.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("supermarkets cannot add", func(t *testing.T) {
		svc := NewProductService(new(testutil.MockProductRepository), zap.NewNop())
		_, err := svc.AddProduct(context.Background(), testutil.SupermarketSession(supplierID), validRequest())
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	supplierID := testutil.NewTestUUID("acme")
	repo := new(testutil.MockProductRepository)
	svc := NewProductService(repo, zap.NewNop())
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	past := now.AddDate(0, 0, -1)
	plenty, err := catalog.NewProduct(supplierID, "OIL-1L", "Sunflower Oil", 100, catalog.Prices{}, catalog.ProductDetails{})
	require.NoError(t, err)
	stale, err := catalog.NewProduct(supplierID, "MILK-1L", "Milk", 0, catalog.Prices{}, catalog.ProductDetails{ExpiryDate: &past})
	require.NoError(t, err)
	repo.On("FindBySupplier", mock.Anything, supplierID).Return([]catalog.Product{*plenty, *stale}, nil)

	res, err := svc.ListProducts(context.Background(), testutil.SupplierSession(supplierID))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, catalog.StockLevelIn, res[0].StockLevel)
	assert.False(t, res[0].Expired)
	assert.Equal(t, catalog.StockLevelOut, res[1].StockLevel)
	assert.True(t, res[1].Expired)
}
