package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	actorID   uuid.UUID
	role      string
	orderID   uuid.UUID
	productID uuid.UUID
	stock     int

	mu     sync.Mutex
	placed []map[string]any
}

func (f *fakeAPI) placedOrders() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.placed...)
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok" {
				write(w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   map[string]string{"code": "UNAUTHENTICATED", "message": "Invalid or expired token"},
				})
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{
			"access_token": "tok",
			"expires_at":   time.Now().Add(time.Hour),
			"user":         map[string]any{"id": uuid.New(), "actor_id": f.actorID, "role": f.role},
		}})
	})
	mux.HandleFunc("GET /api/v1/me", authed(func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{
			"user_id": uuid.New(), "actor_id": f.actorID, "role": f.role, "name": "Fresh Mart",
		}})
	}))
	mux.HandleFunc("GET /api/v1/orders/supermarket/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"success": true, "data": []map[string]any{{
			"orderNumber":   f.orderID,
			"productName":   "Basmati Rice 5kg",
			"orderQuantity": 4,
			"orderStatus":   "shipped",
			"orderDate":     time.Now(),
		}}})
	}))
	mux.HandleFunc("GET /api/v1/orders/by-supermarket/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{
			"products": []map[string]any{{
				"product_id":   f.productID,
				"supplier_id":  uuid.New(),
				"sku":          "RICE-5KG",
				"product_name": "Basmati Rice 5kg",
				"stock":        f.stock,
			}},
			"supplierMap": map[string]any{},
		}})
	}))
	mux.HandleFunc("POST /api/v1/orders/placeorder", authed(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		f.mu.Lock()
		f.placed = append(f.placed, body)
		f.mu.Unlock()
		write(w, http.StatusCreated, map[string]any{"success": true, "data": map[string]any{
			"orderNumber":   uuid.New(),
			"productName":   "Basmati Rice 5kg",
			"sku":           body["sku"],
			"orderQuantity": body["order_quantity"],
			"orderStatus":   "pending",
			"orderDate":     time.Now(),
		}})
	}))
	mux.HandleFunc("PUT /api/v1/orders/{id}/status", authed(func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"error":   map[string]string{"code": "ILLEGAL_TRANSITION", "message": "Order cannot move from pending to delivered"},
		})
	}))
	return mux
}

func runCLI(t *testing.T, srv *httptest.Server, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-url", srv.URL + "/api/v1"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Commands:")
}

func TestRun_Login(t *testing.T) {
	api := &fakeAPI{actorID: uuid.New(), role: "supermarket"}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	code, out, _ := runCLI(t, srv, "login", "fresh@mart.test", "secret")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Logged in as Supermarket")
	assert.Contains(t, out, "export MARKET_TOKEN=tok")

	code, _, errOut := runCLI(t, srv, "login", "only-email")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage:")
}

func TestRun_OrdersAndTrack(t *testing.T) {
	api := &fakeAPI{actorID: uuid.New(), role: "supermarket", orderID: uuid.New()}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	code, out, errOut := runCLI(t, srv, "-token", "tok", "orders")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Basmati Rice 5kg")
	assert.Contains(t, out, "Shipped")
	assert.Contains(t, out, "Out for delivery")

	code, out, _ = runCLI(t, srv, "-token", "tok", "track", api.orderID.String())
	require.Equal(t, 0, code)
	assert.Equal(t, "Out for delivery\n", out)

	code, _, errOut = runCLI(t, srv, "-token", "tok", "track", uuid.NewString())
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "NOT_FOUND")
}

func TestRun_ExitCodes(t *testing.T) {
	api := &fakeAPI{actorID: uuid.New(), role: "supplier"}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()

	code, _, errOut := runCLI(t, srv, "-token", "wrong", "whoami")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "UNAUTHENTICATED")

	code, _, errOut = runCLI(t, srv, "-token", "tok", "advance", uuid.NewString(), "delivered")
	assert.Equal(t, 3, code)
	assert.Contains(t, errOut, "ILLEGAL_TRANSITION")

	code, _, _ = runCLI(t, srv, "-token", "tok", "advance", "not-an-id", "shipped")
	assert.Equal(t, 2, code)

	code, _, errOut = runCLI(t, srv, "-token", "tok", "teleport")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown command")
}

func TestRun_PlaceOrder(t *testing.T) {
	api := &fakeAPI{actorID: uuid.New(), role: "supermarket", productID: uuid.New(), stock: 5}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()
	order := func(qty string) []string {
		return []string{"-token", "tok", "place-order",
			"-supplier", uuid.NewString(), "-product", api.productID.String(), "-qty", qty}
	}

	t.Run("non-numeric quantity is a domain rule", func(t *testing.T) {
		for _, qty := range []string{"abc", "2.5", ""} {
			code, _, errOut := runCLI(t, srv, order(qty)...)
			assert.Equal(t, 3, code, qty)
			assert.Contains(t, errOut, "INVALID_QUANTITY")
		}
	})

	t.Run("stock bound comes from the catalog", func(t *testing.T) {
		code, _, errOut := runCLI(t, srv, order("6")...)
		assert.Equal(t, 3, code)
		assert.Contains(t, errOut, "INSUFFICIENT_STOCK")
	})

	t.Run("explicit stock wins over the catalog", func(t *testing.T) {
		code, _, errOut := runCLI(t, srv, append(order("4"), "-stock", "3")...)
		assert.Equal(t, 3, code)
		assert.Contains(t, errOut, "INSUFFICIENT_STOCK")
	})

	assert.Empty(t, api.placedOrders(), "rejected orders never reach the server")

	code, out, errOut := runCLI(t, srv, order("5")...)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Awaiting order acceptance")

	placed := api.placedOrders()
	require.Len(t, placed, 1)
	assert.Equal(t, "RICE-5KG", placed[0]["sku"], "SKU filled from the catalog")
	assert.EqualValues(t, 5, placed[0]["order_quantity"])
}
