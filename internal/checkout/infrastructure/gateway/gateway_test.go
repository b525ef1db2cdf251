package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryClient_CheckAvailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/stock/availability", r.URL.Path)

		var req struct {
			ProductIDs []uint `json:"product_ids"`
			Quantities []int  `json:"quantities"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []uint{11, 5}, req.ProductIDs)
		assert.Equal(t, []int{2, 1}, req.Quantities)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"available":       false,
			"unavailable_ids": []uint{5},
		})
	}))
	defer server.Close()

	client := NewInventoryClient(server.URL, 5*time.Second)
	result, err := client.CheckAvailability(context.Background(), []uint{11, 5}, []int{2, 1})
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, []uint{5}, result.UnavailableIDs)
}

func TestInventoryClient_DecrementStock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stock/decrement", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	client := NewInventoryClient(server.URL, 5*time.Second)
	result, err := client.DecrementStock(context.Background(), []uint{11}, []int{1})
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestInventoryClient_ErrorStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewInventoryClient(server.URL, 5*time.Second)

	_, err := client.CheckAvailability(context.Background(), []uint{1}, []int{1})
	assert.Error(t, err)

	_, err = client.DecrementStock(context.Background(), []uint{1}, []int{1})
	assert.Error(t, err)
}

func TestInventoryClient_DoesNotRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewInventoryClient(server.URL, 5*time.Second)
	_, err := client.CheckAvailability(context.Background(), []uint{1}, []int{1})

	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "every call is attempted exactly once")
}

func TestPaymentClient_Authorize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/payments/authorize", r.URL.Path)

		var req struct {
			CustomerID uint   `json:"customer_id"`
			Amount     string `json:"amount"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, uint(7), req.CustomerID)
		// 金额以十进制字符串传输
		assert.Equal(t, "360.5", req.Amount)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"authorized":     true,
			"transaction_id": "tx-001",
		})
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, 5*time.Second)
	auth, err := client.Authorize(context.Background(), 7, decimal.RequireFromString("360.5"))
	require.NoError(t, err)

	assert.True(t, auth.Authorized)
	assert.Equal(t, "tx-001", auth.TransactionID)
}

func TestPaymentClient_AuthorizeDenied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"authorized": false})
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, 5*time.Second)
	auth, err := client.Authorize(context.Background(), 7, decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.False(t, auth.Authorized)
	assert.Empty(t, auth.TransactionID)
}

func TestPaymentClient_Cancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/payments/tx-001/cancel", r.URL.Path)

		var req struct {
			CustomerID uint `json:"customer_id"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, uint(7), req.CustomerID)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, 5*time.Second)
	assert.NoError(t, client.Cancel(context.Background(), 7, "tx-001"))
}

func TestPaymentClient_CancelErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := NewPaymentClient(server.URL, 5*time.Second)
	assert.Error(t, client.Cancel(context.Background(), 7, "tx-001"))
}
