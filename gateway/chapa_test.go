package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapaClient_Initialize_Success(t *testing.T) {
	var gotAuth string
	var gotBody InitializeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transaction/initialize", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Hosted Link","status":"success","data":{"tx_ref":"T1","checkout_url":"https://pay/x"}}`))
	}))
	defer server.Close()

	client := NewChapaClient(server.URL, "sk-test")
	result, err := client.Initialize(context.Background(), InitializeRequest{
		Amount:    "100.00",
		Currency:  "ETB",
		Email:     "guest@example.com",
		FirstName: "Abel",
		LastName:  "Tesfaye",
		TxRef:     "booking_1_1",
		ReturnURL: "http://localhost:8080/v1/payments/verify/1/",
	})

	require.NoError(t, err)
	assert.Equal(t, "T1", result.TxRef)
	assert.Equal(t, "https://pay/x", result.CheckoutURL)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "100.00", gotBody.Amount)
	assert.Equal(t, "booking_1_1", gotBody.TxRef)
}

func TestChapaClient_Initialize_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewChapaClient(server.URL, "sk-test")
	_, err := client.Initialize(context.Background(), InitializeRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestChapaClient_Verify_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/transaction/verify/T1", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message":"Payment details","status":"success","data":{"status":"success"}}`))
	}))
	defer server.Close()

	client := NewChapaClient(server.URL, "sk-test")
	status, err := client.Verify(context.Background(), "T1")

	require.NoError(t, err)
	assert.Equal(t, "success", status)
}

func TestChapaClient_Verify_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewChapaClient(server.URL, "sk-test")
	_, err := client.Verify(context.Background(), "T1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateway)
}
