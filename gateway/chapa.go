package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrGateway is returned when the payment provider answers with a non-200
// status. The provider payload stays internal to this package.
var ErrGateway = errors.New("payment gateway request failed")

// InitializeRequest is the payload for the gateway initialize call
type InitializeRequest struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TxRef     string `json:"tx_ref"`
	ReturnURL string `json:"return_url"`
}

// InitializeResult carries the gateway-assigned transaction reference and
// hosted checkout URL
type InitializeResult struct {
	TxRef       string
	CheckoutURL string
}

// PaymentGateway abstracts the remote payment provider so tests can
// substitute a fake without network access.
type PaymentGateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, txRef string) (string, error)
}

// ChapaClient talks to the Chapa transaction API over HTTPS with bearer
// auth. Calls are synchronous; the only timeout is the HTTP client's.
type ChapaClient struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

// NewChapaClient creates a Chapa API client
func NewChapaClient(baseURL, secretKey string) *ChapaClient {
	return &ChapaClient{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chapaInitializeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    struct {
		TxRef       string `json:"tx_ref"`
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type chapaVerifyResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    struct {
		Status string `json:"status"`
	} `json:"data"`
}

// Initialize starts a transaction with the gateway and returns the assigned
// tx_ref and checkout URL.
func (c *ChapaClient) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal initialize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build initialize request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("initialize call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: initialize returned %d", ErrGateway, resp.StatusCode)
	}

	var parsed chapaInitializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}

	return &InitializeResult{
		TxRef:       parsed.Data.TxRef,
		CheckoutURL: parsed.Data.CheckoutURL,
	}, nil
}

// Verify queries the gateway for the status of a transaction by tx_ref and
// returns the reported status string as-is.
func (c *ChapaClient) Verify(ctx context.Context, txRef string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/v1/transaction/verify/"+txRef, nil)
	if err != nil {
		return "", fmt.Errorf("build verify request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("verify call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: verify returned %d", ErrGateway, resp.StatusCode)
	}

	var parsed chapaVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode verify response: %w", err)
	}

	return parsed.Data.Status, nil
}
