// Package payment verifies customer payments made through external
// gateways before an order is accepted as paid.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrNotConfigured = errors.New("payment gateway is not configured")

// VerifyRazorpaySignature checks the checkout callback signature: an
// HMAC-SHA256 of "<orderID>|<paymentID>" keyed with the Razorpay secret.
func VerifyRazorpaySignature(keySecret, orderID, paymentID, signature string) bool {
	if keySecret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(keySecret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

const stripeAPIBase = "https://api.stripe.com"

// StripeClient talks to the Stripe REST API. BaseURL is overridable for
// tests.
type StripeClient struct {
	SecretKey  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		SecretKey:  secretKey,
		BaseURL:    stripeAPIBase,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SessionStatus is the outcome of a checkout session lookup.
type SessionStatus struct {
	Paid   bool
	Status string
}

// VerifySession retrieves a checkout session and reports whether it has
// been paid.
func (c *StripeClient) VerifySession(ctx context.Context, sessionID string) (*SessionStatus, error) {
	if c.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.BaseURL, sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe session lookup: unexpected status %d", resp.StatusCode)
	}

	var session struct {
		PaymentStatus string `json:"payment_status"`
		Status        string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}

	return &SessionStatus{
		Paid:   session.PaymentStatus == "paid",
		Status: session.Status,
	}, nil
}
