package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	secret := "test-secret"
	sig := signPayload(secret, "order_1", "pay_1")

	assert.True(t, VerifyRazorpaySignature(secret, "order_1", "pay_1", sig))
	assert.False(t, VerifyRazorpaySignature(secret, "order_1", "pay_2", sig))
	assert.False(t, VerifyRazorpaySignature(secret, "order_1", "pay_1", "deadbeef"))
	assert.False(t, VerifyRazorpaySignature("", "order_1", "pay_1", sig))
}

func TestStripeVerifySessionPaid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions/cs_test_123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"payment_status":"paid","status":"complete"}`)
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test")
	client.BaseURL = srv.URL

	status, err := client.VerifySession(context.Background(), "cs_test_123")
	require.NoError(t, err)
	assert.True(t, status.Paid)
	assert.Equal(t, "complete", status.Status)
}

func TestStripeVerifySessionUnpaid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"payment_status":"unpaid","status":"open"}`)
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test")
	client.BaseURL = srv.URL

	status, err := client.VerifySession(context.Background(), "cs_test_456")
	require.NoError(t, err)
	assert.False(t, status.Paid)
}

func TestStripeVerifySessionErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewStripeClient("sk_test")
	client.BaseURL = srv.URL

	_, err := client.VerifySession(context.Background(), "cs_missing")
	assert.Error(t, err)

	unconfigured := NewStripeClient("")
	_, err = unconfigured.VerifySession(context.Background(), "cs_test")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
