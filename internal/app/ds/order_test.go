package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitionsForward(t *testing.T) {
	assert.True(t, IsValidStatusTransition(StatusReceived, StatusPreparing))
	assert.True(t, IsValidStatusTransition(StatusReceived, StatusCancelled))
	assert.True(t, IsValidStatusTransition(StatusPreparing, StatusReady))
	assert.True(t, IsValidStatusTransition(StatusReady, StatusCompleted))
}

// Every pair outside the four allowed edges must be rejected, including
// self-transitions and anything leaving a terminal status.
func TestStatusTransitionsRejectEverythingElse(t *testing.T) {
	all := []OrderStatus{StatusReceived, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}
	allowed := map[[2]OrderStatus]bool{
		{StatusReceived, StatusPreparing}: true,
		{StatusReceived, StatusCancelled}: true,
		{StatusPreparing, StatusReady}:    true,
		{StatusReady, StatusCompleted}:    true,
	}

	for _, current := range all {
		for _, next := range all {
			got := IsValidStatusTransition(current, next)
			assert.Equalf(t, allowed[[2]OrderStatus{current, next}], got,
				"transition %s -> %s", current, next)
		}
	}
}

func TestStatusTransitionsUnknownStatus(t *testing.T) {
	assert.False(t, IsValidStatusTransition(OrderStatus("BOGUS"), StatusPreparing))
	assert.False(t, IsValidStatusTransition(StatusReceived, OrderStatus("BOGUS")))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentCard))
	assert.True(t, ValidPaymentMethod(PaymentWallet))
	assert.True(t, ValidPaymentMethod(PaymentCounter))
	assert.False(t, ValidPaymentMethod("CRYPTO"))
	assert.False(t, ValidPaymentMethod(""))
	assert.False(t, ValidPaymentMethod("card")) // normalization is the caller's job
}

func TestNormalizeTableCode(t *testing.T) {
	assert.Equal(t, "T1", NormalizeTableCode("T1"))
	assert.Equal(t, "T1", NormalizeTableCode("  t1 "))
	assert.Equal(t, NormalizeTableCode("T 1"), NormalizeTableCode("t 1"))
	assert.Equal(t, "TABLE_01", NormalizeTableCode("table 01"))
	assert.Equal(t, "TABLE_01", NormalizeTableCode("Table \t 01"))
	assert.Equal(t, "", NormalizeTableCode("   "))
}
