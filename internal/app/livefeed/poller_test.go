package livefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders(n int) []dto.OrderResponse {
	orders := make([]dto.OrderResponse, n)
	for i := range orders {
		orders[i] = dto.OrderResponse{
			ID:          string(rune('a' + i)),
			TableNumber: "T1",
			Status:      string(ds.StatusReceived),
			TotalAmount: 100,
		}
	}
	return orders
}

type feedServer struct {
	srv     *httptest.Server
	orders  atomic.Value // []dto.OrderResponse
	failing atomic.Bool
	patches atomic.Int32
}

func newFeedServer(t *testing.T) *feedServer {
	fs := &feedServer{}
	fs.orders.Store([]dto.OrderResponse{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders/live", func(w http.ResponseWriter, r *http.Request) {
		if fs.failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fs.orders.Load())
	})
	mux.HandleFunc("PATCH /api/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		fs.patches.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success"}`))
	})

	fs.srv = httptest.NewServer(mux)
	t.Cleanup(fs.srv.Close)
	return fs
}

func TestPollerAlertsOncePerGrowth(t *testing.T) {
	fs := newFeedServer(t)
	fs.orders.Store(sampleOrders(2))

	var alerts, updates int
	p := NewPoller(NewClient(fs.srv.URL), time.Second)
	p.OnAlert = func() { alerts++ }
	p.OnUpdate = func([]dto.OrderResponse) { updates++ }

	p.Poll(context.Background())
	assert.Equal(t, 1, alerts, "initial non-empty fetch is a growth")
	assert.Equal(t, 1, updates)

	// Two orders arrive between polls: still a single alert.
	fs.orders.Store(sampleOrders(4))
	p.Poll(context.Background())
	assert.Equal(t, 2, alerts)
	assert.Equal(t, 2, updates)
	assert.Len(t, p.Orders(), 4)
}

func TestPollerNoAlertWhenUnchanged(t *testing.T) {
	fs := newFeedServer(t)
	fs.orders.Store(sampleOrders(3))

	var alerts, updates int
	p := NewPoller(NewClient(fs.srv.URL), time.Second)
	p.OnAlert = func() { alerts++ }
	p.OnUpdate = func([]dto.OrderResponse) { updates++ }

	p.Poll(context.Background())
	p.Poll(context.Background())
	p.Poll(context.Background())

	assert.Equal(t, 1, alerts)
	assert.Equal(t, 1, updates, "identical fingerprints must not re-render")
}

func TestPollerNoAlertOnShrink(t *testing.T) {
	fs := newFeedServer(t)
	fs.orders.Store(sampleOrders(3))

	var alerts int
	p := NewPoller(NewClient(fs.srv.URL), time.Second)
	p.OnAlert = func() { alerts++ }

	p.Poll(context.Background())
	fs.orders.Store(sampleOrders(2))
	p.Poll(context.Background())

	assert.Equal(t, 1, alerts, "shrinking collection changes the display without alerting")
	assert.Len(t, p.Orders(), 2)
}

func TestPollerClearsOnFetchFailure(t *testing.T) {
	fs := newFeedServer(t)
	fs.orders.Store(sampleOrders(3))

	p := NewPoller(NewClient(fs.srv.URL), time.Second)
	p.Poll(context.Background())
	require.Len(t, p.Orders(), 3)

	fs.failing.Store(true)
	p.Poll(context.Background())
	assert.Empty(t, p.Orders(), "failed fetch clears the display rather than showing stale data")

	// Recovery repopulates and counts as growth again.
	var alerts int
	p.OnAlert = func() { alerts++ }
	fs.failing.Store(false)
	p.Poll(context.Background())
	assert.Len(t, p.Orders(), 3)
	assert.Equal(t, 1, alerts)
}

func TestPollerFailureWhileEmptyIsQuiet(t *testing.T) {
	fs := newFeedServer(t)

	var updates int
	p := NewPoller(NewClient(fs.srv.URL), time.Second)
	p.OnUpdate = func([]dto.OrderResponse) { updates++ }

	p.Poll(context.Background())
	require.Empty(t, p.Orders())
	require.Equal(t, 1, updates, "first poll settles the initial state")

	// Error while the board is already empty must not look like a change.
	fs.failing.Store(true)
	p.Poll(context.Background())
	assert.Equal(t, 1, updates)

	// Neither does recovering to a still-empty feed.
	fs.failing.Store(false)
	p.Poll(context.Background())
	assert.Equal(t, 1, updates)
}

func TestPollerAdvanceStatusOptimistic(t *testing.T) {
	fs := newFeedServer(t)
	fs.orders.Store(sampleOrders(2))

	p := NewPoller(NewClient(fs.srv.URL), time.Second)
	p.Poll(context.Background())

	err := p.AdvanceStatus(context.Background(), "a", ds.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, int32(1), fs.patches.Load())

	orders := p.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, string(ds.StatusPreparing), orders[0].Status, "local copy updates before the next poll")
}

func TestPollerAdvanceToTerminalDropsOrder(t *testing.T) {
	fs := newFeedServer(t)
	orders := sampleOrders(2)
	orders[0].Status = string(ds.StatusReady)
	fs.orders.Store(orders)

	p := NewPoller(NewClient(fs.srv.URL), time.Second)
	p.Poll(context.Background())

	err := p.AdvanceStatus(context.Background(), "a", ds.StatusCompleted)
	require.NoError(t, err)
	assert.Len(t, p.Orders(), 1, "completed orders leave the open set immediately")
}

func TestPollerRunStopsOnCancel(t *testing.T) {
	fs := newFeedServer(t)

	p := NewPoller(NewClient(fs.srv.URL), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}

func TestGroupByStatus(t *testing.T) {
	orders := sampleOrders(3)
	orders[1].Status = string(ds.StatusPreparing)

	grouped := GroupByStatus(orders)
	assert.Len(t, grouped[string(ds.StatusReceived)], 2)
	assert.Len(t, grouped[string(ds.StatusPreparing)], 1)
	assert.Equal(t, "a", grouped[string(ds.StatusReceived)][0].ID, "oldest first within a bucket")
}

func TestFingerprintDetectsContentChange(t *testing.T) {
	a := sampleOrders(2)
	b := sampleOrders(2)
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	b[1].Status = string(ds.StatusReady)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b), "same size, different content")
}
