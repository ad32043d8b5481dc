// Package livefeed implements the polling consumer used by the kitchen
// board and staff console: it periodically fetches the open-order set,
// detects changes by fingerprint comparison and raises a single alert per
// detected growth.
package livefeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"

	"github.com/sirupsen/logrus"
)

// Client fetches live orders from the ordering service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchLiveOrders returns the current open orders, oldest first.
func (c *Client) FetchLiveOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/orders/live", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live orders fetch: unexpected status %d", resp.StatusCode)
	}

	var orders []dto.OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AdvanceStatus asks the service to move an order to the next status via
// the generic transition endpoint.
func (c *Client) AdvanceStatus(ctx context.Context, orderID string, next ds.OrderStatus) error {
	body, err := json.Marshal(dto.UpdateOrderStatusRequest{Status: string(next)})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/orders/%s/status", c.BaseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status update: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Fingerprint canonically serializes a collection so that two polls can be
// compared for structural equality. It is a change detector, not a hash.
func Fingerprint(orders []dto.OrderResponse) string {
	data, err := json.Marshal(orders)
	if err != nil {
		return ""
	}
	return string(data)
}

// Poller runs the read-and-diff loop. OnUpdate fires whenever the displayed
// collection changes; OnAlert fires exactly once per poll in which the
// collection both changed and grew.
type Poller struct {
	Client   *Client
	Interval time.Duration
	OnUpdate func(orders []dto.OrderResponse)
	OnAlert  func()

	mu          sync.Mutex
	orders      []dto.OrderResponse
	fingerprint string
}

func NewPoller(client *Client, interval time.Duration) *Poller {
	return &Poller{
		Client:   client,
		Interval: interval,
	}
}

// Orders returns a copy of the currently displayed collection.
func (p *Poller) Orders() []dto.OrderResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]dto.OrderResponse, len(p.orders))
	copy(out, p.orders)
	return out
}

// Poll runs one fetch-and-diff cycle.
func (p *Poller) Poll(ctx context.Context) {
	orders, err := p.Client.FetchLiveOrders(ctx)
	if err != nil {
		logrus.Warn("live feed fetch failed: ", err)
		// Fail safe to empty: an obviously wrong display beats a stale one.
		// An empty slice keeps the fingerprint identical to a successful
		// empty fetch, so error-while-empty does not look like a change.
		p.apply([]dto.OrderResponse{}, false)
		return
	}

	p.mu.Lock()
	prevLen := len(p.orders)
	prevFingerprint := p.fingerprint
	p.mu.Unlock()

	fingerprint := Fingerprint(orders)
	if fingerprint == prevFingerprint {
		return
	}

	grew := len(orders) > prevLen
	p.applyWithFingerprint(orders, fingerprint, grew)
}

func (p *Poller) apply(orders []dto.OrderResponse, grew bool) {
	p.applyWithFingerprint(orders, Fingerprint(orders), grew)
}

func (p *Poller) applyWithFingerprint(orders []dto.OrderResponse, fingerprint string, grew bool) {
	p.mu.Lock()
	changed := fingerprint != p.fingerprint
	p.orders = orders
	p.fingerprint = fingerprint
	p.mu.Unlock()

	if !changed {
		return
	}
	if p.OnUpdate != nil {
		p.OnUpdate(orders)
	}
	if grew && p.OnAlert != nil {
		p.OnAlert()
	}
}

// AdvanceStatus optimistically updates the local copy before asking the
// server, so the board responds immediately. The next poll reconciles with
// the authoritative state either way.
func (p *Poller) AdvanceStatus(ctx context.Context, orderID string, next ds.OrderStatus) error {
	p.mu.Lock()
	updated := make([]dto.OrderResponse, 0, len(p.orders))
	for _, order := range p.orders {
		if order.ID == orderID {
			order.Status = string(next)
		}
		if isOpenStatus(order.Status) {
			updated = append(updated, order)
		}
	}
	p.orders = updated
	p.fingerprint = Fingerprint(updated)
	p.mu.Unlock()

	if p.OnUpdate != nil {
		p.OnUpdate(updated)
	}

	return p.Client.AdvanceStatus(ctx, orderID, next)
}

// Run polls on the configured interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.Poll(ctx)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

func isOpenStatus(status string) bool {
	for _, open := range ds.OpenStatuses {
		if status == string(open) {
			return true
		}
	}
	return false
}

// GroupByStatus buckets orders for the board columns, preserving the
// oldest-first order within each bucket.
func GroupByStatus(orders []dto.OrderResponse) map[string][]dto.OrderResponse {
	grouped := make(map[string][]dto.OrderResponse)
	for _, order := range orders {
		grouped[order.Status] = append(grouped[order.Status], order)
	}
	return grouped
}
