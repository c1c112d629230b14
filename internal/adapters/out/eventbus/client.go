// Package eventbus implements the HTTP client for the shared event bus.
// The bus relays integration events between the services of the platform:
// this service subscribes to order events at startup and publishes its own
// lifecycle events to the same bus.
package eventbus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"deliveries/internal/core/ports"
	"deliveries/internal/metrics"

	"github.com/labstack/gommon/log"
)

const requestTimeout = 5 * time.Second

// Client talks to the event bus over HTTP. It implements
// ports.EventPublisher.
type Client struct {
	busURL  string
	client  *http.Client
	metrics *metrics.Metrics
}

// NewClient creates a bus client for the given base URL.
func NewClient(busURL string, m *metrics.Metrics) *Client {
	return &Client{
		busURL:  busURL,
		client:  &http.Client{Timeout: requestTimeout},
		metrics: m,
	}
}

type subscribeRequest struct {
	EventTypes []string `json:"eventTypes"`
	URL        string   `json:"URL"`
}

// Subscribe registers callbackURL with the bus for the given event types.
// It is synchronous: the service cannot serve its purpose without the
// subscription, so callers treat a failure here as fatal.
func (c *Client) Subscribe(ctx context.Context, eventTypes []string, callbackURL string) error {
	body, err := json.Marshal(subscribeRequest{
		EventTypes: eventTypes,
		URL:        callbackURL,
	})
	if err != nil {
		return fmt.Errorf("marshal subscribe request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.busURL+"/subscribe", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build subscribe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("subscribe to event bus: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("subscribe to event bus: unexpected status %s", resp.Status)
	}

	return nil
}

// Publish sends the event to the bus without blocking the caller. The POST
// runs on its own goroutine; failures are logged and counted, never
// propagated. Responses answered optimistically stay correct because the
// authoritative state was committed before Publish is called.
func (c *Client) Publish(event ports.IntegrationEvent) {
	go func() {
		if err := c.post(event); err != nil {
			log.Errorf("publish %s event: %v", event.Type, err)
			c.metrics.EventPublished("error")
			return
		}
		c.metrics.EventPublished("ok")
	}()
}

func (c *Client) post(event ports.IntegrationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	resp, err := c.client.Post(c.busURL+"/events", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return nil
}
