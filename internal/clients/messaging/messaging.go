package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/whatsapp-relay/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

// maxErrorBodySize bounds how much of an invalid response body is kept in the error.
const maxErrorBodySize = 1024

// Client for the local messaging service.
type Client struct {
	sendMessageURL string
	newTransport   func() *http.Transport
}

// New creates a new Client that posts to sendMessageURL.
func New(sendMessageURL string) (*Client, error) {
	parsedURL, err := url.ParseRequestURI(sendMessageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse messaging service URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("messaging service URL must be http or https, got %q", parsedURL.Scheme)
	}
	return &Client{
		sendMessageURL: parsedURL.String(),
		newTransport:   defaultTransport,
	}, nil
}

func defaultTransport() *http.Transport {
	if transport, ok := http.DefaultTransport.(*http.Transport); ok {
		return transport.Clone()
	}
	return &http.Transport{}
}

// SendMessage posts req to the messaging service once and returns its reply unmodified.
// Every call uses its own transport, which is torn down before returning.
// Non-2xx replies are returned as a Response, not an error.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send message request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sendMessageURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create send message request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	transport := c.newTransport()
	defer transport.CloseIdleConnections()
	httpClient := &http.Client{Transport: transport}

	start := time.Now()
	resp, err := httpClient.Do(httpReq)
	metrics.OutboundRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.OutboundRequestsTotal.WithLabelValues(metrics.ResultUnreachable).Inc()
		return nil, richerrors.Error{
			ExternalMsg: "Failed to reach messaging service",
			Err:         fmt.Errorf("failed to POST to messaging service: %w", err),
			Code:        fiber.StatusBadGateway,
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.OutboundRequestsTotal.WithLabelValues(metrics.ResultInvalidResponse).Inc()
		return nil, richerrors.Error{
			ExternalMsg: "Failed to read messaging service response",
			Err:         fmt.Errorf("failed to read messaging service response: %w", err),
			Code:        fiber.StatusBadGateway,
		}
	}
	if !json.Valid(respBody) {
		metrics.OutboundRequestsTotal.WithLabelValues(metrics.ResultInvalidResponse).Inc()
		return nil, richerrors.Error{
			ExternalMsg: "Messaging service returned an invalid response",
			Err:         fmt.Errorf("messaging service returned non-JSON body with status %d: %s", resp.StatusCode, truncate(respBody)),
			Code:        fiber.StatusBadGateway,
		}
	}

	result := metrics.ResultSuccess
	if resp.StatusCode >= http.StatusBadRequest {
		result = metrics.ResultDownstreamStatus
	}
	metrics.OutboundRequestsTotal.WithLabelValues(result).Inc()

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       json.RawMessage(respBody),
	}, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodySize {
		body = body[:maxErrorBodySize]
	}
	return string(body)
}

