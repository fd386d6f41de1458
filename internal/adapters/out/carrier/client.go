// Package carrier implements the CarrierAdapter port against the carrier's
// HTTP API. The client layers the outbound concerns the domain must not see:
// per-call timeouts, exponential-backoff retry for transient failures, and a
// circuit breaker that sheds load when the carrier is down.
//
// Error classification drives the retry decision. Transport failures and 5xx
// responses become NetworkError and are retried; 4xx responses mean the
// carrier understood and refused the request, become CarrierError with a
// structured code, and are never retried.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

const (
	defaultTimeout = 10 * time.Second

	// maxRetries bounds transient-failure retries per call; with the first
	// attempt a call hits the wire at most three times.
	maxRetries = 2

	initialRetryInterval = 200 * time.Millisecond
)

// Config holds carrier client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the carrier's HTTP API.
// Implements ports.CarrierAdapter.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a carrier API client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.NewValueIsRequiredError("carrier base URL")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("carrier base URL", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "carrier-api",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("carrier circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			// Carrier-side rejections are valid answers, not carrier outages.
			return err == nil || errors.Is(err, errs.ErrCarrierRejected)
		},
	})

	return &Client{
		httpClient: &http.Client{},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		breaker:    breaker,
		logger:     logger,
	}, nil
}

type createShipmentRequest struct {
	ShipmentID         string  `json:"shipmentId"`
	OrderID            string  `json:"orderId"`
	SellerID           string  `json:"sellerId"`
	Weight             float64 `json:"weight"`
	ServiceDescription string  `json:"serviceDescription"`
	ShipperAddress     string  `json:"shipperAddress"`
}

type createShipmentResponse struct {
	CarrierRef string `json:"carrierRef"`
}

type processShipmentResponse struct {
	TrackingNumber string `json:"trackingNumber"`
	LabelPayload   string `json:"labelPayload"`
}

type schedulePickupRequest struct {
	PickupDate string `json:"pickupDate"`
	ReadyTime  string `json:"readyTime"`
	CloseTime  string `json:"closeTime"`
}

type trackingResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateShipment registers a seller group with the carrier.
func (c *Client) CreateShipment(
	ctx context.Context,
	req ports.CreateShipmentRequest,
) (ports.ShipmentStub, error) {
	body := createShipmentRequest{
		ShipmentID:         req.ShipmentID.String(),
		OrderID:            req.OrderID.String(),
		SellerID:           req.SellerID.String(),
		Weight:             req.Weight,
		ServiceDescription: req.ServiceDescription,
		ShipperAddress:     req.ShipperAddress,
	}

	var resp createShipmentResponse
	if err := c.call(ctx, "create shipment", http.MethodPost, "/shipments", body, &resp); err != nil {
		return ports.ShipmentStub{}, err
	}

	return ports.ShipmentStub{ShipmentID: req.ShipmentID, CarrierRef: resp.CarrierRef}, nil
}

// ProcessShipment rates the shipment and purchases its label.
func (c *Client) ProcessShipment(ctx context.Context, shipmentID kernel.UUID) (ports.ProcessResult, error) {
	path := fmt.Sprintf("/shipments/%s/process", shipmentID.String())

	var resp processShipmentResponse
	if err := c.call(ctx, "process shipment", http.MethodPost, path, nil, &resp); err != nil {
		return ports.ProcessResult{}, err
	}

	return ports.ProcessResult{
		TrackingNumber: resp.TrackingNumber,
		LabelPayload:   resp.LabelPayload,
	}, nil
}

// SchedulePickup books a carrier pickup visit within the window.
func (c *Client) SchedulePickup(ctx context.Context, shipmentID kernel.UUID, window kernel.PickupWindow) error {
	path := fmt.Sprintf("/shipments/%s/pickup", shipmentID.String())
	body := schedulePickupRequest{
		PickupDate: window.DateString(),
		ReadyTime:  window.ReadyTime(),
		CloseTime:  window.CloseTime(),
	}

	return c.call(ctx, "schedule pickup", http.MethodPost, path, body, nil)
}

// CancelPickup cancels a previously booked pickup visit.
func (c *Client) CancelPickup(ctx context.Context, shipmentID kernel.UUID) error {
	path := fmt.Sprintf("/shipments/%s/pickup", shipmentID.String())
	return c.call(ctx, "cancel pickup", http.MethodDelete, path, nil, nil)
}

// VoidShipment voids the shipment with the carrier.
func (c *Client) VoidShipment(ctx context.Context, shipmentID kernel.UUID) error {
	path := fmt.Sprintf("/shipments/%s", shipmentID.String())
	return c.call(ctx, "void shipment", http.MethodDelete, path, nil, nil)
}

// TrackShipment returns the carrier's current status for the shipment,
// translated into the domain status vocabulary.
func (c *Client) TrackShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
	simulateStatus string,
) (ports.TrackingStatus, error) {
	path := fmt.Sprintf("/shipments/%s/tracking", shipmentID.String())
	if simulateStatus != "" {
		path += "?simulate=" + url.QueryEscape(simulateStatus)
	}

	var resp trackingResponse
	if err := c.call(ctx, "track shipment", http.MethodGet, path, nil, &resp); err != nil {
		return ports.TrackingStatus{}, err
	}

	status, err := shipment.StatusFromString(resp.Status)
	if err != nil {
		return ports.TrackingStatus{}, errs.NewNetworkError("track shipment", err)
	}

	return ports.TrackingStatus{Status: status, Description: resp.Description}, nil
}

// call performs one logical carrier API call: breaker, retry loop, request,
// response classification. out may be nil for calls without a response body.
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	operation := func() error {
		_, err := c.breaker.Execute(func() (any, error) {
			return nil, c.do(ctx, op, method, path, body, out)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return errs.NewNetworkError(op, err)
		}
		if err != nil && !errors.Is(err, errs.ErrNetwork) {
			// Carrier rejections and decode failures are terminal for the call.
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialRetryInterval

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx))
	if err != nil {
		c.logger.Warn("carrier call failed", "op", op, "error", err)
	}
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("carrier request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrier request", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewNetworkError(op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return errs.NewNetworkError(op, fmt.Errorf("carrier returned %d", resp.StatusCode))
	case resp.StatusCode >= http.StatusBadRequest:
		return c.rejectionError(resp)
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewNetworkError(op, fmt.Errorf("decoding carrier response: %w", err))
	}

	return nil
}

// rejectionError maps a carrier 4xx response to a CarrierError. An
// unparseable body still yields a structured rejection.
func (c *Client) rejectionError(resp *http.Response) error {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&payload); err != nil {
		return errs.NewCarrierError(errs.CarrierRejectedOther,
			fmt.Sprintf("carrier returned %d", resp.StatusCode))
	}

	code := errs.CarrierErrorCode(payload.Code)
	switch code {
	case errs.CarrierVoidWindowExpired, errs.CarrierAlreadyPickedUp, errs.CarrierAlreadyDelivered:
	default:
		code = errs.CarrierRejectedOther
	}

	return errs.NewCarrierError(code, payload.Message)
}
