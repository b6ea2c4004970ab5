// Package optimizer contains the HTTP client for the external allocation
// service, which suggests per-goal monthly contributions for a household's
// education and marriage plans.
package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// EducationPlan is the wire form of one education goal.
type EducationPlan struct {
	ID                 string  `json:"id"`
	EstimatedTotalCost float64 `json:"estimated_total_cost"`
	CurrentSavings     float64 `json:"current_savings"`
	EstimatedStartYear int     `json:"estimated_start_year"`
	EstimatedEndYear   int     `json:"estimated_end_year"`
	InflationRate      float64 `json:"inflation_rate"`
	MonthsLeft         int     `json:"monthsLeft"`
}

// MarriagePlan is the wire form of one marriage goal.
type MarriagePlan struct {
	ID                 string  `json:"id"`
	EstimatedTotalCost float64 `json:"estimated_total_cost"`
	CurrentSavings     float64 `json:"current_savings"`
	EstimatedYear      int     `json:"estimated_year"`
	InflationRate      float64 `json:"inflation_rate"`
	MonthsLeft         int     `json:"monthsLeft"`
}

// Request is the JSON body sent to POST /allocate.
type Request struct {
	TotalMonthlySavings float64         `json:"totalMonthlySavings"`
	EducationPlans      []EducationPlan `json:"educationPlans"`
	MarriagePlans       []MarriagePlan  `json:"marriagePlans"`
}

// GoalCount returns the number of plans in the request.
func (r Request) GoalCount() int {
	return len(r.EducationPlans) + len(r.MarriagePlans)
}

// response is the JSON body returned by the service. Keys in Allocations
// are "education_<id>" or "marriage_<id>".
type response struct {
	Allocations map[string]float64 `json:"allocations"`
}

// Client provides access to the external allocation service.
type Client interface {
	// Allocate posts the household's plans and returns the suggested
	// contribution per prefixed goal key.
	Allocate(ctx context.Context, req Request) (map[string]float64, error)

	// Available checks whether the allocation service is reachable.
	Available(ctx context.Context) bool
}

// httpClient implements Client against the service's HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that talks to the allocation service.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Allocate(ctx context.Context, req Request) (map[string]float64, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		allocations, err := c.doRequest(ctx, req)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				GoalCount: req.GoalCount(),
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return allocations, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or a payload the
		// service answered but we could not use.
		if ctx.Err() != nil || errors.Is(err, ErrInvalidResponse) {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		GoalCount: req.GoalCount(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(ctx, lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if errors.Is(lastErr, ErrInvalidResponse) {
		return nil, lastErr
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *httpClient) doRequest(ctx context.Context, req Request) (map[string]float64, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/allocate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, fmt.Errorf("allocation service returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if resp.Allocations == nil {
		return nil, fmt.Errorf("%w: missing allocations", ErrInvalidResponse)
	}

	return resp.Allocations, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.Endpoint + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "TIMEOUT"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	case isConnectionError(err):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
