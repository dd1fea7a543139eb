package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatusError carries a non-2xx status from the remote API. Callers
// treat "not found" the same as any other remote fault.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Client wraps access to the remote user-management REST service.
// Every call and response is logged, every failure raises a toast and
// the error is returned for the caller to handle.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	notify  notify.Notifier
}

func NewClient(config utils.APIConfig, log *zap.Logger, notifier notify.Notifier) *Client {
	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		// Timeout zero keeps in-flight requests waiting indefinitely
		http:   &http.Client{Timeout: config.Timeout},
		log:    log,
		notify: notifier,
	}
}

// Call issues one JSON request. Absolute endpoints are used as-is,
// anything else is appended to the base URL. A non-nil out receives the
// decoded response body.
func (c *Client) Call(ctx context.Context, method, endpoint string, body, out any) error {
	url := endpoint
	if !strings.HasPrefix(endpoint, "http") {
		url = c.baseURL + endpoint
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, url, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.log.Debug("API call",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("request_id", requestID),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("API error",
			zap.Error(err),
			zap.String("method", method),
			zap.String("url", url),
			zap.String("request_id", requestID),
		)
		c.notify.Error(fmt.Sprintf("API Error: %v", err))
		return fmt.Errorf("call %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		c.log.Error("API error",
			zap.Int("status", resp.StatusCode),
			zap.String("method", method),
			zap.String("url", url),
			zap.String("request_id", requestID),
		)
		c.notify.Error(fmt.Sprintf("API Error: %v", statusErr))
		return statusErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Error("API error",
				zap.Error(err),
				zap.String("method", method),
				zap.String("url", url),
				zap.String("request_id", requestID),
			)
			c.notify.Error(fmt.Sprintf("API Error: %v", err))
			return fmt.Errorf("decode response %s %s: %w", method, url, err)
		}
	}

	c.log.Debug("API response",
		zap.Int("status", resp.StatusCode),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("request_id", requestID),
	)

	return nil
}
