package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// WithLinearRetries enables retries for idempotent GET requests only.
//
// A GET is retried up to retryCount times when the transport fails or the
// server answers with a 5xx status. Attempt n waits n*waitUnit, so with the
// defaults (3, 1s) the waits are 1s, 2s and 3s.
func (c *HTTPClient) WithLinearRetries(retryCount int, waitUnit time.Duration) *HTTPClient {
	if retryCount <= 0 {
		return c
	}

	c.SetRetryCount(retryCount).
		SetRetryWaitTime(waitUnit).
		SetRetryMaxWaitTime(time.Duration(retryCount) * waitUnit).
		SetRetryAfter(func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
			if resp == nil || resp.Request == nil {
				return waitUnit, nil
			}
			return time.Duration(resp.Request.Attempt) * waitUnit, nil
		}).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	return c
}
