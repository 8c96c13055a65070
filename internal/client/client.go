// Package client implements the HTTP StatusProvider for the query service's
// job status endpoint, plus the client-side config file handling.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/querylab/queryjob/api/v1alpha1"
	"github.com/querylab/queryjob/internal/jobs"
	"github.com/querylab/queryjob/pkg/requestid"
)

var (
	// ErrJobNotFound is returned when the service does not know the job ID.
	ErrJobNotFound = errors.New("job not found")
)

var _ jobs.StatusProvider = (*Client)(nil)

// Client talks to the query service's job API.
type Client struct {
	server     string
	httpClient *http.Client
}

// NewFromConfig returns a new query service client from the given config.
func NewFromConfig(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		server:     strings.TrimSuffix(config.Service.Server, "/"),
		httpClient: NewHTTPClientFromConfig(config),
	}, nil
}

// NewFromConfigFile returns a new client using the config read from the given file.
func NewFromConfigFile(filename string) (*Client, error) {
	config, err := ParseConfigFile(filename)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(config)
}

// NewHTTPClientFromConfig returns a new HTTP Client from the given config.
func NewHTTPClientFromConfig(_ *Config) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// GetStatus fetches the current status of the given job. Transport and
// service failures are returned as-is; interpretation of the payload is the
// handle's job.
func (c *Client) GetStatus(ctx context.Context, jobID string) (*v1alpha1.StatusResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/jobs/%s/status", c.server, url.PathEscape(jobID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(middleware.RequestIDHeader, requestIDFor(ctx))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching status for job %q: %w", jobID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("job %q: %w", jobID, ErrJobNotFound)
	default:
		return nil, fmt.Errorf("fetching status for job %q failed: %s", jobID, resp.Status)
	}

	var status v1alpha1.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decoding status for job %q: %w", jobID, err)
	}
	return &status, nil
}

func requestIDFor(ctx context.Context) string {
	if id := requestid.FromContext(ctx); id != "" {
		return id
	}
	return requestid.Generate()
}
