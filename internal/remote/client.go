package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"asset-registry/internal/models"
)

// RemoteError is any non-success response from the registry API.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote api: status %d: %s", e.Status, e.Message)
}

// Client talks to the remote asset registry. It does not retry; failures are
// surfaced to the caller as-is.
type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// BaseURL returns the configured API base, used to resolve stored file paths
// into displayable URLs.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) List(ctx context.Context) ([]models.Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/assets", nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}

	var assets []models.Asset
	if err := c.do(req, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (c *Client) Create(ctx context.Context, p *Payload) (*models.Asset, error) {
	return c.send(ctx, http.MethodPost, c.base+"/assets", p)
}

func (c *Client) Update(ctx context.Context, id string, p *Payload) (*models.Asset, error) {
	return c.send(ctx, http.MethodPut, c.base+"/assets/"+id, p)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+"/assets/"+id, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	return c.do(req, nil)
}

func (c *Client) send(ctx context.Context, method, url string, p *Payload) (*models.Asset, error) {
	var body bytes.Buffer
	contentType, err := p.Encode(&body)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", contentType)

	var asset models.Asset
	if err := c.do(req, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// do executes the request, maps non-2xx responses to RemoteError and decodes
// a JSON body into out when out is non-nil.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	const maxLen = 512
	b, err := io.ReadAll(io.LimitReader(r, maxLen))
	if err != nil || len(bytes.TrimSpace(b)) == 0 {
		return "request failed"
	}
	return string(bytes.TrimSpace(b))
}
