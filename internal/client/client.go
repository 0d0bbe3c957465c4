// Package client is the HTTP client for the catalogd API, used by the
// suis3 command-line tool.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/suis3/catalog/internal/catalog"
)

// Client talks to a catalogd instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL (e.g. http://localhost:8080).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// APIError is a non-2xx response from catalogd.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalogd: %s (HTTP %d)", e.Message, e.StatusCode)
}

// SetEpoch records the storage epoch on the catalog.
func (c *Client) SetEpoch(ctx context.Context, epoch uint64) error {
	return c.do(ctx, http.MethodPut, "/api/v1/epoch", map[string]uint64{"epoch": epoch}, nil)
}

// ListBuckets returns all buckets in insertion order.
func (c *Client) ListBuckets(ctx context.Context) ([]catalog.BucketInfo, error) {
	var resp struct {
		Buckets []catalog.BucketInfo `json:"buckets"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/buckets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Buckets, nil
}

// CreateBucket registers a new bucket.
func (c *Client) CreateBucket(ctx context.Context, name string, tags []string) error {
	body := map[string]any{"name": name, "tags": tags}
	return c.do(ctx, http.MethodPost, "/api/v1/buckets", body, nil)
}

// DeleteBucket removes a bucket and all of its object records.
func (c *Client) DeleteBucket(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/buckets/"+url.PathEscape(name), nil, nil)
}

// GetBucketTags returns the bucket's tag sequence.
func (c *Client) GetBucketTags(ctx context.Context, name string) ([]string, error) {
	var resp struct {
		Tags []string `json:"tags"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/buckets/"+url.PathEscape(name)+"/tags", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

// TagBucket replaces the bucket's entire tag sequence.
func (c *Client) TagBucket(ctx context.Context, name string, tags []string) error {
	return c.do(ctx, http.MethodPut, "/api/v1/buckets/"+url.PathEscape(name)+"/tags", map[string]any{"tags": tags}, nil)
}

// DeleteBucketTags clears the bucket's tag sequence.
func (c *Client) DeleteBucketTags(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/buckets/"+url.PathEscape(name)+"/tags", nil, nil)
}

// ListBucketObjects returns all object records of a bucket in insertion order.
func (c *Client) ListBucketObjects(ctx context.Context, bucket string) ([]catalog.ObjectInfo, error) {
	var resp struct {
		Objects []catalog.ObjectInfo `json:"objects"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/buckets/"+url.PathEscape(bucket)+"/objects", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Objects, nil
}

// CreateObject records metadata for already-stored content. Overwrites an
// existing record under the same name (upsert).
func (c *Client) CreateObject(ctx context.Context, bucket, object string, size uint64, contentID string, epochTill uint64, tags []string) error {
	body := map[string]any{
		"size":       size,
		"content_id": contentID,
		"epoch_till": epochTill,
		"tags":       tags,
	}
	return c.do(ctx, http.MethodPut, objectPath(bucket, "objects", object), body, nil)
}

// GetObject returns the object's record.
func (c *Client) GetObject(ctx context.Context, bucket, object string) (*catalog.BlobRecord, error) {
	var record catalog.BlobRecord
	if err := c.do(ctx, http.MethodGet, objectPath(bucket, "objects", object), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteObject removes the object's record.
func (c *Client) DeleteObject(ctx context.Context, bucket, object string) error {
	return c.do(ctx, http.MethodDelete, objectPath(bucket, "objects", object), nil, nil)
}

// GetObjectTags returns the object's tag sequence.
func (c *Client) GetObjectTags(ctx context.Context, bucket, object string) ([]string, error) {
	var resp struct {
		Tags []string `json:"tags"`
	}
	if err := c.do(ctx, http.MethodGet, objectPath(bucket, "object-tags", object), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

// TagObject replaces the object's entire tag sequence.
func (c *Client) TagObject(ctx context.Context, bucket, object string, tags []string) error {
	return c.do(ctx, http.MethodPut, objectPath(bucket, "object-tags", object), map[string]any{"tags": tags}, nil)
}

// DeleteObjectTags clears the object's tag sequence.
func (c *Client) DeleteObjectTags(ctx context.Context, bucket, object string) error {
	return c.do(ctx, http.MethodDelete, objectPath(bucket, "object-tags", object), nil, nil)
}

func objectPath(bucket, resource, object string) string {
	// The object segment stays unescaped: slashes inside object names are
	// matched by the server's wildcard route.
	return fmt.Sprintf("/api/v1/buckets/%s/%s/%s", url.PathEscape(bucket), resource, object)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeErrorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Message == "" {
		return "request failed"
	}
	return payload.Message
}
