package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suis3/catalog/common/logger"
	"github.com/suis3/catalog/internal/catalog"
)

// BucketHandler handles bucket lifecycle and tag operations
type BucketHandler struct {
	catalog *catalog.Catalog
	persist *Persister
	log     *logger.Logger
}

// NewBucketHandler creates a new bucket handler
func NewBucketHandler(cat *catalog.Catalog, persist *Persister, log *logger.Logger) *BucketHandler {
	return &BucketHandler{
		catalog: cat,
		persist: persist,
		log:     log,
	}
}

type createBucketRequest struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

type tagsRequest struct {
	Tags []string `json:"tags"`
}

// List lists all buckets in insertion order
// GET /api/v1/buckets
func (h *BucketHandler) List(c echo.Context) error {
	buckets := h.catalog.ListBuckets(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]any{
		"buckets": buckets,
	})
}

// Create registers a new bucket
// POST /api/v1/buckets
func (h *BucketHandler) Create(c echo.Context) error {
	var req createBucketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bucket name is required")
	}

	if err := h.catalog.CreateBucket(req.Name, req.Tags, nowMS()); err != nil {
		return httpError(err)
	}

	h.log.WithBucket(req.Name).Info("bucket created")
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusCreated)
}

// Delete removes a bucket and all of its object records
// DELETE /api/v1/buckets/:bucket
func (h *BucketHandler) Delete(c echo.Context) error {
	name := c.Param("bucket")

	if err := h.catalog.DeleteBucket(name); err != nil {
		return httpError(err)
	}

	h.log.WithBucket(name).Info("bucket deleted")
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

// GetTags returns the bucket's tag sequence
// GET /api/v1/buckets/:bucket/tags
func (h *BucketHandler) GetTags(c echo.Context) error {
	name := c.Param("bucket")

	tags, err := h.catalog.GetBucketTags(c.Request().Context(), name)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"tags": tags,
	})
}

// SetTags replaces the bucket's entire tag sequence
// PUT /api/v1/buckets/:bucket/tags
func (h *BucketHandler) SetTags(c echo.Context) error {
	name := c.Param("bucket")

	var req tagsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.catalog.TagBucket(name, req.Tags); err != nil {
		return httpError(err)
	}

	h.log.WithBucket(name).Info("bucket tags replaced", "count", len(req.Tags))
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

// DeleteTags clears the bucket's tag sequence
// DELETE /api/v1/buckets/:bucket/tags
func (h *BucketHandler) DeleteTags(c echo.Context) error {
	name := c.Param("bucket")

	if err := h.catalog.DeleteBucketTags(name); err != nil {
		return httpError(err)
	}

	h.log.WithBucket(name).Info("bucket tags cleared")
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}
