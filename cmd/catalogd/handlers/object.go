package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suis3/catalog/common/logger"
	"github.com/suis3/catalog/internal/catalog"
)

// ObjectHandler handles object lifecycle and tag operations within a bucket
type ObjectHandler struct {
	catalog *catalog.Catalog
	persist *Persister
	log     *logger.Logger
}

// NewObjectHandler creates a new object handler
func NewObjectHandler(cat *catalog.Catalog, persist *Persister, log *logger.Logger) *ObjectHandler {
	return &ObjectHandler{
		catalog: cat,
		persist: persist,
		log:     log,
	}
}

type createObjectRequest struct {
	Size      uint64   `json:"size"`
	ContentID string   `json:"content_id"`
	EpochTill uint64   `json:"epoch_till"`
	Tags      []string `json:"tags"`
}

// List lists all object records of a bucket in insertion order
// GET /api/v1/buckets/:bucket/objects
func (h *ObjectHandler) List(c echo.Context) error {
	bucket := c.Param("bucket")

	objects, err := h.catalog.ListBucketObjects(c.Request().Context(), bucket)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"objects": objects,
	})
}

// Create records object metadata; an existing record under the same name
// is replaced in full (idempotent upsert)
// PUT /api/v1/buckets/:bucket/objects/*
func (h *ObjectHandler) Create(c echo.Context) error {
	bucket := c.Param("bucket")
	object := c.Param("*")
	if object == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "object name is required")
	}

	var req createObjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ContentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content_id is required")
	}

	if err := h.catalog.CreateObject(bucket, object, req.Size, req.ContentID, req.EpochTill, req.Tags, nowMS()); err != nil {
		return httpError(err)
	}

	h.log.WithObject(bucket, object).Info("object recorded",
		"size", req.Size,
		"content_id", req.ContentID,
		"epoch_till", req.EpochTill,
	)
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusCreated)
}

// Get returns a copy of the object's record
// GET /api/v1/buckets/:bucket/objects/*
func (h *ObjectHandler) Get(c echo.Context) error {
	bucket := c.Param("bucket")
	object := c.Param("*")

	record, err := h.catalog.GetObject(c.Request().Context(), bucket, object)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, record)
}

// Delete removes the object's record
// DELETE /api/v1/buckets/:bucket/objects/*
func (h *ObjectHandler) Delete(c echo.Context) error {
	bucket := c.Param("bucket")
	object := c.Param("*")

	if err := h.catalog.DeleteObject(bucket, object); err != nil {
		return httpError(err)
	}

	h.log.WithObject(bucket, object).Info("object deleted")
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

// GetTags returns the object's tag sequence
// GET /api/v1/buckets/:bucket/object-tags/*
func (h *ObjectHandler) GetTags(c echo.Context) error {
	bucket := c.Param("bucket")
	object := c.Param("*")

	tags, err := h.catalog.GetObjectTags(c.Request().Context(), bucket, object)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"tags": tags,
	})
}

// SetTags replaces the object's entire tag sequence
// PUT /api/v1/buckets/:bucket/object-tags/*
func (h *ObjectHandler) SetTags(c echo.Context) error {
	bucket := c.Param("bucket")
	object := c.Param("*")

	var req tagsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.catalog.TagObject(bucket, object, req.Tags); err != nil {
		return httpError(err)
	}

	h.log.WithObject(bucket, object).Info("object tags replaced", "count", len(req.Tags))
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

// DeleteTags clears the object's tag sequence
// DELETE /api/v1/buckets/:bucket/object-tags/*
func (h *ObjectHandler) DeleteTags(c echo.Context) error {
	bucket := c.Param("bucket")
	object := c.Param("*")

	if err := h.catalog.DeleteObjectTags(bucket, object); err != nil {
		return httpError(err)
	}

	h.log.WithObject(bucket, object).Info("object tags cleared")
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}
