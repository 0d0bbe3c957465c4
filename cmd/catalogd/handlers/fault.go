package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/suis3/catalog/internal/catalog"
)

// httpError maps catalog faults onto HTTP status codes. Faults are
// caller-caused and terminal, so nothing maps to a retryable 5xx except
// genuinely unexpected errors.
func httpError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNoSuchBucket), errors.Is(err, catalog.ErrNoSuchObject):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrBucketAlreadyExists), errors.Is(err, catalog.ErrObjectAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// nowMS is the wall-clock source handed to catalog mutations.
func nowMS() uint64 {
	return uint64(time.Now().UnixMilli())
}
