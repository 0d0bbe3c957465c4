package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suis3/catalog/common/logger"
	"github.com/suis3/catalog/internal/catalog"
)

// EpochHandler records the storage epoch reported by the external store
type EpochHandler struct {
	catalog *catalog.Catalog
	persist *Persister
	log     *logger.Logger
}

// NewEpochHandler creates a new epoch handler
func NewEpochHandler(cat *catalog.Catalog, persist *Persister, log *logger.Logger) *EpochHandler {
	return &EpochHandler{
		catalog: cat,
		persist: persist,
		log:     log,
	}
}

type setEpochRequest struct {
	Epoch uint64 `json:"epoch"`
}

// SetEpoch overwrites the recorded storage epoch
// PUT /api/v1/epoch
func (h *EpochHandler) SetEpoch(c echo.Context) error {
	var req setEpochRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	h.catalog.SetEpoch(req.Epoch)
	h.log.Info("epoch updated", "epoch", req.Epoch)
	h.persist.AfterMutation(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

// GetEpoch returns the last recorded storage epoch
// GET /api/v1/epoch
func (h *EpochHandler) GetEpoch(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]uint64{
		"epoch": h.catalog.Epoch(),
	})
}
