package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/suis3/catalog/cmd/catalogd/handlers"
	"github.com/suis3/catalog/common/logger"
	"github.com/suis3/catalog/internal/catalog"
	"github.com/suis3/catalog/internal/store"
)

// Register wires all catalog routes onto the echo instance
func Register(e *echo.Echo, cat *catalog.Catalog, st store.Store, log *logger.Logger) {
	persist := handlers.NewPersister(cat, st, log)

	epochHandler := handlers.NewEpochHandler(cat, persist, log)
	bucketHandler := handlers.NewBucketHandler(cat, persist, log)
	objectHandler := handlers.NewObjectHandler(cat, persist, log)

	api := e.Group("/api/v1")
	{
		api.PUT("/epoch", epochHandler.SetEpoch)
		api.GET("/epoch", epochHandler.GetEpoch)

		api.GET("/buckets", bucketHandler.List)
		api.POST("/buckets", bucketHandler.Create)
		api.DELETE("/buckets/:bucket", bucketHandler.Delete)

		api.GET("/buckets/:bucket/tags", bucketHandler.GetTags)
		api.PUT("/buckets/:bucket/tags", bucketHandler.SetTags)
		api.DELETE("/buckets/:bucket/tags", bucketHandler.DeleteTags)

		api.GET("/buckets/:bucket/objects", objectHandler.List)
		api.PUT("/buckets/:bucket/objects/*", objectHandler.Create)
		api.GET("/buckets/:bucket/objects/*", objectHandler.Get)
		api.DELETE("/buckets/:bucket/objects/*", objectHandler.Delete)

		api.GET("/buckets/:bucket/object-tags/*", objectHandler.GetTags)
		api.PUT("/buckets/:bucket/object-tags/*", objectHandler.SetTags)
		api.DELETE("/buckets/:bucket/object-tags/*", objectHandler.DeleteTags)
	}
}
