package inventory

import (
	"time"

	"shortage-tracker/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Inventory feature. client may be nil when no
// object storage is configured, auth may be nil to disable role gating.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger, snapshotTTL time.Duration, auth Authorizer) *Feature {
	svc := NewService(NewStore(db), client, bucket, logger, snapshotTTL)
	h := NewHandler(svc, auth)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service for CLI commands.
func (f *Feature) Service() *Service {
	return f.service
}
