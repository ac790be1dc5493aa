package collection

import (
	"context"

	"go.uber.org/zap"

	"mtg-collector/feature/collection/models"
)

// Service exposes read-only collection queries to the HTTP surface.
type Service struct {
	store  CardStore
	logger *zap.Logger
}

// NewService creates a new collection service.
func NewService(store CardStore, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns every copy in the collection in id (insertion) order.
func (s *Service) List(ctx context.Context) ([]models.Card, error) {
	return s.store.List(ctx)
}
