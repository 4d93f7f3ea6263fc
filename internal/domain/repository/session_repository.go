package repository

import (
	"context"

	"go-product-catalog/internal/domain/entity"
)

// SessionRepository persists the catalog screen state of each browser session.
type SessionRepository interface {
	// Load returns nil, nil when the session has no stored state.
	Load(ctx context.Context, sessionID string) (*entity.CatalogScreen, error)
	Save(ctx context.Context, sessionID string, state *entity.CatalogScreen) error
	Delete(ctx context.Context, sessionID string) error
}
