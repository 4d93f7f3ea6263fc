package repository

import (
	"context"

	"go-product-catalog/internal/domain/entity"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindFiltered(ctx context.Context, filter entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error)
	UpdateByID(ctx context.Context, id uuid.UUID, fields entity.ProductFields) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}
