package repository

import (
	"context"
	"errors"
	"strings"

	"go-product-catalog/internal/domain/entity"
	domainRepo "go-product-catalog/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Insert(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// FindFiltered returns products whose name contains filter.Name, newest
// first. Products created at the same instant are ordered by id descending.
func (r *productRepository) FindFiltered(ctx context.Context, filter entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+likeEscaper.Replace(filter.Name)+"%")
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) UpdateByID(ctx context.Context, id uuid.UUID, fields entity.ProductFields) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        fields.Name,
		"description": fields.Description,
		"price":       fields.Price,
		"quantity":    fields.Quantity,
	})
	return result.RowsAffected, result.Error
}

func (r *productRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Product{})
	return result.RowsAffected, result.Error
}
