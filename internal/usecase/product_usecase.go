package usecase

import (
	"context"
	"errors"

	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ProductsPerPage is the fixed page size of the catalog listing.
const ProductsPerPage = 10

var ErrProductNotFound = errors.New("product not found")

type ProductUsecase interface {
	List(ctx context.Context, search string, page int) (*entity.ProductPage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, fields entity.ProductFields) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, fields entity.ProductFields) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
}

func NewProductUsecase(log *logrus.Logger, productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		log:         log,
		productRepo: productRepo,
	}
}

func (u *productUsecase) List(ctx context.Context, search string, page int) (*entity.ProductPage, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * ProductsPerPage

	products, total, err := u.productRepo.FindFiltered(ctx, entity.ProductFilter{Name: search}, ProductsPerPage, offset)
	if err != nil {
		u.log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}

	return &entity.ProductPage{
		Products: products,
		Page:     page,
		PerPage:  ProductsPerPage,
		Total:    total,
	}, nil
}

func (u *productUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find product %s: %+v", id, err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (u *productUsecase) Create(ctx context.Context, fields entity.ProductFields) (*entity.Product, error) {
	product := &entity.Product{
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Quantity:    fields.Quantity,
	}

	if err := u.productRepo.Insert(ctx, product); err != nil {
		u.log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	u.log.WithField("product_id", product.ID).Info("Product created")
	return product, nil
}

func (u *productUsecase) Update(ctx context.Context, id uuid.UUID, fields entity.ProductFields) (*entity.Product, error) {
	affected, err := u.productRepo.UpdateByID(ctx, id, fields)
	if err != nil {
		u.log.Warnf("Failed to update product %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}

	u.log.WithField("product_id", id).Info("Product updated")
	return u.GetByID(ctx, id)
}

func (u *productUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.productRepo.DeleteByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete product %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	u.log.WithField("product_id", id).Info("Product deleted")
	return nil
}
