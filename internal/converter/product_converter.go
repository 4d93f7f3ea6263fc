package converter

import (
	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
)

// ProductToResponse converts a Product entity to ProductResponse DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductsToResponses converts a slice of Product entities to slice of ProductResponse DTOs
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i := range products {
		responses[i] = *ProductToResponse(&products[i])
	}
	return responses
}

// ProductRequestToDraft converts an API request body into a draft so it goes
// through the same validation as the catalog form.
func ProductRequestToDraft(req *dto.ProductRequest) entity.ProductDraft {
	return entity.ProductDraft{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.String(),
		Quantity:    req.Quantity.String(),
	}
}
