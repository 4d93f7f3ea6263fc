package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type ListProductsQuery struct {
	Search string `query:"search" validate:"max=255"`
	Page   int    `query:"page" validate:"gte=0"`
}

// ProductRequest is the body of create and update calls. Price and quantity
// accept JSON numbers or numeric strings; they are validated with the same
// rules as the catalog form.
type ProductRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Quantity    json.Number `json:"quantity"`
}

// Response DTOs

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
