package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// ProductFields holds the editable attributes of a product. Updates always
// replace all of them.
type ProductFields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// Fields returns the editable attributes of the product.
func (p *Product) Fields() ProductFields {
	return ProductFields{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}

// ProductFilter is a domain-level filter for listing products.
type ProductFilter struct {
	Name string // substring of name, case-sensitive
}

// ProductPage is one page of a filtered product listing.
type ProductPage struct {
	Products []Product
	Page     int
	PerPage  int
	Total    int64
}

// LastPage returns the number of the last page, at least 1.
func (p ProductPage) LastPage() int {
	if p.PerPage < 1 || p.Total == 0 {
		return 1
	}
	last := int(p.Total) / p.PerPage
	if int(p.Total)%p.PerPage > 0 {
		last++
	}
	return last
}

// From returns the 1-based position of the first product on the page, or 0
// when the page is empty.
func (p ProductPage) From() int {
	if len(p.Products) == 0 {
		return 0
	}
	return (p.Page-1)*p.PerPage + 1
}

// To returns the 1-based position of the last product on the page, or 0
// when the page is empty.
func (p ProductPage) To() int {
	if len(p.Products) == 0 {
		return 0
	}
	return p.From() + len(p.Products) - 1
}
