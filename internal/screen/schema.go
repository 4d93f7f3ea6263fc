package screen

import (
	"strconv"
	"strings"

	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/pkg/validator"

	"github.com/shopspring/decimal"
)

const (
	// Largest values the products table columns can hold.
	MaxNameLength = 255
	MaxPrice      = "99999999.99"
	MaxQuantity   = "2147483647"

	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"
)

// ProductSchema is the validation applied to a product draft before it is saved.
var ProductSchema = validator.Schema{
	{Name: FieldName, Rules: []validator.Rule{
		{Tag: "required", Message: "The name field is required."},
		{Tag: "min=3", Message: "The name field must be at least 3 characters."},
		{Tag: "max=" + strconv.Itoa(MaxNameLength), Message: "The name field must not be greater than " + strconv.Itoa(MaxNameLength) + " characters."},
	}},
	{Name: FieldDescription},
	{Name: FieldPrice, Rules: []validator.Rule{
		{Tag: "required", Message: "The price field is required."},
		{Tag: "numeric_value", Message: "The price field must be a number."},
		{Tag: "min_value=0", Message: "The price field must be at least 0."},
		{Tag: "max_value=" + MaxPrice, Message: "The price field must not be greater than " + MaxPrice + "."},
	}},
	{Name: FieldQuantity, Rules: []validator.Rule{
		{Tag: "required", Message: "The quantity field is required."},
		{Tag: "integer", Message: "The quantity field must be an integer."},
		{Tag: "min_value=0", Message: "The quantity field must be at least 0."},
		{Tag: "max_value=" + MaxQuantity, Message: "The quantity field must not be greater than " + MaxQuantity + "."},
	}},
}

// DraftValidator normalizes and validates product drafts.
type DraftValidator struct {
	validator *validator.CustomValidator
}

func NewDraftValidator(v *validator.CustomValidator) *DraftValidator {
	return &DraftValidator{validator: v}
}

// Normalize trims surrounding whitespace from every draft field. The text
// itself is kept as typed; the templates escape it on output.
func (dv *DraftValidator) Normalize(d entity.ProductDraft) entity.ProductDraft {
	return entity.ProductDraft{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Price:       strings.TrimSpace(d.Price),
		Quantity:    strings.TrimSpace(d.Quantity),
	}
}

// Validate checks a normalized draft. On success it returns the parsed product
// fields and a nil error map.
func (dv *DraftValidator) Validate(d entity.ProductDraft) (entity.ProductFields, map[string]string) {
	errs := dv.validator.ValidateSchema(ProductSchema, map[string]string{
		FieldName:        d.Name,
		FieldDescription: d.Description,
		FieldPrice:       d.Price,
		FieldQuantity:    d.Quantity,
	})
	if len(errs) > 0 {
		return entity.ProductFields{}, errs
	}

	// Both parse calls are guaranteed to succeed by the schema.
	price, _ := decimal.NewFromString(d.Price)
	quantity, _ := strconv.Atoi(d.Quantity)

	return entity.ProductFields{
		Name:        d.Name,
		Description: d.Description,
		Price:       price.Round(2),
		Quantity:    quantity,
	}, nil
}
