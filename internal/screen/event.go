package screen

import (
	"go-product-catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// Event is a user interaction with the catalog screen, or the result of an
// effect fed back into the screen.
type Event interface {
	eventName() string
}

// EventName returns a short stable name for the event, used in logs and metrics.
func EventName(e Event) string {
	return e.eventName()
}

type SearchChanged struct {
	Search string
}

type PageChanged struct {
	Page int
}

type CreateRequested struct{}

type EditRequested struct {
	ID uuid.UUID
}

type CancelRequested struct{}

type SaveRequested struct {
	Draft entity.ProductDraft
}

// DeleteRequested is ignored unless the user confirmed the prompt.
type DeleteRequested struct {
	ID        uuid.UUID
	Confirmed bool
}

// FlashShown clears the flash message once it has been rendered.
type FlashShown struct{}

type ProductLoaded struct {
	Product *entity.Product
}

type ProductSaved struct {
	Created bool
}

type ProductDeleted struct{}

func (SearchChanged) eventName() string   { return "search" }
func (PageChanged) eventName() string     { return "page" }
func (CreateRequested) eventName() string { return "create" }
func (EditRequested) eventName() string   { return "edit" }
func (CancelRequested) eventName() string { return "cancel" }
func (SaveRequested) eventName() string   { return "save" }
func (DeleteRequested) eventName() string { return "delete" }
func (FlashShown) eventName() string      { return "flash_shown" }
func (ProductLoaded) eventName() string   { return "product_loaded" }
func (ProductSaved) eventName() string    { return "product_saved" }
func (ProductDeleted) eventName() string  { return "product_deleted" }

// Effect is a storage operation requested by a transition.
type Effect interface {
	effectName() string
}

type LoadProduct struct {
	ID uuid.UUID
}

type CreateProduct struct {
	Fields entity.ProductFields
}

type UpdateProduct struct {
	ID     uuid.UUID
	Fields entity.ProductFields
}

type DeleteProduct struct {
	ID uuid.UUID
}

func (LoadProduct) effectName() string   { return "load" }
func (CreateProduct) effectName() string { return "create" }
func (UpdateProduct) effectName() string { return "update" }
func (DeleteProduct) effectName() string { return "delete" }
