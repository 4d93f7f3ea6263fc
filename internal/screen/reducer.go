// Package screen holds the state transitions of the product catalog screen.
//
// Reduce never touches storage. Transitions that need a record loaded,
// inserted, updated or deleted return effects; the caller runs them and feeds
// the outcome back as ProductLoaded, ProductSaved or ProductDeleted.
package screen

import (
	"go-product-catalog/internal/domain/entity"
)

const (
	MessageCreated = "Product created successfully!"
	MessageUpdated = "Product updated successfully!"
	MessageDeleted = "Product deleted successfully!"
)

type Reducer struct {
	drafts *DraftValidator
}

func NewReducer(drafts *DraftValidator) *Reducer {
	return &Reducer{drafts: drafts}
}

// Reduce applies event to state and returns the next state together with the
// effects to run. The input state is not modified.
func (r *Reducer) Reduce(state *entity.CatalogScreen, event Event) (*entity.CatalogScreen, []Effect) {
	next := state.Clone()
	if next.Page < 1 {
		next.Page = 1
	}

	switch e := event.(type) {
	case SearchChanged:
		next.Search = e.Search
		next.Page = 1

	case PageChanged:
		next.Page = e.Page
		if next.Page < 1 {
			next.Page = 1
		}

	case CreateRequested:
		resetForm(next)
		next.ShowForm = true

	case EditRequested:
		return next, []Effect{LoadProduct{ID: e.ID}}

	case ProductLoaded:
		id := e.Product.ID
		next.Draft = entity.DraftFromProduct(e.Product)
		next.EditingID = &id
		next.Errors = nil
		next.ShowForm = true

	case CancelRequested:
		resetForm(next)
		next.ShowForm = false

	case SaveRequested:
		if !next.ShowForm {
			return next, nil
		}
		next.Draft = r.drafts.Normalize(e.Draft)
		fields, errs := r.drafts.Validate(next.Draft)
		if len(errs) > 0 {
			next.Errors = errs
			return next, nil
		}
		next.Errors = nil
		if next.EditingID != nil {
			return next, []Effect{UpdateProduct{ID: *next.EditingID, Fields: fields}}
		}
		return next, []Effect{CreateProduct{Fields: fields}}

	case ProductSaved:
		next.Flash = MessageUpdated
		if e.Created {
			next.Flash = MessageCreated
		}
		resetForm(next)
		next.ShowForm = false
		next.Page = 1

	case DeleteRequested:
		if !e.Confirmed {
			return next, nil
		}
		return next, []Effect{DeleteProduct{ID: e.ID}}

	case ProductDeleted:
		next.Flash = MessageDeleted

	case FlashShown:
		next.Flash = ""
	}

	return next, nil
}

func resetForm(s *entity.CatalogScreen) {
	s.Draft = entity.ProductDraft{}
	s.EditingID = nil
	s.Errors = nil
}
