package entity

import (
	"strconv"

	"github.com/google/uuid"
)

// ProductDraft holds the unsaved form values exactly as the user typed them.
type ProductDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
}

// DraftFromProduct copies the editable fields of a stored product into a draft.
func DraftFromProduct(p *Product) ProductDraft {
	return ProductDraft{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Quantity:    strconv.Itoa(p.Quantity),
	}
}

// CatalogScreen is the per-session state of the product catalog screen.
type CatalogScreen struct {
	Search    string            `json:"search"`
	Page      int               `json:"page"`
	ShowForm  bool              `json:"show_form"`
	EditingID *uuid.UUID        `json:"editing_id,omitempty"`
	Draft     ProductDraft      `json:"draft"`
	Errors    map[string]string `json:"errors,omitempty"`
	Flash     string            `json:"flash,omitempty"`
}

// NewCatalogScreen returns the initial screen state: first page, form closed.
func NewCatalogScreen() *CatalogScreen {
	return &CatalogScreen{Page: 1}
}

// FormMode reports which state the form is in.
func (s *CatalogScreen) FormMode() FormMode {
	switch {
	case !s.ShowForm:
		return FormClosed
	case s.EditingID == nil:
		return FormCreating
	default:
		return FormEditing
	}
}

// Clone returns a deep copy of the state.
func (s *CatalogScreen) Clone() *CatalogScreen {
	out := *s
	if s.EditingID != nil {
		id := *s.EditingID
		out.EditingID = &id
	}
	if s.Errors != nil {
		out.Errors = make(map[string]string, len(s.Errors))
		for k, v := range s.Errors {
			out.Errors[k] = v
		}
	}
	return &out
}

type FormMode int

const (
	FormClosed FormMode = iota
	FormCreating
	FormEditing
)

func (m FormMode) String() string {
	switch m {
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	default:
		return "closed"
	}
}
