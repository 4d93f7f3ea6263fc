package dto

// CatalogScreenView is everything the catalog template renders.
type CatalogScreenView struct {
	Search     string
	Flash      string
	Error      string
	Form       *ProductFormView
	Rows       []ProductRowView
	Pagination PaginationView
}

type ProductFormView struct {
	Title       string
	SubmitLabel string
	Name        string
	Description string
	Price       string
	Quantity    string
	Errors      map[string]string
}

type ProductRowView struct {
	ID          string
	Name        string
	Description string
	Price       string
	Quantity    int
}

// PaginationView drives the pager; HasPages is false when everything fits on one page.
type PaginationView struct {
	HasPages    bool
	Page        int
	LastPage    int
	From        int
	To          int
	Total       int64
	HasPrevious bool
	HasNext     bool
	PreviousURL string
	NextURL     string
	Pages       []PageLinkView
}

type PageLinkView struct {
	Number  int
	URL     string
	Current bool
}
