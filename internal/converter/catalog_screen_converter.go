package converter

import (
	"fmt"
	"strings"
	"unicode"

	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const (
	descriptionLimit = 50
	paginationWindow = 3
)

// CatalogScreenToView builds the template view of the screen state and the
// product page it shows. errMsg is rendered as an error banner when set.
func CatalogScreenToView(state *entity.CatalogScreen, page *entity.ProductPage, errMsg string) *dto.CatalogScreenView {
	view := &dto.CatalogScreenView{
		Search: state.Search,
		Flash:  state.Flash,
		Error:  errMsg,
	}

	if state.ShowForm {
		form := &dto.ProductFormView{
			Title:       "Add New Product",
			SubmitLabel: "Save",
			Name:        state.Draft.Name,
			Description: state.Draft.Description,
			Price:       state.Draft.Price,
			Quantity:    state.Draft.Quantity,
			Errors:      state.Errors,
		}
		if state.EditingID != nil {
			form.Title = "Edit Product"
			form.SubmitLabel = "Update"
		}
		view.Form = form
	}

	if page == nil {
		return view
	}

	view.Rows = make([]dto.ProductRowView, len(page.Products))
	for i, p := range page.Products {
		view.Rows[i] = dto.ProductRowView{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: Truncate(p.Description, descriptionLimit),
			Price:       FormatCurrency(p.Price),
			Quantity:    p.Quantity,
		}
	}
	view.Pagination = paginationView(page)

	return view
}

func paginationView(page *entity.ProductPage) dto.PaginationView {
	last := page.LastPage()
	view := dto.PaginationView{
		HasPages:    last > 1,
		Page:        page.Page,
		LastPage:    last,
		From:        page.From(),
		To:          page.To(),
		Total:       page.Total,
		HasPrevious: page.Page > 1,
		HasNext:     page.Page < last,
	}
	if view.HasPrevious {
		view.PreviousURL = pageURL(page.Page - 1)
	}
	if view.HasNext {
		view.NextURL = pageURL(page.Page + 1)
	}

	start := page.Page - paginationWindow
	if start < 1 {
		start = 1
	}
	end := page.Page + paginationWindow
	if end > last {
		end = last
	}
	for n := start; n <= end; n++ {
		view.Pages = append(view.Pages, dto.PageLinkView{Number: n, URL: pageURL(n), Current: n == page.Page})
	}
	return view
}

func pageURL(n int) string {
	return fmt.Sprintf("/products?page=%d", n)
}

// Truncate shortens s to limit characters, trimming trailing whitespace and
// appending "..." when anything was cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRightFunc(string(runes[:limit]), unicode.IsSpace) + "..."
}

// FormatCurrency renders a price as dollars with two decimals and thousands
// separators, e.g. $1,234.50.
func FormatCurrency(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + "$" + b.String() + "." + frac
}
