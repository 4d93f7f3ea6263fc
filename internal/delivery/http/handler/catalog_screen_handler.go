package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-product-catalog/internal/converter"
	"go-product-catalog/internal/delivery/http/middleware"
	"go-product-catalog/internal/delivery/http/view"
	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/screen"
	"go-product-catalog/internal/service"
	"go-product-catalog/internal/usecase"
	"go-product-catalog/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const catalogPath = "/products"

// CatalogScreenHandler serves the server-rendered product catalog screen.
// Every POST is one screen event; on success the browser is redirected back
// to the listing, on failure the screen is rendered in place with an error.
type CatalogScreenHandler struct {
	screenUsecase usecase.CatalogScreenUsecase
	renderer      *view.Renderer
	log           *logrus.Logger
}

func NewCatalogScreenHandler(screenUsecase usecase.CatalogScreenUsecase, renderer *view.Renderer, log *logrus.Logger) *CatalogScreenHandler {
	return &CatalogScreenHandler{
		screenUsecase: screenUsecase,
		renderer:      renderer,
		log:           log,
	}
}

// Index renders the screen. A page query parameter moves the listing to that page.
func (h *CatalogScreenHandler) Index(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.InternalServerError(w, "Session not found")
		return
	}

	state, err := h.screenUsecase.Load(r.Context(), sessionID)
	if err != nil {
		response.InternalServerError(w, "Failed to load session")
		return
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page != state.Page {
			moved, err := h.screenUsecase.Dispatch(r.Context(), sessionID, screen.PageChanged{Page: page})
			if err != nil {
				if moved == nil {
					moved = state
				}
				h.renderFailure(w, r, moved, err)
				return
			}
			state = moved
		}
	}

	h.render(w, r, state, http.StatusOK, "")

	if state.Flash != "" {
		if _, err := h.screenUsecase.Dispatch(r.Context(), sessionID, screen.FlashShown{}); err != nil {
			h.log.Warnf("Failed to clear flash message: %+v", err)
		}
	}
}

func (h *CatalogScreenHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, screen.SearchChanged{Search: r.PostFormValue("search")})
}

func (h *CatalogScreenHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, screen.CreateRequested{})
}

func (h *CatalogScreenHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	h.dispatch(w, r, screen.EditRequested{ID: id})
}

func (h *CatalogScreenHandler) Save(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, screen.SaveRequested{Draft: entity.ProductDraft{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		Quantity:    r.PostFormValue("quantity"),
	}})
}

func (h *CatalogScreenHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.dispatch(w, r, screen.CancelRequested{})
}

func (h *CatalogScreenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(r.PostFormValue("confirmed"))
	if r.PostFormValue("confirmed") == "yes" {
		confirmed = true
	}
	h.dispatch(w, r, screen.DeleteRequested{ID: id, Confirmed: confirmed})
}

func (h *CatalogScreenHandler) dispatch(w http.ResponseWriter, r *http.Request, event screen.Event) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		response.InternalServerError(w, "Session not found")
		return
	}

	state, err := h.screenUsecase.Dispatch(r.Context(), sessionID, event)
	if err != nil {
		if state == nil {
			response.InternalServerError(w, "Failed to load session")
			return
		}
		h.renderFailure(w, r, state, err)
		return
	}

	http.Redirect(w, r, catalogPath, http.StatusSeeOther)
}

// renderFailure renders state with the banner and status matching a failed event.
func (h *CatalogScreenHandler) renderFailure(w http.ResponseWriter, r *http.Request, state *entity.CatalogScreen, err error) {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		h.render(w, r, state, http.StatusNotFound, "Product not found.")
	case errors.Is(err, service.ErrSessionBusy):
		h.render(w, r, state, http.StatusConflict, "Another request is still in progress. Please try again.")
	default:
		h.log.Errorf("Catalog screen event failed: %+v", err)
		h.render(w, r, state, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

// productID parses the id path variable, rendering a 400 screen when it is malformed.
func (h *CatalogScreenHandler) productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err == nil {
		return id, true
	}

	sessionID, _ := middleware.GetSessionIDFromContext(r.Context())
	state, loadErr := h.screenUsecase.Load(r.Context(), sessionID)
	if loadErr != nil {
		response.InternalServerError(w, "Failed to load session")
		return uuid.Nil, false
	}
	h.render(w, r, state, http.StatusBadRequest, "Invalid product ID.")
	return uuid.Nil, false
}

func (h *CatalogScreenHandler) render(w http.ResponseWriter, r *http.Request, state *entity.CatalogScreen, status int, errMsg string) {
	page, err := h.screenUsecase.Products(r.Context(), state)
	if err != nil {
		status = http.StatusInternalServerError
		errMsg = "Failed to load products."
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.RenderCatalog(w, converter.CatalogScreenToView(state, page, errMsg)); err != nil {
		h.log.Errorf("Failed to render catalog screen: %+v", err)
	}
}
