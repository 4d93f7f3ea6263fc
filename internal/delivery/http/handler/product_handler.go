package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-product-catalog/internal/converter"
	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/screen"
	"go-product-catalog/internal/usecase"
	"go-product-catalog/pkg/response"
	"go-product-catalog/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
	drafts         *screen.DraftValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator, drafts *screen.DraftValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
		drafts:         drafts,
	}
}

// Create handles product creation
// @Summary Create a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.ProductRequest true "Product"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	draft := h.drafts.Normalize(converter.ProductRequestToDraft(&req))
	fields, errs := h.drafts.Validate(draft)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product, err := h.productUsecase.Create(r.Context(), fields)
	if err != nil {
		response.InternalServerError(w, "Failed to create product")
		return
	}

	response.Success(w, http.StatusCreated, screen.MessageCreated, converter.ProductToResponse(product))
}

// GetAll handles listing products
// @Summary List products
// @Description Products whose name contains search, newest first, 10 per page
// @Tags Products
// @Produce json
// @Param search query string false "Name contains (case-sensitive)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := dto.ListProductsQuery{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			response.ValidationError(w, map[string]string{"page": "page must be a number"})
			return
		}
		query.Page = page
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	page, err := h.productUsecase.List(r.Context(), query.Search, query.Page)
	if err != nil {
		response.InternalServerError(w, "Failed to get products")
		return
	}

	meta := response.NewPageMeta(page.Page, page.PerPage, page.Total, len(page.Products))

	response.SuccessWithMeta(w, http.StatusOK, "Products retrieved successfully", converter.ProductsToResponses(page.Products), meta)
}

// GetByID handles getting a product by ID
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeProductError(w, err, "Failed to get product")
		return
	}

	response.Success(w, http.StatusOK, "Product retrieved successfully", converter.ProductToResponse(product))
}

// Update handles product update
// @Summary Replace a product's fields
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.ProductRequest true "Product"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	draft := h.drafts.Normalize(converter.ProductRequestToDraft(&req))
	fields, errs := h.drafts.Validate(draft)
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, fields)
	if err != nil {
		writeProductError(w, err, "Failed to update product")
		return
	}

	response.Success(w, http.StatusOK, screen.MessageUpdated, converter.ProductToResponse(product))
}

// Delete handles product deletion
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID", nil)
		return
	}

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		writeProductError(w, err, "Failed to delete product")
		return
	}

	response.Success(w, http.StatusOK, screen.MessageDeleted, nil)
}

func writeProductError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
