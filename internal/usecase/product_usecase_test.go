package usecase

import (
	"context"
	"fmt"
	"testing"

	"go-product-catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductUsecase() (ProductUsecase, *memoryProductRepository) {
	repo := newMemoryProductRepository()
	return NewProductUsecase(quietLogger(), repo), repo
}

func fields(name string) entity.ProductFields {
	return entity.ProductFields{
		Name:        name,
		Description: "desc " + name,
		Price:       decimal.RequireFromString("1.50"),
		Quantity:    2,
	}
}

func TestProductUsecaseListFiltersBySubstring(t *testing.T) {
	uc, _ := newTestProductUsecase()
	ctx := context.Background()

	for _, name := range []string{"Blue Widget", "Red widget", "Gadget", "Widgetry"} {
		_, err := uc.Create(ctx, fields(name))
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, "Widget", 1)
	require.NoError(t, err)

	var names []string
	for _, p := range page.Products {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Blue Widget", "Widgetry"}, names, "match is case-sensitive at any position")
	assert.Equal(t, int64(2), page.Total)
}

func TestProductUsecaseListPaginatesNewestFirst(t *testing.T) {
	uc, _ := newTestProductUsecase()
	ctx := context.Background()

	for i := 1; i <= 23; i++ {
		_, err := uc.Create(ctx, fields(fmt.Sprintf("Product %02d", i)))
		require.NoError(t, err)
	}

	first, err := uc.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, first.Products, ProductsPerPage)
	assert.Equal(t, "Product 23", first.Products[0].Name)
	assert.Equal(t, 3, first.LastPage())
	assert.Equal(t, 1, first.From())
	assert.Equal(t, 10, first.To())

	last, err := uc.List(ctx, "", 3)
	require.NoError(t, err)
	assert.Len(t, last.Products, 3)
	assert.Equal(t, "Product 01", last.Products[2].Name)
	assert.Equal(t, 21, last.From())
	assert.Equal(t, 23, last.To())

	beyond, err := uc.List(ctx, "", 9)
	require.NoError(t, err)
	assert.Empty(t, beyond.Products)
	assert.Equal(t, int64(23), beyond.Total)

	clamped, err := uc.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Page)
}

func TestProductUsecaseCreateUpdateDelete(t *testing.T) {
	uc, repo := newTestProductUsecase()
	ctx := context.Background()

	created, err := uc.Create(ctx, fields("Lamp"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	updated, err := uc.Update(ctx, created.ID, entity.ProductFields{
		Name:        "Desk Lamp",
		Description: "",
		Price:       decimal.Zero,
		Quantity:    0,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Desk Lamp", updated.Name)
	assert.Empty(t, updated.Description)
	assert.True(t, updated.Price.IsZero())
	assert.Equal(t, 1, repo.count())

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUsecaseMissingProduct(t *testing.T) {
	uc, _ := newTestProductUsecase()
	ctx := context.Background()
	id := uuid.New()

	_, err := uc.GetByID(ctx, id)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = uc.Update(ctx, id, fields("Ghost"))
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, id), ErrProductNotFound)
}

func TestProductUsecasePropagatesStorageErrors(t *testing.T) {
	uc, repo := newTestProductUsecase()
	repo.failWith = errStorage
	ctx := context.Background()

	_, err := uc.List(ctx, "", 1)
	assert.ErrorIs(t, err, errStorage)

	_, err = uc.Create(ctx, fields("Broken"))
	assert.ErrorIs(t, err, errStorage)

	assert.ErrorIs(t, uc.Delete(ctx, uuid.New()), errStorage)
}
