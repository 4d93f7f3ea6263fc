package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var errStorage = errors.New("storage unavailable")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// memoryProductRepository mirrors the postgres repository's ordering and
// filtering rules.
type memoryProductRepository struct {
	mu       sync.Mutex
	products map[uuid.UUID]entity.Product
	clock    time.Time
	failWith error
}

func newMemoryProductRepository() *memoryProductRepository {
	return &memoryProductRepository{
		products: make(map[uuid.UUID]entity.Product),
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *memoryProductRepository) Insert(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.clock = r.clock.Add(time.Second)
	product.ID = uuid.New()
	product.CreatedAt = r.clock
	product.UpdatedAt = r.clock
	r.products[product.ID] = *product
	return nil
}

func (r *memoryProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *memoryProductRepository) FindFiltered(ctx context.Context, filter entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, 0, r.failWith
	}

	var matched []entity.Product
	for _, p := range r.products {
		if strings.Contains(p.Name, filter.Name) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []entity.Product{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memoryProductRepository) UpdateByID(ctx context.Context, id uuid.UUID, fields entity.ProductFields) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	product, ok := r.products[id]
	if !ok {
		return 0, nil
	}
	product.Name = fields.Name
	product.Description = fields.Description
	product.Price = fields.Price
	product.Quantity = fields.Quantity
	r.products[id] = product
	return 1, nil
}

func (r *memoryProductRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}

func (r *memoryProductRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products)
}

type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]entity.CatalogScreen
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: make(map[string]entity.CatalogScreen)}
}

func (r *memorySessionRepository) Load(ctx context.Context, sessionID string) (*entity.CatalogScreen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return state.Clone(), nil
}

func (r *memorySessionRepository) Save(ctx context.Context, sessionID string, state *entity.CatalogScreen) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = *state.Clone()
	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// memoryLocker is an in-process SessionLocker.
type memoryLocker struct {
	mu    sync.Mutex
	held  map[string]bool
	calls int
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{held: make(map[string]bool)}
}

func (l *memoryLocker) Acquire(ctx context.Context, sessionID string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.held[sessionID] {
		return nil, service.ErrSessionBusy
	}
	l.held[sessionID] = true
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, sessionID)
	}, nil
}

func (l *memoryLocker) hold(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held[sessionID] = true
}
