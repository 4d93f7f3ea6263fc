package handler

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

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

// productStore keeps products in insertion order; listing walks it backwards
// so the newest product comes first.
type productStore struct {
	mu       sync.Mutex
	products []entity.Product
	failWith error
}

func (s *productStore) Insert(ctx context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	product.ID = uuid.New()
	s.products = append(s.products, *product)
	return nil
}

func (s *productStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (s *productStore) FindFiltered(ctx context.Context, filter entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, 0, s.failWith
	}

	var matched []entity.Product
	for i := len(s.products) - 1; i >= 0; i-- {
		if strings.Contains(s.products[i].Name, filter.Name) {
			matched = append(matched, s.products[i])
		}
	}

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

func (s *productStore) UpdateByID(ctx context.Context, id uuid.UUID, fields entity.ProductFields) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Name = fields.Name
			s.products[i].Description = fields.Description
			s.products[i].Price = fields.Price
			s.products[i].Quantity = fields.Quantity
			return 1, nil
		}
	}
	return 0, nil
}

func (s *productStore) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *productStore) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *productStore) all() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Product(nil), s.products...)
}

// sessionStore fails every Load from the failLoadsFrom-th call on when it is set.
type sessionStore struct {
	mu            sync.Mutex
	sessions      map[string]entity.CatalogScreen
	loads         int
	failLoadsFrom int
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]entity.CatalogScreen)}
}

func (s *sessionStore) Load(ctx context.Context, sessionID string) (*entity.CatalogScreen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.failLoadsFrom > 0 && s.loads >= s.failLoadsFrom {
		return nil, errStorage
	}
	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return state.Clone(), nil
}

func (s *sessionStore) Save(ctx context.Context, sessionID string, state *entity.CatalogScreen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *state.Clone()
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *sessionStore) get(sessionID string) *entity.CatalogScreen {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	return state.Clone()
}

// failLoadsAfter lets the next n loads succeed and fails the rest.
func (s *sessionStore) failLoadsAfter(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failLoadsFrom = s.loads + n + 1
}

// sessionLocker rejects every request for a session listed in busy.
type sessionLocker struct {
	mu   sync.Mutex
	busy map[string]bool
}

func (l *sessionLocker) Acquire(ctx context.Context, sessionID string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy[sessionID] {
		return nil, service.ErrSessionBusy
	}
	return func() {}, nil
}

func (l *sessionLocker) setBusy(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy == nil {
		l.busy = make(map[string]bool)
	}
	l.busy[sessionID] = true
}
