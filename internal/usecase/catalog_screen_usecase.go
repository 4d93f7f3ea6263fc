package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/domain/repository"
	"go-product-catalog/internal/screen"
	"go-product-catalog/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var screenEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "catalog_screen_events_total",
	Help: "Catalog screen events by name and outcome.",
}, []string{"event", "outcome"})

type CatalogScreenUsecase interface {
	// Load returns the session's screen state, or a fresh one.
	Load(ctx context.Context, sessionID string) (*entity.CatalogScreen, error)
	// Dispatch applies a user event to the session's state and stores the
	// result. On error the stored state is left untouched and returned.
	Dispatch(ctx context.Context, sessionID string, event screen.Event) (*entity.CatalogScreen, error)
	// Products lists the page of products the state currently shows.
	Products(ctx context.Context, state *entity.CatalogScreen) (*entity.ProductPage, error)
}

// SessionLocker grants exclusive access to one session's stored state.
type SessionLocker interface {
	Acquire(ctx context.Context, sessionID string) (release func(), err error)
}

type catalogScreenUsecase struct {
	log            *logrus.Logger
	reducer        *screen.Reducer
	productUsecase ProductUsecase
	sessionRepo    repository.SessionRepository
	locker         SessionLocker
}

func NewCatalogScreenUsecase(
	log *logrus.Logger,
	reducer *screen.Reducer,
	productUsecase ProductUsecase,
	sessionRepo repository.SessionRepository,
	locker SessionLocker,
) CatalogScreenUsecase {
	return &catalogScreenUsecase{
		log:            log,
		reducer:        reducer,
		productUsecase: productUsecase,
		sessionRepo:    sessionRepo,
		locker:         locker,
	}
}

func (u *catalogScreenUsecase) Load(ctx context.Context, sessionID string) (*entity.CatalogScreen, error) {
	state, err := u.sessionRepo.Load(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to load session state: %+v", err)
		return nil, err
	}
	if state == nil {
		return entity.NewCatalogScreen(), nil
	}
	return state, nil
}

func (u *catalogScreenUsecase) Dispatch(ctx context.Context, sessionID string, event screen.Event) (*entity.CatalogScreen, error) {
	release, err := u.locker.Acquire(ctx, sessionID)
	if err != nil {
		screenEvents.WithLabelValues(screen.EventName(event), outcome(err)).Inc()
		state, loadErr := u.Load(ctx, sessionID)
		if loadErr != nil {
			return nil, err
		}
		return state, err
	}
	defer release()

	state, err := u.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := u.apply(ctx, state, event)
	if err != nil {
		screenEvents.WithLabelValues(screen.EventName(event), outcome(err)).Inc()
		return state, err
	}

	if err := u.sessionRepo.Save(ctx, sessionID, next); err != nil {
		u.log.Warnf("Failed to save session state: %+v", err)
		return state, err
	}

	result := "ok"
	if len(next.Errors) > 0 {
		result = "invalid"
	}
	screenEvents.WithLabelValues(screen.EventName(event), result).Inc()

	return next, nil
}

func (u *catalogScreenUsecase) Products(ctx context.Context, state *entity.CatalogScreen) (*entity.ProductPage, error) {
	return u.productUsecase.List(ctx, state.Search, state.Page)
}

// apply reduces the event and runs every effect it produces, feeding each
// outcome back into the reducer. The first failing effect aborts the event.
func (u *catalogScreenUsecase) apply(ctx context.Context, state *entity.CatalogScreen, event screen.Event) (*entity.CatalogScreen, error) {
	next, effects := u.reducer.Reduce(state, event)

	for len(effects) > 0 {
		effect := effects[0]
		effects = effects[1:]

		result, err := u.run(ctx, effect)
		if err != nil {
			return nil, err
		}

		var more []screen.Effect
		next, more = u.reducer.Reduce(next, result)
		effects = append(effects, more...)
	}

	return next, nil
}

func (u *catalogScreenUsecase) run(ctx context.Context, effect screen.Effect) (screen.Event, error) {
	switch e := effect.(type) {
	case screen.LoadProduct:
		product, err := u.productUsecase.GetByID(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		return screen.ProductLoaded{Product: product}, nil

	case screen.CreateProduct:
		if _, err := u.productUsecase.Create(ctx, e.Fields); err != nil {
			return nil, err
		}
		return screen.ProductSaved{Created: true}, nil

	case screen.UpdateProduct:
		if _, err := u.productUsecase.Update(ctx, e.ID, e.Fields); err != nil {
			return nil, err
		}
		return screen.ProductSaved{Created: false}, nil

	case screen.DeleteProduct:
		if err := u.productUsecase.Delete(ctx, e.ID); err != nil {
			return nil, err
		}
		return screen.ProductDeleted{}, nil

	default:
		return nil, fmt.Errorf("unknown screen effect %T", effect)
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return "not_found"
	case errors.Is(err, service.ErrSessionBusy):
		return "busy"
	default:
		return "error"
	}
}
