package resolver

import (
	"context"
	"errors"
	"sync"

	"petro-catalog/internal/catalog"
	"petro-catalog/internal/model"

	"github.com/rs/zerolog"
)

// Status is the lifecycle of one product-view request.
type Status string

const (
	// StatusIdle means no product has been requested yet.
	StatusIdle Status = "idle"

	// StatusLoading means a fetch is in flight; callers render a placeholder.
	StatusLoading Status = "loading"

	// StatusReady means the fetch completed and Product is set.
	StatusReady Status = "ready"

	// StatusNotFound means the fetch completed with no match; callers
	// redirect to the catalogue listing.
	StatusNotFound Status = "not_found"

	// StatusFailed means the source reported an error.
	StatusFailed Status = "failed"
)

// View is the observable state of the product detail viewer.
type View struct {
	Status  Status
	ID      string
	Product *model.Product
	Err     error
}

// Viewer tracks the currently requested product id and guards against the
// stale-response race: a fetch started for an earlier id can never clobber
// state belonging to a later one. Each new Request cancels the previous
// fetch's context and supersedes its result.
type Viewer struct {
	mu      sync.Mutex
	svc     *Service
	logger  zerolog.Logger
	current string
	cancel  context.CancelFunc
	view    View
	subs    []func(View)
}

// NewViewer creates a viewer over the given catalogue source.
func NewViewer(source catalog.Source, logger zerolog.Logger) *Viewer {
	return &Viewer{
		svc:    NewService(source, logger),
		logger: logger.With().Str("component", "product-viewer").Logger(),
		view:   View{Status: StatusIdle},
	}
}

// Request starts resolving the given product id. The view transitions to
// StatusLoading immediately and to exactly one terminal status when the
// fetch for that id completes. A result arriving after the id has been
// superseded is discarded.
func (v *Viewer) Request(ctx context.Context, id string) {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.current = id
	v.view = View{Status: StatusLoading, ID: id}
	subs := append([]func(View){}, v.subs...)
	view := v.view
	v.mu.Unlock()

	notify(subs, view)

	go func() {
		product, err := v.svc.Resolve(fetchCtx, id)

		v.mu.Lock()
		if v.current != id {
			current := v.current
			v.mu.Unlock()
			v.logger.Debug().
				Str("product_id", id).
				Str("current_id", current).
				Msg("discarding stale product fetch result")
			return
		}

		switch {
		case errors.Is(err, model.ErrProductNotFound):
			v.view = View{Status: StatusNotFound, ID: id}
		case err != nil:
			v.view = View{Status: StatusFailed, ID: id, Err: err}
		default:
			v.view = View{Status: StatusReady, ID: id, Product: product}
		}
		subs := append([]func(View){}, v.subs...)
		view := v.view
		v.mu.Unlock()

		notify(subs, view)
	}()
}

// View returns the current view state.
func (v *Viewer) View() View {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.view
}

// Subscribe registers a callback invoked on every view transition.
func (v *Viewer) Subscribe(fn func(View)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.subs = append(v.subs, fn)
}

// Close cancels any in-flight fetch.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func notify(subs []func(View), view View) {
	for _, fn := range subs {
		fn(view)
	}
}
