package storybook

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fableworks/storybook/internal/logging"
	loamAdapter "github.com/fableworks/storybook/pkg/adapters/loam"
	"github.com/fableworks/storybook/pkg/adapters/memory"
	"github.com/fableworks/storybook/pkg/assets"
	"github.com/fableworks/storybook/pkg/catalog"
	"github.com/fableworks/storybook/pkg/domain"
	"github.com/fableworks/storybook/pkg/export"
	"github.com/fableworks/storybook/pkg/ports"
	"github.com/fableworks/storybook/pkg/preview"
	"github.com/fableworks/storybook/pkg/pricing"
	"github.com/fableworks/storybook/pkg/session"
)

// Studio is the high-level entry point for the storybook configurator.
// It wires the catalog, session manager, photo registry and export
// pipeline behind a single API, so embedding applications only deal
// with session IDs and domain values.
type Studio struct {
	catalog    *catalog.Catalog
	sessions   *session.Manager
	store      ports.StateStore
	photos     *assets.Registry
	pipeline   *export.Pipeline
	rasterizer ports.Rasterizer
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Studio.
type Option func(*Studio)

// WithCatalog injects a pre-built catalog, bypassing the default sources.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Studio) {
		s.catalog = c
	}
}

// WithStore sets the session persistence backend. Defaults to an
// in-memory store.
func WithStore(store ports.StateStore) Option {
	return func(s *Studio) {
		s.store = store
	}
}

// WithRasterizer replaces the built-in page rasterizer used for exports.
func WithRasterizer(r ports.Rasterizer) Option {
	return func(s *Studio) {
		s.rasterizer = r
	}
}

// WithLifecycleHooks registers observability hooks. The same hooks feed
// both session persistence and export events.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Studio) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the studio.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Studio) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New initializes a Studio. When templatesPath is non-empty the catalog
// is loaded from a Loam repository of markdown template documents at
// that path; otherwise the built-in catalog is used. WithCatalog takes
// precedence over both.
func New(templatesPath string, opts ...Option) (*Studio, error) {
	s := &Studio{
		logger: logging.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		if templatesPath == "" {
			s.catalog = catalog.Builtin()
		} else {
			cat, err := loamAdapter.Open(context.Background(), templatesPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load template catalog: %w", err)
			}
			s.catalog = cat
		}
	}
	if s.catalog.Len() == 0 {
		return nil, fmt.Errorf("template catalog is empty")
	}

	if s.store == nil {
		s.store = memory.New()
	}
	s.photos = assets.NewRegistry()
	s.sessions = session.NewManager(s.store, s.catalog,
		session.WithLogger(s.logger),
		session.WithHooks(s.hooks),
	)

	pipelineOpts := []export.PipelineOption{
		export.WithLogger(s.logger),
		export.WithHooks(s.hooks),
	}
	if s.rasterizer != nil {
		pipelineOpts = append(pipelineOpts, export.WithRasterizer(s.rasterizer))
	}
	pipeline, err := export.NewPipeline(pipelineOpts...)
	if err != nil {
		return nil, err
	}
	s.pipeline = pipeline

	return s, nil
}

// Catalog returns the template catalog backing this studio.
func (s *Studio) Catalog() *catalog.Catalog {
	return s.catalog
}

// Session returns the state for the given session ID, creating a fresh
// default session when none is stored or the stored data is unreadable.
func (s *Studio) Session(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	return s.sessions.LoadOrStart(ctx, sessionID)
}

// Update applies fn to the session state and persists the result. The
// returned state is the normalized snapshot after the mutation.
func (s *Studio) Update(ctx context.Context, sessionID string, fn func(*domain.SessionState)) (*domain.SessionState, error) {
	return s.sessions.Update(ctx, sessionID, fn)
}

// Reset discards all session inputs and reselects the first catalog
// template. Any attached photo is dropped from the registry as well.
func (s *Studio) Reset(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	state, err := s.sessions.LoadOrStart(ctx, sessionID)
	if err == nil && state.Order.PhotoRef != "" {
		s.photos.Remove(state.Order.PhotoRef)
	}
	return s.sessions.Reset(ctx, sessionID)
}

// Clear removes the session from the store entirely.
func (s *Studio) Clear(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

// Preview composes the full page sequence for the session's current
// inputs: the cover followed by every story page, with all placeholders
// substituted and photo slots assigned.
func (s *Studio) Preview(ctx context.Context, sessionID string) ([]domain.PageView, error) {
	state, err := s.sessions.LoadOrStart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	template, err := s.catalog.Get(state.Order.TemplateID)
	if err != nil {
		return nil, err
	}
	attached := s.photos.Resolve(state.Order.PhotoRef) != nil
	return preview.Compose(template, state.Form, attached), nil
}

// Quote prices the session's current selections.
func (s *Studio) Quote(ctx context.Context, sessionID string) (pricing.Quote, error) {
	state, err := s.sessions.LoadOrStart(ctx, sessionID)
	if err != nil {
		return pricing.Quote{}, err
	}
	template, err := s.catalog.Get(state.Order.TemplateID)
	if err != nil {
		return pricing.Quote{}, err
	}
	addOns := pricing.AddOns{Hardcover: state.Order.Hardcover, GiftWrap: state.Order.GiftWrap}
	return pricing.NewQuote(template, addOns, state.Order.Quantity), nil
}

// AddToCart snapshots the current configuration as a cart line. The cart
// is a mock: lines accumulate on the session state and nothing is ordered.
func (s *Studio) AddToCart(ctx context.Context, sessionID string) (domain.CartLine, error) {
	var line domain.CartLine
	_, err := s.sessions.Update(ctx, sessionID, func(state *domain.SessionState) {
		template, err := s.catalog.Get(state.Order.TemplateID)
		if err != nil {
			// Normalization guarantees a valid template ID before this runs.
			template = s.catalog.First()
		}
		addOns := pricing.AddOns{Hardcover: state.Order.Hardcover, GiftWrap: state.Order.GiftWrap}
		line = domain.CartLine{
			ID:         uuid.NewString(),
			TemplateID: template.ID,
			Hardcover:  state.Order.Hardcover,
			GiftWrap:   state.Order.GiftWrap,
			Quantity:   state.Order.Quantity,
			Total:      pricing.Total(template, addOns, state.Order.Quantity),
		}
		state.Cart = append(state.Cart, line)
	})
	if err != nil {
		return domain.CartLine{}, err
	}
	return line, nil
}

// AttachPhoto decodes the image from r, stores it in the photo registry
// and binds it to the session. A previously attached photo is replaced.
// It returns the registry reference of the new photo.
func (s *Studio) AttachPhoto(ctx context.Context, sessionID string, r io.Reader) (string, error) {
	photo, err := assets.Decode(r)
	if err != nil {
		return "", err
	}
	ref := s.photos.Put(photo)

	var previous string
	_, err = s.sessions.Update(ctx, sessionID, func(state *domain.SessionState) {
		previous = state.Order.PhotoRef
		state.Order.PhotoRef = ref
	})
	if err != nil {
		s.photos.Remove(ref)
		return "", err
	}
	if previous != "" {
		s.photos.Remove(previous)
	}
	return ref, nil
}

// DetachPhoto unbinds and releases the session's photo, if any.
func (s *Studio) DetachPhoto(ctx context.Context, sessionID string) error {
	var previous string
	_, err := s.sessions.Update(ctx, sessionID, func(state *domain.SessionState) {
		previous = state.Order.PhotoRef
		state.Order.PhotoRef = ""
	})
	if err != nil {
		return err
	}
	if previous != "" {
		s.photos.Remove(previous)
	}
	return nil
}

// Export renders the session's book to a PDF written to w and returns
// the suggested file name. Only one export may run at a time; a second
// call while one is in flight fails with domain.ErrExportInProgress.
// On any failure nothing is written to w.
func (s *Studio) Export(ctx context.Context, sessionID string, w io.Writer) (string, error) {
	state, err := s.sessions.LoadOrStart(ctx, sessionID)
	if err != nil {
		return "", err
	}
	template, err := s.catalog.Get(state.Order.TemplateID)
	if err != nil {
		return "", err
	}

	photo := s.photos.Resolve(state.Order.PhotoRef)
	pages := preview.Compose(template, state.Form, photo != nil)

	var img image.Image
	if photo != nil {
		photo.Retain()
		defer photo.Release()
		img = photo.Image()
	}

	if err := s.pipeline.Export(ctx, pages, img, w); err != nil {
		return "", err
	}
	return export.Filename(state.Form.ChildName), nil
}

// ExportStatus reports the current state of the export pipeline.
func (s *Studio) ExportStatus() domain.ExportStatus {
	return s.pipeline.Status()
}

// LastExport returns the result of the most recent export run.
func (s *Studio) LastExport() export.Result {
	return s.pipeline.Last()
}
