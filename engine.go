package menulayout

import (
	"errors"
	"log/slog"
	"maps"
	"sync"
)

// Default screen size used until the window reports its real size.
const (
	DefaultScreenWidth  = 1280
	DefaultScreenHeight = 720
)

// Engine arranges the elements of a Registry according to the groups in a
// Store. It holds no layout state between passes; every Arrange starts over
// from the current element sizes and descriptors.
type Engine struct {
	mu       sync.Mutex
	registry *Registry
	store    *Store
	screen   Vec2
	measurer TextMeasurer
	logger   *slog.Logger

	// Bounds of the last pass, for consumers such as the debug overlay.
	// Arrange never reads them.
	bounds map[string]Rect
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithScreenSize sets the initial screen size in pixels.
func WithScreenSize(width, height float32) EngineOption {
	return func(e *Engine) { e.screen = Vec2{X: width, Y: height} }
}

// WithLogger sets the logger configuration problems are reported to.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithTextMeasurer enables sizing of AutoSize elements from their text.
func WithTextMeasurer(m TextMeasurer) EngineOption {
	return func(e *Engine) { e.measurer = m }
}

// New creates a layout engine over an externally owned registry and store.
func New(registry *Registry, store *Store, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: registry,
		store:    store,
		screen:   Vec2{X: DefaultScreenWidth, Y: DefaultScreenHeight},
		logger:   layoutLogger,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Arrange computes the rectangle of every grouped element.
//
// It measures auto-sized text, aggregates group dimensions and then resolves
// every group, parents first. Malformed groups (missing members, missing
// parents, parent cycles) are logged and degraded; the remaining groups are
// still arranged. The returned error joins every problem found and is nil
// when the configuration is sound. Calling Arrange again with unchanged
// inputs yields identical rectangles.
func (e *Engine) Arrange() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := newPass(e.registry, e.store, e.screen, e.measurer, e.logger)
	p.run()
	e.bounds = p.resolved

	return errors.Join(p.errs...)
}

// SetScreenSize updates the screen size used by the next Arrange.
// Call this on window resize, then Arrange.
func (e *Engine) SetScreenSize(width, height float32) {
	e.mu.Lock()
	e.screen = Vec2{X: width, Y: height}
	e.mu.Unlock()
}

// ScreenSize returns the current screen size.
func (e *Engine) ScreenSize() Vec2 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.screen
}

// GroupBounds returns a group's bounds from the last Arrange.
func (e *Engine) GroupBounds(id string) (Rect, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.bounds[id]
	return r, ok
}

// AllGroupBounds returns a copy of every group's bounds from the last Arrange.
func (e *Engine) AllGroupBounds() map[string]Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return maps.Clone(e.bounds)
}

// Registry returns the element registry the engine arranges.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Store returns the descriptor store the engine reads.
func (e *Engine) Store() *Store {
	return e.store
}
