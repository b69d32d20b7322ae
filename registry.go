package menulayout

import "fmt"

// Element is a UI element positioned by the layout engine.
// The engine writes Rect during Arrange; everything else belongs to the caller.
type Element struct {
	ID   string
	Rect Rect

	// Text is the element's label. When AutoSize is set, the element's size
	// is measured from Text on every arrangement pass.
	Text     string
	AutoSize bool

	// FontSize overrides the group's default text size (0 = group default).
	FontSize uint32
}

// Registry is a flat collection of elements keyed by ID.
// Iteration follows insertion order so passes are deterministic.
type Registry struct {
	elements map[string]*Element
	order    []string
}

// NewRegistry creates an empty element registry.
func NewRegistry() *Registry {
	return &Registry{elements: make(map[string]*Element)}
}

// Add registers an element. IDs must be unique and non-empty; a nil element
// counts as having an empty ID.
func (r *Registry) Add(e *Element) error {
	if e == nil || e.ID == "" {
		return fmt.Errorf("add element: %w", ErrEmptyID)
	}
	if _, exists := r.elements[e.ID]; exists {
		return fmt.Errorf("add element: %w: %q", ErrDuplicateElement, e.ID)
	}
	r.elements[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

// Get returns the element with the given ID.
func (r *Registry) Get(id string) (*Element, bool) {
	e, ok := r.elements[id]
	return e, ok
}

// Remove deletes an element. Groups still listing it will report it missing.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.elements[id]; !ok {
		return false
	}
	delete(r.elements, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.order)
}

// Elements returns all elements in insertion order.
func (r *Registry) Elements() []*Element {
	out := make([]*Element, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.elements[id])
	}
	return out
}

// ElementAt returns the topmost element containing the point.
// Later elements are drawn over earlier ones, so the search runs backwards.
func (r *Registry) ElementAt(p Vec2) (*Element, bool) {
	for i := len(r.order) - 1; i >= 0; i-- {
		e := r.elements[r.order[i]]
		if e.Rect.Contains(p) {
			return e, true
		}
	}
	return nil, false
}
