package menulayout

import "fmt"

// Store maps group IDs to their layout descriptors.
// It also tracks membership so an element can belong to one group only.
type Store struct {
	groups map[string]*Group
	order  []string
	owner  map[string]string // element ID -> group ID
}

// NewStore creates an empty descriptor store.
func NewStore() *Store {
	return &Store{
		groups: make(map[string]*Group),
		owner:  make(map[string]string),
	}
}

// Add registers a group and claims its members.
// The store is left unchanged when an error is returned. A nil group is
// rejected like one with an empty ID.
func (s *Store) Add(g *Group) error {
	if g == nil || g.ID == "" {
		return fmt.Errorf("add group: %w", ErrEmptyID)
	}
	if _, exists := s.groups[g.ID]; exists {
		return fmt.Errorf("add group: %w: %q", ErrDuplicateGroup, g.ID)
	}
	if g.Layout.Alignment.IsOuter() && g.Layout.ParentID == "" {
		return fmt.Errorf("add group %q: %w: %s", g.ID, ErrOuterAlignmentWithoutParent, g.Layout.Alignment)
	}

	seen := make(map[string]bool, len(g.Members))
	for _, id := range g.Members {
		if owner, taken := s.owner[id]; taken || seen[id] {
			if !taken {
				owner = g.ID
			}
			return fmt.Errorf("add group %q: %w: %q already in %q", g.ID, ErrElementInGroups, id, owner)
		}
		seen[id] = true
	}

	if g.Layout.FontSize == 0 {
		g.Layout.FontSize = DefaultFontSize
	}
	s.groups[g.ID] = g
	s.order = append(s.order, g.ID)
	for _, id := range g.Members {
		s.owner[id] = g.ID
	}
	return nil
}

// Group returns the group with the given ID.
func (s *Store) Group(id string) (*Group, bool) {
	g, ok := s.groups[id]
	return g, ok
}

// GroupOf returns the ID of the group an element belongs to.
func (s *Store) GroupOf(elementID string) (string, bool) {
	id, ok := s.owner[elementID]
	return id, ok
}

// Groups returns all groups in insertion order.
func (s *Store) Groups() []*Group {
	out := make([]*Group, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.groups[id])
	}
	return out
}

// Len returns the number of groups.
func (s *Store) Len() int {
	return len(s.order)
}
