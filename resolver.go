package menulayout

import (
	"log/slog"
	"slices"
)

// pass holds the state of one Arrange call. Nothing in it survives the call,
// so rectangles resolved in an earlier pass can never leak into a later one.
type pass struct {
	registry *Registry
	store    *Store
	screen   Rect
	measurer TextMeasurer
	logger   *slog.Logger

	members  map[string][]*Element // present members per group
	resolved map[string]Rect       // memoized group bounds
	visiting map[string]bool       // groups on the current recursion path
	path     []string              // current recursion path, root first
	detached map[string]bool       // groups placed against the screen this pass

	errs []error
}

func newPass(registry *Registry, store *Store, screen Vec2, measurer TextMeasurer, logger *slog.Logger) *pass {
	return &pass{
		registry: registry,
		store:    store,
		screen:   Rect{W: screen.X, H: screen.Y},
		measurer: measurer,
		logger:   logger,
		members:  make(map[string][]*Element, store.Len()),
		resolved: make(map[string]Rect, store.Len()),
		visiting: make(map[string]bool),
		detached: make(map[string]bool),
	}
}

// run measures, aggregates and places every group.
func (p *pass) run() {
	groups := p.store.Groups()
	for _, g := range groups {
		p.members[g.ID] = p.collectMembers(g)
	}
	if p.measurer != nil {
		p.measureText(groups)
	}
	p.calculateGroupDimensions(groups)

	// Call order does not matter: resolve places parents first on its own.
	for _, g := range groups {
		p.resolve(g)
	}
}

// fail records a configuration problem and logs it.
func (p *pass) fail(err *ConfigError) {
	p.errs = append(p.errs, err)
	attrs := []any{"group", err.Group, "ref", err.Ref, "err", err.Err}
	if len(err.Chain) > 0 {
		attrs = append(attrs, "chain", err.Chain)
	}
	p.logger.Warn("layout configuration problem", attrs...)
}

// resolve returns the bounds of group g, resolving its parent chain first and
// placing g's members. Each group is resolved at most once per pass.
func (p *pass) resolve(g *Group) Rect {
	if r, ok := p.resolved[g.ID]; ok {
		return r
	}

	p.visiting[g.ID] = true
	p.path = append(p.path, g.ID)
	defer func() {
		p.path = p.path[:len(p.path)-1]
		delete(p.visiting, g.ID)
	}()

	container := p.screen
	parented := false
	if parent, ok := p.parentOf(g); ok {
		parentRect := p.resolve(parent)
		// A cycle found further up the chain may have detached g as well.
		if !p.detached[g.ID] {
			container, parented = parentRect, true
		}
	}

	align := g.Layout.Alignment
	if !parented {
		align = align.inner()
	}
	bounds := anchorGroup(g.Layout, align, container, parented)
	p.placeMembers(g, align, bounds)
	p.resolved[g.ID] = bounds

	p.logger.Debug("resolved layout group",
		"group", g.ID,
		"parent", g.Layout.ParentID,
		"parented", parented,
		"alignment", align,
		"rect", bounds)
	return bounds
}

// parentOf returns the group g is aligned to. It returns false when g has no
// parent, when the parent does not exist, or when following it would close a
// cycle. The last two are reported and detach g for the rest of the pass.
func (p *pass) parentOf(g *Group) (*Group, bool) {
	id := g.Layout.ParentID
	if id == "" || p.detached[g.ID] {
		return nil, false
	}

	parent, ok := p.store.Group(id)
	if !ok {
		p.detached[g.ID] = true
		p.fail(&ConfigError{Group: g.ID, Ref: id, Err: ErrMissingParent})
		return nil, false
	}

	if p.visiting[id] {
		start := slices.Index(p.path, id)
		cycle := slices.Clone(p.path[start:])
		for _, member := range cycle {
			p.detached[member] = true
		}
		p.fail(&ConfigError{Group: g.ID, Ref: id, Chain: cycle, Err: ErrParentCycle})
		return nil, false
	}

	return parent, true
}

// anchorGroup positions a group box of the aggregated size inside or next to
// the container. PaddingToParent only applies when the container is a parent.
func anchorGroup(l LayoutData, align Alignment, c Rect, parented bool) Rect {
	w, h := l.GroupWidth, l.GroupHeight
	var pad float32
	if parented {
		pad = l.PaddingToParent
	}

	var x, y float32
	switch align {
	case AlignAboveParent:
		x = c.X + (c.W-w)/2
		y = c.Y - h - pad
	case AlignBelowParent:
		x = c.X + (c.W-w)/2
		y = c.Bottom() + pad
	case AlignLeftOfParent:
		x = c.X - w - pad
		y = c.Y + (c.H-h)/2
	case AlignRightOfParent:
		x = c.Right() + pad
		y = c.Y + (c.H-h)/2
	case AlignCenter, AlignTopLeft, AlignTopCenter, AlignTopRight,
		AlignCenterLeft, AlignCenterRight,
		AlignBottomLeft, AlignBottomCenter, AlignBottomRight:
		hEdge, vEdge := align.edges()
		x = alignOnAxis(hEdge, c.X, c.W, w, pad)
		y = alignOnAxis(vEdge, c.Y, c.H, h, pad)
	default:
		x = c.X + (c.W-w)/2
		y = c.Y + (c.H-h)/2
	}

	if align.offsetsVertically() {
		y += l.AlignmentOffset * c.H
	} else {
		x += l.AlignmentOffset * c.W
	}

	return Rect{X: snapPixel(x), Y: snapPixel(y), W: w, H: h}
}

// alignOnAxis places a box of length size inside [start, start+extent).
func alignOnAxis(e edge, start, extent, size, pad float32) float32 {
	switch e {
	case edgeStart:
		return start + pad
	case edgeEnd:
		return start + extent - size - pad
	default:
		return start + (extent-size)/2
	}
}

// placeMembers stacks the group's members inside bounds along the layout
// axis. On the cross axis members follow the edge the alignment names, or
// are centered.
func (p *pass) placeMembers(g *Group, align Alignment, bounds Rect) {
	hEdge, vEdge := align.edges()
	cursor := float32(0)

	for _, e := range p.members[g.ID] {
		switch g.Layout.Type {
		case LayoutVertical:
			e.Rect.X = snapPixel(bounds.X + crossOffset(hEdge, bounds.W, e.Rect.W))
			e.Rect.Y = bounds.Y + cursor
			cursor += e.Rect.H + g.Layout.Padding
		default:
			e.Rect.X = bounds.X + cursor
			e.Rect.Y = snapPixel(bounds.Y + crossOffset(vEdge, bounds.H, e.Rect.H))
			cursor += e.Rect.W + g.Layout.Padding
		}
	}
}

// crossOffset returns where a member of length size sits inside extent.
func crossOffset(e edge, extent, size float32) float32 {
	switch e {
	case edgeStart:
		return 0
	case edgeEnd:
		return extent - size
	default:
		return (extent - size) / 2
	}
}
