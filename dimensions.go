package menulayout

// collectMembers looks up the members of a group in the registry.
// Unknown IDs are reported and skipped.
func (p *pass) collectMembers(g *Group) []*Element {
	members := make([]*Element, 0, len(g.Members))
	for _, id := range g.Members {
		e, ok := p.registry.Get(id)
		if !ok {
			p.fail(&ConfigError{Group: g.ID, Ref: id, Err: ErrMissingElement})
			continue
		}
		members = append(members, e)
	}
	return members
}

// calculateGroupDimensions updates GroupWidth and GroupHeight of every group
// from the current size of its members. Groups do not depend on each other,
// so a single pass in any order is enough.
func (p *pass) calculateGroupDimensions(groups []*Group) {
	for _, g := range groups {
		w, h := groupDimensions(g.Layout.Type, g.Layout.Padding, p.members[g.ID])
		g.Layout.GroupWidth = w
		g.Layout.GroupHeight = h
	}
}

// groupDimensions returns the footprint of members stacked along layoutType:
// the sum of extents plus padding between neighbours on the main axis, and the
// largest extent on the cross axis. Parent padding is not included.
func groupDimensions(layoutType LayoutType, padding float32, members []*Element) (w, h float32) {
	if len(members) == 0 {
		return 0, 0
	}

	var along, across float32
	for _, e := range members {
		main, cross := e.Rect.W, e.Rect.H
		if layoutType == LayoutVertical {
			main, cross = cross, main
		}
		along += main
		across = maxf(across, cross)
	}
	along += padding * float32(len(members)-1)

	if layoutType == LayoutVertical {
		return across, along
	}
	return along, across
}
