package menulayout

// Color is a straight-alpha RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Vertex is one corner of an overlay triangle, in screen pixels.
type Vertex struct {
	Pos   Vec2
	Color Color
}

// OverlayStyle controls the colors of the layout debug overlay.
type OverlayStyle struct {
	GroupColor   Color   // Outline of each group's bounds
	ElementColor Color   // Outline of each element
	HoverFill    Color   // Fill of the hovered element
	Thickness    float32 // Outline thickness in pixels
}

// DefaultOverlayStyle returns the overlay colors used by the example viewer.
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{
		GroupColor:   Color{R: 255, B: 255, A: 255},
		ElementColor: Color{G: 255, B: 255, A: 255},
		HoverFill:    Color{R: 255, G: 255, A: 96},
		Thickness:    1,
	}
}

// Overlay is the debug view of an arranged layout as a flat triangle list.
// Reuse one Overlay across frames; Build keeps the vertex capacity.
type Overlay struct {
	Vertices []Vertex
}

// Build replaces the overlay contents with the geometry of the engine's last
// Arrange: an outline per non-empty group, an outline per element, and a fill
// under the hovered element. It never triggers a layout pass.
func (o *Overlay) Build(e *Engine, hovered string, style OverlayStyle) {
	o.Vertices = o.Vertices[:0]

	for _, g := range e.Store().Groups() {
		if b, ok := e.GroupBounds(g.ID); ok {
			o.stroke(b, style.GroupColor, style.Thickness)
		}
	}

	for _, el := range e.Registry().Elements() {
		if el.ID == hovered {
			o.fill(el.Rect, style.HoverFill)
		}
		o.stroke(el.Rect, style.ElementColor, style.Thickness)
	}
}

// Len returns the number of vertices.
func (o *Overlay) Len() int {
	return len(o.Vertices)
}

// fill adds r as two triangles. Empty rectangles and invisible colors add
// nothing.
func (o *Overlay) fill(r Rect, c Color) {
	if r.IsEmpty() || c.A == 0 {
		return
	}
	tl := Vertex{Pos: Vec2{X: r.X, Y: r.Y}, Color: c}
	tr := Vertex{Pos: Vec2{X: r.Right(), Y: r.Y}, Color: c}
	br := Vertex{Pos: Vec2{X: r.Right(), Y: r.Bottom()}, Color: c}
	bl := Vertex{Pos: Vec2{X: r.X, Y: r.Bottom()}, Color: c}
	o.Vertices = append(o.Vertices, tl, tr, br, tl, br, bl)
}

// stroke adds the border of r as four bands of width t drawn inside r.
// Rectangles too small for a border are filled instead.
func (o *Overlay) stroke(r Rect, c Color, t float32) {
	if r.IsEmpty() || c.A == 0 || t <= 0 {
		return
	}
	if 2*t >= r.W || 2*t >= r.H {
		o.fill(r, c)
		return
	}
	inner := r.H - 2*t
	o.fill(Rect{X: r.X, Y: r.Y, W: r.W, H: t}, c)
	o.fill(Rect{X: r.X, Y: r.Bottom() - t, W: r.W, H: t}, c)
	o.fill(Rect{X: r.X, Y: r.Y + t, W: t, H: inner}, c)
	o.fill(Rect{X: r.Right() - t, Y: r.Y + t, W: t, H: inner}, c)
}
