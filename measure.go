package menulayout

// TextMeasurer measures the pixel size of a label at a font size.
// It abstracts font loading so the layout engine does not depend on any
// concrete font implementation; backend/xfont provides one over OpenType.
//
// Example usage:
//
//	measurer, err := xfont.Default()
//	if err != nil {
//	    return err
//	}
//	engine := menulayout.New(registry, store, menulayout.WithTextMeasurer(measurer))
type TextMeasurer interface {
	// MeasureText returns the width and height of text rendered at size pixels.
	MeasureText(text string, size uint32) Vec2
}

// measureText sizes auto-sized members of every group from their text.
// Elements outside groups are never touched.
func (p *pass) measureText(groups []*Group) {
	for _, g := range groups {
		for _, e := range p.members[g.ID] {
			if !e.AutoSize {
				continue
			}
			if e.Text == "" {
				e.Rect.W, e.Rect.H = 0, 0
				continue
			}
			size := e.FontSize
			if size == 0 {
				size = g.Layout.FontSize
			}
			dim := p.measurer.MeasureText(e.Text, size)
			e.Rect.W, e.Rect.H = dim.X, dim.Y
		}
	}
}
