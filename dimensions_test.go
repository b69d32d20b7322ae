package menulayout

import "testing"

func TestGroupDimensions(t *testing.T) {
	type tc struct {
		layoutType LayoutType
		padding    float32
		sizes      []Vec2
		wantW      float32
		wantH      float32
	}

	tests := map[string]tc{
		"horizontal": {
			layoutType: LayoutHorizontal,
			padding:    10,
			sizes:      []Vec2{{X: 80, Y: 30}, {X: 80, Y: 30}},
			wantW:      170,
			wantH:      30,
		},
		"horizontal mixed heights": {
			layoutType: LayoutHorizontal,
			padding:    2,
			sizes:      []Vec2{{X: 10, Y: 5}, {X: 20, Y: 40}, {X: 30, Y: 15}},
			wantW:      64,
			wantH:      40,
		},
		"vertical": {
			layoutType: LayoutVertical,
			padding:    4,
			sizes:      []Vec2{{X: 100, Y: 20}, {X: 60, Y: 20}},
			wantW:      100,
			wantH:      44,
		},
		"single member ignores padding": {
			layoutType: LayoutVertical,
			padding:    50,
			sizes:      []Vec2{{X: 12, Y: 34}},
			wantW:      12,
			wantH:      34,
		},
		"zero sized members still take padding": {
			layoutType: LayoutHorizontal,
			padding:    5,
			sizes:      []Vec2{{}, {}, {}},
			wantW:      10,
			wantH:      0,
		},
		"no members": {
			layoutType: LayoutHorizontal,
			padding:    10,
			wantW:      0,
			wantH:      0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			members := make([]*Element, len(tt.sizes))
			for i, s := range tt.sizes {
				members[i] = &Element{Rect: Rect{W: s.X, H: s.Y}}
			}

			w, h := groupDimensions(tt.layoutType, tt.padding, members)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Expected %gx%g, got %gx%g", tt.wantW, tt.wantH, w, h)
			}
		})
	}
}

func TestMeasureTextUsesFontSizes(t *testing.T) {
	g := &Group{ID: "g", Layout: LayoutData{FontSize: 30}, Members: []string{"inherit", "override", "blank", "fixed"}}
	elements := []*Element{
		{ID: "inherit", Text: "ab", AutoSize: true},
		{ID: "override", Text: "ab", AutoSize: true, FontSize: 12},
		{ID: "blank", AutoSize: true, Rect: Rect{W: 99, H: 99}},
		{ID: "fixed", Text: "ab", Rect: Rect{W: 7, H: 8}},
	}

	registry := NewRegistry()
	for _, e := range elements {
		_ = registry.Add(e)
	}
	store := NewStore()
	_ = store.Add(g)

	m := &recordingMeasurer{}
	p := newPass(registry, store, Vec2{X: 800, Y: 600}, m, layoutLogger)
	p.members["g"] = p.collectMembers(g)
	p.measureText(store.Groups())

	want := map[string]Rect{
		"inherit":  {W: 30, H: 30},
		"override": {W: 12, H: 12},
		"blank":    {},
		"fixed":    {W: 7, H: 8},
	}
	for _, e := range elements {
		if e.Rect != want[e.ID] {
			t.Errorf("%s: expected %+v, got %+v", e.ID, want[e.ID], e.Rect)
		}
	}
	if len(m.sizes) != 2 {
		t.Errorf("Expected 2 measurements, got %v", m.sizes)
	}
}

// recordingMeasurer measures every text as size x size and records sizes.
type recordingMeasurer struct {
	sizes []uint32
}

func (m *recordingMeasurer) MeasureText(text string, size uint32) Vec2 {
	m.sizes = append(m.sizes, size)
	return Vec2{X: float32(size), Y: float32(size)}
}
