package opengl

import (
	"testing"

	"github.com/go-theft-auto/menulayout"
)

func TestPackVertices(t *testing.T) {
	white := menulayout.Color{R: 255, G: 255, B: 255, A: 255}

	tests := map[string]struct {
		pos  menulayout.Vec2
		want [2]float32
	}{
		"top left":     {pos: menulayout.Vec2{X: 0, Y: 0}, want: [2]float32{-1, 1}},
		"bottom right": {pos: menulayout.Vec2{X: 800, Y: 600}, want: [2]float32{1, -1}},
		"center":       {pos: menulayout.Vec2{X: 400, Y: 300}, want: [2]float32{0, 0}},
		"quarter":      {pos: menulayout.Vec2{X: 200, Y: 450}, want: [2]float32{-0.5, -0.5}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := packVertices(nil, []menulayout.Vertex{{Pos: tt.pos, Color: white}}, 800, 600)
			if len(got) != floatsPerVertex {
				t.Fatalf("Expected %d floats, got %d", floatsPerVertex, len(got))
			}
			if got[0] != tt.want[0] || got[1] != tt.want[1] {
				t.Errorf("Expected clip position %v, got (%g, %g)", tt.want, got[0], got[1])
			}
		})
	}
}

func TestPackVertices_ColorAndAppend(t *testing.T) {
	verts := []menulayout.Vertex{
		{Color: menulayout.Color{R: 255, G: 0, B: 51, A: 0}},
		{Color: menulayout.Color{A: 255}},
	}

	dst := make([]float32, 0, 32)
	dst = packVertices(dst, verts[:1], 100, 100)
	dst = packVertices(dst, verts[1:], 100, 100)

	if len(dst) != 2*floatsPerVertex {
		t.Fatalf("Expected %d floats, got %d", 2*floatsPerVertex, len(dst))
	}
	want := []float32{1, 0, 0.2, 0}
	for i, w := range want {
		if dst[2+i] != w {
			t.Errorf("color channel %d: expected %g, got %g", i, w, dst[2+i])
		}
	}
	if dst[floatsPerVertex+5] != 1 {
		t.Errorf("Expected opaque alpha 1 on the second vertex, got %g", dst[floatsPerVertex+5])
	}
}
