package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/menulayout"
)

// WindowAdapter connects a GLFW window to a layout engine.
// Framebuffer resizes update the screen size and re-arrange the layout;
// cursor movement hit-tests the arranged elements.
type WindowAdapter struct {
	window   *glfw.Window
	engine   *menulayout.Engine
	renderer *Renderer // optional

	hovered string
	lastErr error
}

// NewWindowAdapter installs the window callbacks and runs the first Arrange
// at the window's current framebuffer size. renderer may be nil.
func NewWindowAdapter(window *glfw.Window, engine *menulayout.Engine, renderer *Renderer) *WindowAdapter {
	adapter := &WindowAdapter{
		window:   window,
		engine:   engine,
		renderer: renderer,
	}

	window.SetFramebufferSizeCallback(adapter.framebufferSizeCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	w, h := window.GetFramebufferSize()
	adapter.resize(w, h)

	return adapter
}

// Hovered returns the ID of the element under the cursor, or "".
func (a *WindowAdapter) Hovered() string {
	return a.hovered
}

// Err returns the configuration problems reported by the last Arrange.
func (a *WindowAdapter) Err() error {
	return a.lastErr
}

func (a *WindowAdapter) resize(width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized; keep the last layout.
		return
	}
	a.engine.SetScreenSize(float32(width), float32(height))
	if a.renderer != nil {
		a.renderer.Resize(width, height)
	}
	a.lastErr = a.engine.Arrange()
}

func (a *WindowAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	a.resize(width, height)
}

func (a *WindowAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	// Cursor positions are in window coordinates; the layout is in
	// framebuffer pixels, which differ on HiDPI displays.
	winW, winH := w.GetSize()
	fbW, fbH := w.GetFramebufferSize()
	sx, sy := float32(1), float32(1)
	if winW > 0 && winH > 0 {
		sx = float32(fbW) / float32(winW)
		sy = float32(fbH) / float32(winH)
	}

	p := menulayout.Vec2{X: float32(xpos) * sx, Y: float32(ypos) * sy}
	if el, ok := a.engine.Registry().ElementAt(p); ok {
		a.hovered = el.ID
	} else {
		a.hovered = ""
	}
}
