// Example opens a window showing the geometry of an embedded menu layout.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Group bounds are outlined in magenta and elements in cyan. Resize the
// window to watch the layout re-arrange; hover an element to highlight it.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/menulayout"
	"github.com/go-theft-auto/menulayout/backend/opengl"
	"github.com/go-theft-auto/menulayout/backend/xfont"
)

//go:embed mainmenu.toml
var mainMenuLayout []byte

const windowTitle = "menulayout example"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	layoutPath := flag.String("layout", "", "layout file to show (default: embedded main menu)")
	verbose := flag.Bool("v", false, "log every resolved group")
	flag.Parse()

	menulayout.SetVerbose(*verbose)

	if err := run(*layoutPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(layoutPath string) error {
	cfg, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}

	measurer, err := xfont.Default()
	if err != nil {
		return err
	}
	defer measurer.Close()

	engine, err := menulayout.NewFromConfig(cfg, menulayout.WithTextMeasurer(measurer))
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	size := cfg.ScreenSize()
	window, err := glfw.CreateWindow(int(size.X), int(size.Y), windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbW, fbH := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbW, fbH)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	// The adapter runs the first Arrange and re-arranges on every resize.
	adapter := opengl.NewWindowAdapter(window, engine, renderer)
	if err := adapter.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "layout problems:", err)
	}

	style := menulayout.DefaultOverlayStyle()
	var overlay menulayout.Overlay

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		overlay.Build(engine, adapter.Hovered(), style)
		if err := renderer.Render(&overlay); err != nil {
			return fmt.Errorf("overlay render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func loadLayout(path string) (*menulayout.Config, error) {
	if path != "" {
		return menulayout.LoadConfigFile(path)
	}
	return menulayout.LoadConfig(bytes.NewReader(mainMenuLayout))
}
