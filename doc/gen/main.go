// Command gen arranges the example menu layout at several window sizes,
// draws the debug overlay, captures framebuffer pixels and saves JPEG
// snapshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/menulayout"
	"github.com/go-theft-auto/menulayout/backend/opengl"
	"github.com/go-theft-auto/menulayout/backend/xfont"
)

const layoutPath = "example/mainmenu.toml"

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// snapshot defines a single layout capture.
type snapshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
}

var snapshots = []snapshot{
	{name: "layout_1280x720", width: 1280, height: 720},
	{name: "layout_1920x1080", width: 1920, height: 1080},
	{name: "layout_800x600", width: 800, height: 600},
	{name: "layout_640x960", width: 640, height: 960},
}

func run() error {
	cfg, err := menulayout.LoadConfigFile(layoutPath)
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

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	// Large enough for the biggest snapshot; each capture uses a sub-viewport.
	window, err := glfw.CreateWindow(1920, 1080, "snapshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(1280, 720)
	if err != nil {
		return fmt.Errorf("overlay renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, s := range snapshots {
		if err := capture(engine, renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d snapshots in %s/\n", len(snapshots), outDir)
	return nil
}

func capture(engine *menulayout.Engine, renderer *opengl.Renderer, s snapshot, outDir string) error {
	engine.SetScreenSize(float32(s.width), float32(s.height))
	if err := engine.Arrange(); err != nil {
		// Degraded groups are still drawn; report and keep going.
		fmt.Fprintf(os.Stderr, "  %s: %v\n", s.name, err)
	}
	renderer.Resize(s.width, s.height)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	var overlay menulayout.Overlay
	overlay.Build(engine, "", menulayout.DefaultOverlayStyle())
	if err := renderer.Render(&overlay); err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows start at the bottom.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
