package menulayout_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/menulayout"
)

func buildLayout(t *testing.T, layout string) (*menulayout.Registry, *menulayout.Store, error) {
	t.Helper()
	cfg, err := menulayout.LoadConfig(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return cfg.Build()
}

func TestLoadConfig_Defaults(t *testing.T) {
	registry, store, err := buildLayout(t, `
[[group]]
id = "plain"

  [[group.element]]
  id = "a"
  width = 10
  height = 10
`)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	g, ok := store.Group("plain")
	if !ok {
		t.Fatal("group plain not built")
	}
	if g.Layout.Alignment != menulayout.AlignCenter {
		t.Errorf("Expected CENTER, got %s", g.Layout.Alignment)
	}
	if g.Layout.Type != menulayout.LayoutHorizontal {
		t.Errorf("Expected HORIZONTAL, got %s", g.Layout.Type)
	}
	if g.Layout.FontSize != menulayout.DefaultFontSize {
		t.Errorf("Expected font size %d, got %d", menulayout.DefaultFontSize, g.Layout.FontSize)
	}
	if registry.Len() != 1 {
		t.Errorf("Expected 1 element, got %d", registry.Len())
	}
}

func TestLoadConfig_AllFields(t *testing.T) {
	cfg, err := menulayout.LoadConfig(strings.NewReader(`
[screen]
width = 1024
height = 768

[[group]]
id = "root"
alignment = "top-left"
layout_type = "vertical"

[[group]]
id = "side"
alignment = "ALIGN_RIGHT_TO_PARENT"
layout_type = "HORIZONTAL"
parent = "root"
alignment_offset = 0.25
padding = 6
padding_to_parent = 12
font_size = 18
members = ["shared"]

  [[group.element]]
  id = "label"
  text = "Options"
  font_size = 22

[[element]]
id = "shared"
x = 3
y = 4
width = 50
height = 60
`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if got := cfg.ScreenSize(); got != (menulayout.Vec2{X: 1024, Y: 768}) {
		t.Errorf("Expected screen 1024x768, got %+v", got)
	}

	registry, store, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	root, _ := store.Group("root")
	if root.Layout.Alignment != menulayout.AlignTopLeft || root.Layout.Type != menulayout.LayoutVertical {
		t.Errorf("root: got %s %s", root.Layout.Alignment, root.Layout.Type)
	}

	side, _ := store.Group("side")
	want := menulayout.LayoutData{
		Alignment:       menulayout.AlignRightOfParent,
		Type:            menulayout.LayoutHorizontal,
		ParentID:        "root",
		AlignmentOffset: 0.25,
		Padding:         6,
		PaddingToParent: 12,
		FontSize:        18,
	}
	if side.Layout != want {
		t.Errorf("side layout:\n got  %+v\n want %+v", side.Layout, want)
	}

	// Nested elements come first, then top-level members.
	if strings.Join(side.Members, ",") != "label,shared" {
		t.Errorf("Expected members [label shared], got %v", side.Members)
	}

	label, _ := registry.Get("label")
	if !label.AutoSize || label.FontSize != 22 || label.Text != "Options" {
		t.Errorf("label: got %+v", label)
	}
	shared, _ := registry.Get("shared")
	if shared.AutoSize {
		t.Error("element with an explicit size should not be auto-sized")
	}
	if shared.Rect != (menulayout.Rect{X: 3, Y: 4, W: 50, H: 60}) {
		t.Errorf("shared: got %+v", shared.Rect)
	}
	if owner, _ := store.GroupOf("shared"); owner != "side" {
		t.Errorf("Expected shared owned by side, got %q", owner)
	}
}

func TestLoadConfig_ScreenDefaults(t *testing.T) {
	cfg, err := menulayout.LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := menulayout.Vec2{X: menulayout.DefaultScreenWidth, Y: menulayout.DefaultScreenHeight}
	if got := cfg.ScreenSize(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	_, err := menulayout.LoadConfig(strings.NewReader(`
[[group]]
id = "menu"
allignment = "CENTER"
`))
	if err == nil {
		t.Fatal("Expected an error for a misspelled key")
	}
	if !strings.Contains(err.Error(), "allignment") {
		t.Errorf("Expected the error to name the key, got %v", err)
	}
}

func TestLoadConfig_SyntaxErrorHasPosition(t *testing.T) {
	_, err := menulayout.LoadConfig(strings.NewReader("[[group]]\nid = \n"))
	if err == nil {
		t.Fatal("Expected a decode error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected the error to carry a line number, got %v", err)
	}
}

func TestBuild_Errors(t *testing.T) {
	type tc struct {
		layout string
		want   error
	}

	tests := map[string]tc{
		"unknown alignment": {
			layout: "[[group]]\nid = \"g\"\nalignment = \"MIDDLE\"\n",
			want:   menulayout.ErrUnknownAlignment,
		},
		"unknown layout type": {
			layout: "[[group]]\nid = \"g\"\nlayout_type = \"DIAGONAL\"\n",
			want:   menulayout.ErrUnknownLayoutType,
		},
		"duplicate group": {
			layout: "[[group]]\nid = \"g\"\n[[group]]\nid = \"g\"\n",
			want:   menulayout.ErrDuplicateGroup,
		},
		"duplicate element": {
			layout: "[[element]]\nid = \"e\"\n[[element]]\nid = \"e\"\n",
			want:   menulayout.ErrDuplicateElement,
		},
		"element in two groups": {
			layout: "[[element]]\nid = \"e\"\n[[group]]\nid = \"a\"\nmembers = [\"e\"]\n[[group]]\nid = \"b\"\nmembers = [\"e\"]\n",
			want:   menulayout.ErrElementInGroups,
		},
		"outer alignment without parent": {
			layout: "[[group]]\nid = \"g\"\nalignment = \"ALIGN_BELOW_PARENT\"\n",
			want:   menulayout.ErrOuterAlignmentWithoutParent,
		},
		"group without id": {
			layout: "[[group]]\nalignment = \"CENTER\"\n",
			want:   menulayout.ErrEmptyID,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := buildLayout(t, tt.layout)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBuild_DanglingReferencesAreDeferred(t *testing.T) {
	// Missing parents and members are not load errors; Arrange reports them.
	_, _, err := buildLayout(t, `
[[group]]
id = "g"
parent = "nowhere"
members = ["ghost"]
`)
	if err != nil {
		t.Errorf("Expected Build to accept dangling references, got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte("[screen]\nwidth = 320\nheight = 240\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := menulayout.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if got := cfg.ScreenSize(); got != (menulayout.Vec2{X: 320, Y: 240}) {
		t.Errorf("Expected 320x240, got %+v", got)
	}

	if _, err := menulayout.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestExampleLayoutArrangesCleanly(t *testing.T) {
	cfg, err := menulayout.LoadConfigFile(filepath.Join("example", "mainmenu.toml"))
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	engine, err := menulayout.NewFromConfig(cfg, menulayout.WithTextMeasurer(fixedWidthMeasurer{}))
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if err := engine.Arrange(); err != nil {
		t.Errorf("Expected the example layout to arrange without problems, got %v", err)
	}

	// The build bar sits on the bottom edge, the zone menu above it.
	build, _ := engine.GroupBounds("buildMenu")
	zones, _ := engine.GroupBounds("zoneSubMenu")
	if build.Bottom() != 720 {
		t.Errorf("Expected buildMenu on the bottom edge, got %+v", build)
	}
	if zones.Bottom()+8 != build.Y {
		t.Errorf("Expected zoneSubMenu 8px above buildMenu, got %+v and %+v", zones, build)
	}
}
