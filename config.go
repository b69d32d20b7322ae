package menulayout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the TOML representation of a menu layout file.
//
//	[screen]
//	width = 1280
//	height = 720
//
//	[[group]]
//	id = "mainMenu"
//	alignment = "CENTER"
//	layout_type = "VERTICAL"
//	padding = 10
//
//	  [[group.element]]
//	  id = "newGame"
//	  text = "New Game"
//	  width = 200
//	  height = 40
type Config struct {
	Screen   ScreenConfig    `toml:"screen"`
	Groups   []GroupConfig   `toml:"group"`
	Elements []ElementConfig `toml:"element"` // Ungrouped, or referenced by group members
}

// ScreenConfig is the initial screen size. Zero values use the defaults.
type ScreenConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// GroupConfig describes one layout group.
type GroupConfig struct {
	ID              string  `toml:"id"`
	Alignment       string  `toml:"alignment"`   // Default CENTER
	LayoutType      string  `toml:"layout_type"` // Default HORIZONTAL
	Parent          string  `toml:"parent"`
	AlignmentOffset float32 `toml:"alignment_offset"`
	Padding         int     `toml:"padding"`
	PaddingToParent int     `toml:"padding_to_parent"`
	FontSize        uint32  `toml:"font_size"`

	// Elements are created and added to the group in order.
	Elements []ElementConfig `toml:"element"`
	// Members adds elements declared at the top level, after Elements.
	Members []string `toml:"members"`
}

// ElementConfig describes one element. An element with text and no size is
// sized from its text on every arrangement pass.
type ElementConfig struct {
	ID       string `toml:"id"`
	Text     string `toml:"text"`
	X        int    `toml:"x"`
	Y        int    `toml:"y"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	FontSize uint32 `toml:"font_size"`
}

// LoadConfig decodes a layout file. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("decode layout: %s", strict.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("decode layout: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile decodes the layout file at path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ScreenSize returns the configured screen size, falling back to the defaults.
func (c *Config) ScreenSize() Vec2 {
	size := Vec2{X: DefaultScreenWidth, Y: DefaultScreenHeight}
	if c.Screen.Width > 0 {
		size.X = float32(c.Screen.Width)
	}
	if c.Screen.Height > 0 {
		size.Y = float32(c.Screen.Height)
	}
	return size
}

// Build creates the element registry and descriptor store described by the
// configuration. Unknown alignment or layout type names, duplicate IDs and
// elements claimed by two groups are rejected here. References to missing
// parents or elements are not: they are reported when the layout is arranged.
func (c *Config) Build() (*Registry, *Store, error) {
	registry := NewRegistry()
	store := NewStore()

	for _, ec := range c.Elements {
		if err := registry.Add(ec.element()); err != nil {
			return nil, nil, err
		}
	}

	for i, gc := range c.Groups {
		group, err := gc.layout()
		if err != nil {
			return nil, nil, fmt.Errorf("group %d (%q): %w", i, gc.ID, err)
		}
		for _, ec := range gc.Elements {
			if err := registry.Add(ec.element()); err != nil {
				return nil, nil, fmt.Errorf("group %q: %w", gc.ID, err)
			}
			group.Members = append(group.Members, ec.ID)
		}
		group.Members = append(group.Members, gc.Members...)

		if err := store.Add(group); err != nil {
			return nil, nil, err
		}
	}

	return registry, store, nil
}

// NewFromConfig builds the configuration and returns an engine over it,
// sized to the configured screen. Options override the configured size.
func NewFromConfig(c *Config, opts ...EngineOption) (*Engine, error) {
	registry, store, err := c.Build()
	if err != nil {
		return nil, err
	}
	size := c.ScreenSize()
	opts = append([]EngineOption{WithScreenSize(size.X, size.Y)}, opts...)
	return New(registry, store, opts...), nil
}

func (gc GroupConfig) layout() (*Group, error) {
	align := AlignCenter
	if gc.Alignment != "" {
		a, err := ParseAlignment(gc.Alignment)
		if err != nil {
			return nil, err
		}
		align = a
	}

	layoutType := LayoutHorizontal
	if gc.LayoutType != "" {
		t, err := ParseLayoutType(gc.LayoutType)
		if err != nil {
			return nil, err
		}
		layoutType = t
	}

	return &Group{
		ID: gc.ID,
		Layout: LayoutData{
			Alignment:       align,
			Type:            layoutType,
			ParentID:        gc.Parent,
			AlignmentOffset: gc.AlignmentOffset,
			Padding:         float32(gc.Padding),
			PaddingToParent: float32(gc.PaddingToParent),
			FontSize:        gc.FontSize,
		},
	}, nil
}

func (ec ElementConfig) element() *Element {
	return &Element{
		ID: ec.ID,
		Rect: Rect{
			X: float32(ec.X),
			Y: float32(ec.Y),
			W: float32(ec.Width),
			H: float32(ec.Height),
		},
		Text:     ec.Text,
		AutoSize: ec.Text != "" && ec.Width == 0 && ec.Height == 0,
		FontSize: ec.FontSize,
	}
}
