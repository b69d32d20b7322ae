package menulayout

import (
	"fmt"
	"strings"
)

// LayoutType defines the direction members of a group are stacked in.
type LayoutType uint8

const (
	LayoutHorizontal LayoutType = iota // Members stack left to right (default)
	LayoutVertical                     // Members stack top to bottom
)

var layoutTypeNames = map[LayoutType]string{
	LayoutHorizontal: "HORIZONTAL",
	LayoutVertical:   "VERTICAL",
}

// String returns the config spelling of the layout type.
func (t LayoutType) String() string {
	if name, ok := layoutTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("LayoutType(%d)", uint8(t))
}

// ParseLayoutType parses a layout type name such as "HORIZONTAL" or "vertical".
func ParseLayoutType(s string) (LayoutType, error) {
	key := normalizeName(s)
	for t, name := range layoutTypeNames {
		if name == key {
			return t, nil
		}
	}
	return LayoutHorizontal, fmt.Errorf("%w: %q", ErrUnknownLayoutType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t LayoutType) MarshalText() ([]byte, error) {
	name, ok := layoutTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayoutType, uint8(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown names are rejected so bad layout files fail at load time.
func (t *LayoutType) UnmarshalText(text []byte) error {
	parsed, err := ParseLayoutType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Alignment selects the anchor point a group is placed against.
//
// Inner alignments place the group inside its container (the screen, or the
// parent group's rectangle). Outer alignments place it next to the parent
// group and therefore need a parent.
type Alignment uint8

const (
	AlignCenter        Alignment = iota // CENTER
	AlignTopLeft                        // TOP_LEFT
	AlignTopCenter                      // TOP_CENTER
	AlignTopRight                       // TOP_RIGHT
	AlignCenterLeft                     // CENTER_LEFT
	AlignCenterRight                    // CENTER_RIGHT
	AlignBottomLeft                     // BOTTOM_LEFT
	AlignBottomCenter                   // BOTTOM_CENTER
	AlignBottomRight                    // BOTTOM_RIGHT
	AlignAboveParent                    // ALIGN_ABOVE_PARENT
	AlignBelowParent                    // ALIGN_BELOW_PARENT
	AlignLeftOfParent                   // ALIGN_LEFT_TO_PARENT
	AlignRightOfParent                  // ALIGN_RIGHT_TO_PARENT
)

var alignmentNames = map[Alignment]string{
	AlignCenter:        "CENTER",
	AlignTopLeft:       "TOP_LEFT",
	AlignTopCenter:     "TOP_CENTER",
	AlignTopRight:      "TOP_RIGHT",
	AlignCenterLeft:    "CENTER_LEFT",
	AlignCenterRight:   "CENTER_RIGHT",
	AlignBottomLeft:    "BOTTOM_LEFT",
	AlignBottomCenter:  "BOTTOM_CENTER",
	AlignBottomRight:   "BOTTOM_RIGHT",
	AlignAboveParent:   "ALIGN_ABOVE_PARENT",
	AlignBelowParent:   "ALIGN_BELOW_PARENT",
	AlignLeftOfParent:  "ALIGN_LEFT_TO_PARENT",
	AlignRightOfParent: "ALIGN_RIGHT_TO_PARENT",
}

// String returns the config spelling of the alignment.
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// ParseAlignment parses an alignment name. Matching ignores case and treats
// '-' and '_' alike, so "top-left" and "TOP_LEFT" are the same alignment.
func ParseAlignment(s string) (Alignment, error) {
	key := normalizeName(s)
	for a, name := range alignmentNames {
		if name == key {
			return a, nil
		}
	}
	return AlignCenter, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	name, ok := alignmentNames[a]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlignment, uint8(a))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// IsOuter reports whether the alignment places the group outside its parent.
func (a Alignment) IsOuter() bool {
	switch a {
	case AlignAboveParent, AlignBelowParent, AlignLeftOfParent, AlignRightOfParent:
		return true
	default:
		return false
	}
}

// inner maps an outer alignment to the inner edge used when the group has to
// be placed against the screen instead of its parent.
func (a Alignment) inner() Alignment {
	switch a {
	case AlignAboveParent:
		return AlignTopCenter
	case AlignBelowParent:
		return AlignBottomCenter
	case AlignLeftOfParent:
		return AlignCenterLeft
	case AlignRightOfParent:
		return AlignCenterRight
	default:
		return a
	}
}

// edge describes where a box sits on one axis of its anchor.
type edge uint8

const (
	edgeCenter edge = iota
	edgeStart       // left or top
	edgeEnd         // right or bottom
)

// edges returns the horizontal and vertical edges named by the alignment.
// For outer alignments the edge is the side facing the parent.
func (a Alignment) edges() (h, v edge) {
	switch a {
	case AlignTopLeft:
		return edgeStart, edgeStart
	case AlignTopCenter:
		return edgeCenter, edgeStart
	case AlignTopRight:
		return edgeEnd, edgeStart
	case AlignCenterLeft:
		return edgeStart, edgeCenter
	case AlignCenterRight:
		return edgeEnd, edgeCenter
	case AlignBottomLeft:
		return edgeStart, edgeEnd
	case AlignBottomCenter:
		return edgeCenter, edgeEnd
	case AlignBottomRight:
		return edgeEnd, edgeEnd
	case AlignAboveParent:
		return edgeCenter, edgeEnd
	case AlignBelowParent:
		return edgeCenter, edgeStart
	case AlignLeftOfParent:
		return edgeEnd, edgeCenter
	case AlignRightOfParent:
		return edgeStart, edgeCenter
	default:
		return edgeCenter, edgeCenter
	}
}

// offsetsVertically reports whether AlignmentOffset shifts the group along the
// y axis. Groups pinned to a left or right side slide vertically; all others
// slide horizontally.
func (a Alignment) offsetsVertically() bool {
	switch a {
	case AlignCenterLeft, AlignCenterRight, AlignLeftOfParent, AlignRightOfParent:
		return true
	default:
		return false
	}
}

// DefaultFontSize is the text size used when a group does not set one.
const DefaultFontSize uint32 = 20

// LayoutData holds the arrangement rules of one layout group.
type LayoutData struct {
	Alignment Alignment  // Anchor rule
	Type      LayoutType // Stacking direction

	// ParentID names the group this group is aligned to. Empty means the
	// group is aligned to the screen.
	ParentID string

	// AlignmentOffset shifts the group by a fraction of the container size
	// (0.25 = 25%). Negative values shift left or up.
	AlignmentOffset float32

	Padding         float32 // Gap between members, in pixels
	PaddingToParent float32 // Gap between the group and its parent, in pixels

	// Derived by the dimension pass; do not set by hand.
	GroupWidth  float32
	GroupHeight float32

	FontSize uint32 // Default text size for members
}

// Group is a named collection of elements arranged under one LayoutData.
type Group struct {
	ID      string
	Layout  LayoutData
	Members []string // Element IDs in placement order
}

// normalizeName upper-cases a config name and maps '-' and spaces to '_'.
func normalizeName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
