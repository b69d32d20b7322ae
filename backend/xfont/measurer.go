// Package xfont measures menu labels with OpenType fonts from golang.org/x/image.
package xfont

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/go-theft-auto/menulayout"
)

// dpi at which font sizes equal pixel sizes.
const dpi = 72

var _ menulayout.TextMeasurer = (*Measurer)(nil)

var fontLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Measurer implements menulayout.TextMeasurer for one font.
// Faces are created lazily, one per pixel size, and reused.
type Measurer struct {
	mu      sync.Mutex
	font    *opentype.Font
	faces   map[uint32]font.Face
	failed  map[uint32]error // sizes whose face could not be created
	newFace func(size uint32) (font.Face, error)
	logger  *slog.Logger
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithLogger sets the logger face creation failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Measurer) { m.logger = logger }
}

// New parses an OpenType or TrueType font.
func New(data []byte, opts ...Option) (*Measurer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("xfont: failed to parse font: %w", err)
	}
	m := &Measurer{
		font:   f,
		faces:  make(map[uint32]font.Face),
		failed: make(map[uint32]error),
		logger: fontLogger,
	}
	m.newFace = m.openFace
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Default returns a measurer for the Go Regular font.
func Default(opts ...Option) (*Measurer, error) {
	return New(goregular.TTF, opts...)
}

// MeasureText returns the size of text at size pixels. Lines separated by
// '\n' stack vertically. A size of zero measures as zero, and so does a size
// whose face cannot be created; that failure is logged once and kept in Err.
func (m *Measurer) MeasureText(text string, size uint32) menulayout.Vec2 {
	if text == "" || size == 0 {
		return menulayout.Vec2{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(size)
	if err != nil {
		return menulayout.Vec2{}
	}

	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	lineHeight := face.Metrics().Height.Ceil()

	return menulayout.Vec2{X: float32(width), Y: float32(lineHeight * len(lines))}
}

// Err returns the face creation failures seen so far, or nil.
func (m *Measurer) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := make([]error, 0, len(m.failed))
	for _, size := range slices.Sorted(maps.Keys(m.failed)) {
		errs = append(errs, m.failed[size])
	}
	return errors.Join(errs...)
}

// face returns the cached face for size, creating it on first use. A size
// that failed once is not retried. The caller must hold m.mu.
func (m *Measurer) face(size uint32) (font.Face, error) {
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	if err, ok := m.failed[size]; ok {
		return nil, err
	}
	face, err := m.newFace(size)
	if err != nil {
		err = fmt.Errorf("xfont: failed to create face at %dpx: %w", size, err)
		m.failed[size] = err
		m.logger.Warn("text measures as zero", "size", size, "err", err)
		return nil, err
	}
	m.faces[size] = face
	return face, nil
}

func (m *Measurer) openFace(size uint32) (font.Face, error) {
	return opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// Close releases every cached face.
func (m *Measurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for size, face := range m.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.faces, size)
	}
	clear(m.failed)
	return firstErr
}
