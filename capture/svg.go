// Package capture writes the current frame to a durable vector file.
// The ring renderer stays format-free; capture only supplies a Canvas
// backend and the file lifecycle around one render pass.
package capture

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"
	"github.com/google/uuid"

	"github.com/pthm-cable/ringpack/renderer"
)

// Writer saves SVG captures into a directory.
type Writer struct {
	dir string
}

// NewWriter creates a capture writer. The directory is created lazily on
// the first save.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Save renders one frame through an SVG canvas and writes it to a
// uniquely named file. Returns the written path.
func (w *Writer) Save(width, height int, draw func(renderer.Canvas)) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("creating capture directory: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("rings-%s.svg", uuid.NewString()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating capture file: %w", err)
	}
	defer f.Close()

	doc := svg.New(f)
	doc.Start(width, height)
	draw(&svgCanvas{doc: doc})
	doc.End()

	return path, nil
}

// svgCanvas adapts an SVG document to the renderer.Canvas interface.
type svgCanvas struct {
	doc *svg.SVG
}

func (c *svgCanvas) StrokeCircle(x, y, r float64) {
	c.doc.Circle(round(x), round(y), round(r), "fill:none;stroke:black")
}

func round(v float64) int {
	return int(math.Round(v))
}
