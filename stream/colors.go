package stream

import (
	"io"

	"github.com/fatih/color"
)

// ColorClass names a colorable token class.
type ColorClass int

const (
	PunctColor ColorClass = iota
	KeyColor
	StringColor
	NumberColor
	BoolColor
	NullColor
)

// Colors maps token classes to terminal colors. Coloring is purely
// cosmetic: escape sequences go through the sink like any other bytes
// and count toward the output offset.
type Colors struct {
	Map map[ColorClass]*color.Color
}

// DefaultColors returns the default terminal palette.
func DefaultColors() *Colors {
	return &Colors{Map: map[ColorClass]*color.Color{
		PunctColor:  color.RGB(255, 0, 196),
		KeyColor:    color.RGB(196, 96, 16),
		StringColor: color.RGB(8, 196, 16),
		NumberColor: color.RGB(128, 216, 236),
		BoolColor:   color.New(color.FgCyan),
		NullColor:   color.RGB(168, 0, 196),
	}}
}

func (c *Colors) begin(w io.Writer, class ColorClass) {
	if col := c.Map[class]; col != nil {
		col.SetWriter(w)
	}
}

func (c *Colors) end(w io.Writer, class ColorClass) {
	if col := c.Map[class]; col != nil {
		col.UnsetWriter(w)
	}
}
