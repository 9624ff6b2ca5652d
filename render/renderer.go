// Package render draws the session's visual grid onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
	"github.com/lixenwraith/grid-painter/session"
)

// CanvasOffsetY reserves the top row for the status bar
const CanvasOffsetY = 1

// Backdrop is the color transparent cells flatten against on screen
var Backdrop = core.RGB{R: 26, G: 27, B: 38}

// statusBg is the status bar background
var statusBg = core.RGB{R: 52, G: 54, B: 70}

// Status is the UI state shown in the status bar
type Status struct {
	Tool    draw.Tool
	Fg      core.Color
	Bg      core.Color
	Ch      rune
	Message string
}

// Renderer owns the screen drawing for one app
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer over an initialized screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders the status bar and the full canvas, then flips the
// screen
func (r *Renderer) Draw(s *session.Session, st Status) {
	r.screen.Clear()
	r.drawStatus(st)

	s.Visual(func(p core.Point, c core.Cell) {
		ch, style := Flatten(c)
		r.screen.SetContent(p.X, p.Y+CanvasOffsetY, ch, nil, style)
	})

	r.screen.Show()
}

// Flatten converts a styled cell into the opaque rune and style a
// terminal can display. Translucent channels are composited against
// the backdrop.
func Flatten(c core.Cell) (rune, tcell.Style) {
	bg := Backdrop
	if c.Has(core.FieldBg) {
		bg = core.FlattenOver(c.Bg, Backdrop)
	}

	fg := core.RGB{R: 200, G: 200, B: 200}
	if c.Has(core.FieldFg) {
		fg = core.FlattenOver(c.Fg, bg)
	}

	style := tcell.StyleDefault.
		Foreground(toTcell(fg)).
		Background(toTcell(bg))
	if c.Has(core.FieldBold) && c.Bold {
		style = style.Bold(true)
	}
	if c.Has(core.FieldUnderline) && c.Underline {
		style = style.Underline(true)
	}

	ch := ' '
	if c.Has(core.FieldChar) {
		ch = c.Ch
	}
	return ch, style
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (r *Renderer) drawStatus(st Status) {
	width, _ := r.screen.Size()
	barStyle := tcell.StyleDefault.
		Foreground(toTcell(core.RGB{R: 220, G: 220, B: 220})).
		Background(toTcell(statusBg))

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, barStyle)
	}

	x := r.drawText(1, 0, fmt.Sprintf("[%s]", st.Tool), barStyle.Bold(true))
	x = r.drawText(x+1, 0, "fg", barStyle)
	x = r.drawSwatch(x, st.Fg)
	x = r.drawText(x, 0, fmt.Sprintf("%d%%", opacityPercent(st.Fg.A)), barStyle)
	x = r.drawText(x+1, 0, "bg", barStyle)
	x = r.drawSwatch(x, st.Bg)
	x = r.drawText(x, 0, fmt.Sprintf("%d%%", opacityPercent(st.Bg.A)), barStyle)
	x = r.drawText(x+1, 0, "ch", barStyle)
	r.screen.SetContent(x, 0, st.Ch, nil, barStyle)
	x += runewidth.RuneWidth(st.Ch)

	if st.Message != "" {
		msg := st.Message
		if w := runewidth.StringWidth(msg); x+2+w > width {
			msg = runewidth.Truncate(msg, width-x-2, "…")
		}
		r.drawText(x+2, 0, msg, barStyle)
	}
}

// drawText draws s at (x, y) and returns the x after the text
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

// drawSwatch draws a two-cell color sample flattened over the backdrop
func (r *Renderer) drawSwatch(x int, c core.Color) int {
	sw := tcell.StyleDefault.Background(toTcell(core.FlattenOver(c, Backdrop)))
	r.screen.SetContent(x, 0, ' ', nil, sw)
	r.screen.SetContent(x+1, 0, ' ', nil, sw)
	return x + 2
}

func opacityPercent(a uint8) int {
	return int(a) * 100 / 255
}
