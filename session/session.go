// Package session sequences tools, strokes, and the undo buffer into
// the press→drag→release lifecycle a UI drives.
package session

import (
	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
	"github.com/lixenwraith/grid-painter/history"
)

// Session owns the committed raster, the undo buffer, the current tool
// and paint style, and at most one in-progress stroke. It is the sole
// mutator of all of them; the UI only issues calls against it.
type Session struct {
	tool  draw.Tool
	paint core.Cell

	active draw.Event
	style  core.Cell // paint style captured at stroke start

	raster *core.Raster
	undo   *history.Buffer
}

// New creates a session over a fresh transparent raster
func New(width, height int) *Session {
	r := core.NewRaster(width, height)
	return &Session{
		raster: r,
		undo:   history.New(r),
	}
}

// Tool returns the selected tool
func (s *Session) Tool() draw.Tool {
	return s.tool
}

// SetTool selects the tool used by the next BeginStroke
func (s *Session) SetTool(t draw.Tool) {
	s.tool = t
}

// Style returns the paint style applied to the next stroke
func (s *Session) Style() core.Cell {
	return s.paint
}

// SetStyle sets the paint style applied to the next stroke. The style
// is fully resolved by the caller; the session never sees palette
// indices.
func (s *Session) SetStyle(c core.Cell) {
	s.paint = c
}

// Raster returns the committed raster
func (s *Session) Raster() *core.Raster {
	return s.raster
}

// Active reports whether a stroke is in progress
func (s *Session) Active() bool {
	return s.active != nil
}

// BeginStroke starts a stroke at p with the selected tool, capturing
// the paint style once for the stroke's lifetime. A stroke already in
// progress is silently discarded. With the eyedrop tool the cell under
// p becomes the paint style and no stroke starts.
func (s *Session) BeginStroke(p core.Point) {
	s.active = nil
	if s.tool == draw.ToolEyedrop {
		s.paint = s.raster.Get(p)
		return
	}
	s.active = draw.Start(s.tool, p)
	s.style = s.paint
}

// ContinueStroke forwards drag motion to the in-progress stroke.
// No-op when none is active.
func (s *Session) ContinueStroke(p core.Point) {
	if s.active != nil {
		s.active.Continue(p)
	}
}

// EndStroke commits the in-progress stroke to the raster and the undo
// buffer. No-op when none is active.
func (s *Session) EndStroke() {
	if s.active == nil {
		return
	}
	edit := draw.Edit{Event: s.active, Style: s.style}
	edit.Apply(s.raster)
	s.undo.Commit(edit)
	s.active = nil
}

// Undo replaces the committed raster with the undo buffer's replay
// minus the newest edit
func (s *Session) Undo() {
	s.raster = s.undo.Undo()
}

// Redo reinstates the most recently undone edit
func (s *Session) Redo() {
	s.raster = s.undo.Redo()
}

// Visual visits the full current grid: the committed raster overlaid
// with the in-progress stroke's preview. Preview wins at the cells it
// covers.
func (s *Session) Visual(visit func(core.Point, core.Cell)) {
	var overlay map[core.Point]core.Cell
	if s.active != nil {
		overlay = make(map[core.Point]core.Cell)
		s.active.Preview(s.raster, s.style, func(p core.Point, c core.Cell) {
			overlay[p] = c
		})
	}
	s.raster.Each(func(p core.Point, c core.Cell) {
		if pc, ok := overlay[p]; ok {
			visit(p, pc)
			return
		}
		visit(p, c)
	})
}
