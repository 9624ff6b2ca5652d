package session

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
	"github.com/lixenwraith/grid-painter/history"
)

// State is the serializable session state: tool, paint style, and the
// replay parts of the undo buffer. The committed raster is not stored;
// it is rebuilt by replay on restore.
type State struct {
	Width   int         `toml:"width"`
	Height  int         `toml:"height"`
	Tool    string      `toml:"tool"`
	Style   CellState   `toml:"style"`
	Initial []CellAt    `toml:"initial,omitempty"`
	History []EditState `toml:"history,omitempty"`
	Redo    []EditState `toml:"redo,omitempty"`
}

// ColorState is a serializable color with alpha
type ColorState struct {
	Hex   string `toml:"hex"`
	Alpha uint8  `toml:"alpha"`
}

// CellState is a serializable styled cell; nil pointers are unset
// fields
type CellState struct {
	Char      *string     `toml:"char,omitempty"`
	Fg        *ColorState `toml:"fg,omitempty"`
	Bg        *ColorState `toml:"bg,omitempty"`
	Bold      *bool       `toml:"bold,omitempty"`
	Underline *bool       `toml:"underline,omitempty"`
}

// CellAt is a non-default cell of the initial raster
type CellAt struct {
	X    int       `toml:"x"`
	Y    int       `toml:"y"`
	Cell CellState `toml:"cell"`
}

// PointState is a serializable coordinate
type PointState struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// VisitState is a coordinate with a pencil visit count
type VisitState struct {
	X int `toml:"x"`
	Y int `toml:"y"`
	N int `toml:"n"`
}

// EditState is one committed edit, tagged by tool kind. Only the
// fields of the matching kind are set.
type EditState struct {
	Kind   string       `toml:"kind"`
	Style  CellState    `toml:"style"`
	Visits []VisitState `toml:"visits,omitempty"` // pencil
	Points []PointState `toml:"points,omitempty"` // erase
	Last   *PointState  `toml:"last,omitempty"`   // pencil, erase
	From   *PointState  `toml:"from,omitempty"`   // line
	To     *PointState  `toml:"to,omitempty"`     // line
	Seed   *PointState  `toml:"seed,omitempty"`   // fill
}

// Snapshot captures the session's full replayable state
func Snapshot(s *Session) State {
	st := State{
		Width:  s.raster.Width(),
		Height: s.raster.Height(),
		Tool:   s.tool.String(),
		Style:  snapshotCell(s.paint),
	}

	s.undo.Initial().Each(func(p core.Point, c core.Cell) {
		if c != (core.Cell{}) {
			st.Initial = append(st.Initial, CellAt{X: p.X, Y: p.Y, Cell: snapshotCell(c)})
		}
	})

	for _, e := range s.undo.History() {
		st.History = append(st.History, snapshotEdit(e))
	}
	for _, e := range s.undo.RedoStack() {
		st.Redo = append(st.Redo, snapshotEdit(e))
	}

	return st
}

// Restore rebuilds a session from a snapshot. The committed raster is
// reconstructed by replaying the history onto the initial raster.
func Restore(st State) (*Session, error) {
	if st.Width <= 0 || st.Height <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", st.Width, st.Height)
	}
	tool, ok := draw.ParseTool(st.Tool)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", st.Tool)
	}
	paint, err := restoreCell(st.Style)
	if err != nil {
		return nil, fmt.Errorf("paint style: %w", err)
	}

	initial := core.NewRaster(st.Width, st.Height)
	for _, ca := range st.Initial {
		c, err := restoreCell(ca.Cell)
		if err != nil {
			return nil, fmt.Errorf("initial cell (%d,%d): %w", ca.X, ca.Y, err)
		}
		initial.Set(core.Point{X: ca.X, Y: ca.Y}, c)
	}

	hist, err := restoreEdits(st.History, st.Width, st.Height)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	redo, err := restoreEdits(st.Redo, st.Width, st.Height)
	if err != nil {
		return nil, fmt.Errorf("redo: %w", err)
	}

	undo := history.Restore(initial, hist, redo)
	return &Session{
		tool:   tool,
		paint:  paint,
		raster: undo.Replay(),
		undo:   undo,
	}, nil
}

func snapshotCell(c core.Cell) CellState {
	var st CellState
	if c.Has(core.FieldChar) {
		ch := string(c.Ch)
		st.Char = &ch
	}
	if c.Has(core.FieldFg) {
		st.Fg = &ColorState{Hex: c.Fg.RGB().Hex(), Alpha: c.Fg.A}
	}
	if c.Has(core.FieldBg) {
		st.Bg = &ColorState{Hex: c.Bg.RGB().Hex(), Alpha: c.Bg.A}
	}
	if c.Has(core.FieldBold) {
		b := c.Bold
		st.Bold = &b
	}
	if c.Has(core.FieldUnderline) {
		u := c.Underline
		st.Underline = &u
	}
	return st
}

func restoreCell(st CellState) (core.Cell, error) {
	var c core.Cell
	if st.Char != nil {
		runes := []rune(*st.Char)
		if len(runes) != 1 {
			return core.Cell{}, fmt.Errorf("cell char must be one rune, got %q", *st.Char)
		}
		c = c.WithChar(runes[0])
	}
	if st.Fg != nil {
		rgb, err := core.ParseHex(st.Fg.Hex)
		if err != nil {
			return core.Cell{}, err
		}
		c = c.WithFg(rgb.WithAlpha(st.Fg.Alpha))
	}
	if st.Bg != nil {
		rgb, err := core.ParseHex(st.Bg.Hex)
		if err != nil {
			return core.Cell{}, err
		}
		c = c.WithBg(rgb.WithAlpha(st.Bg.Alpha))
	}
	if st.Bold != nil {
		c = c.WithBold(*st.Bold)
	}
	if st.Underline != nil {
		c = c.WithUnderline(*st.Underline)
	}
	return c, nil
}

func snapshotEdit(e draw.Edit) EditState {
	st := EditState{Style: snapshotCell(e.Style)}

	switch ev := e.Event.(type) {
	case *draw.Pencil:
		st.Kind = draw.ToolPencil.String()
		for p, n := range ev.Counts {
			st.Visits = append(st.Visits, VisitState{X: p.X, Y: p.Y, N: n})
		}
		sort.Slice(st.Visits, func(i, j int) bool {
			if st.Visits[i].Y != st.Visits[j].Y {
				return st.Visits[i].Y < st.Visits[j].Y
			}
			return st.Visits[i].X < st.Visits[j].X
		})
		st.Last = &PointState{X: ev.Last.X, Y: ev.Last.Y}
	case *draw.Line:
		st.Kind = draw.ToolLine.String()
		st.From = &PointState{X: ev.From.X, Y: ev.From.Y}
		st.To = &PointState{X: ev.To.X, Y: ev.To.Y}
	case *draw.Fill:
		st.Kind = draw.ToolFill.String()
		st.Seed = &PointState{X: ev.Seed.X, Y: ev.Seed.Y}
	case *draw.Erase:
		st.Kind = draw.ToolErase.String()
		for p := range ev.Visited {
			st.Points = append(st.Points, PointState{X: p.X, Y: p.Y})
		}
		sort.Slice(st.Points, func(i, j int) bool {
			if st.Points[i].Y != st.Points[j].Y {
				return st.Points[i].Y < st.Points[j].Y
			}
			return st.Points[i].X < st.Points[j].X
		})
		st.Last = &PointState{X: ev.Last.X, Y: ev.Last.Y}
	}

	return st
}

func restoreEdits(sts []EditState, width, height int) ([]draw.Edit, error) {
	if len(sts) == 0 {
		return nil, nil
	}
	edits := make([]draw.Edit, 0, len(sts))
	for i, st := range sts {
		e, err := restoreEdit(st, width, height)
		if err != nil {
			return nil, fmt.Errorf("edit %d: %w", i, err)
		}
		edits = append(edits, e)
	}
	return edits, nil
}

func restoreEdit(st EditState, width, height int) (draw.Edit, error) {
	style, err := restoreCell(st.Style)
	if err != nil {
		return draw.Edit{}, err
	}

	var event draw.Event
	switch st.Kind {
	case draw.ToolPencil.String():
		if st.Last == nil {
			return draw.Edit{}, fmt.Errorf("pencil edit missing last coordinate")
		}
		ev := &draw.Pencil{
			Counts: make(map[core.Point]int, len(st.Visits)),
			Last:   core.Point{X: st.Last.X, Y: st.Last.Y},
		}
		for _, v := range st.Visits {
			if v.N <= 0 {
				return draw.Edit{}, fmt.Errorf("pencil visit count %d at (%d,%d)", v.N, v.X, v.Y)
			}
			ev.Counts[core.Point{X: v.X, Y: v.Y}] = v.N
		}
		event = ev
	case draw.ToolLine.String():
		if st.From == nil || st.To == nil {
			return draw.Edit{}, fmt.Errorf("line edit missing endpoints")
		}
		event = &draw.Line{
			From: core.Point{X: st.From.X, Y: st.From.Y},
			To:   core.Point{X: st.To.X, Y: st.To.Y},
		}
	case draw.ToolFill.String():
		if st.Seed == nil {
			return draw.Edit{}, fmt.Errorf("fill edit missing seed")
		}
		// Replay hands the seed straight to FloodFill, which requires
		// an in-bounds seed
		if st.Seed.X < 0 || st.Seed.X >= width || st.Seed.Y < 0 || st.Seed.Y >= height {
			return draw.Edit{}, fmt.Errorf("fill seed (%d,%d) outside %dx%d raster", st.Seed.X, st.Seed.Y, width, height)
		}
		event = &draw.Fill{Seed: core.Point{X: st.Seed.X, Y: st.Seed.Y}}
	case draw.ToolErase.String():
		if st.Last == nil {
			return draw.Edit{}, fmt.Errorf("erase edit missing last coordinate")
		}
		ev := &draw.Erase{
			Visited: make(map[core.Point]struct{}, len(st.Points)),
			Last:    core.Point{X: st.Last.X, Y: st.Last.Y},
		}
		for _, p := range st.Points {
			ev.Visited[core.Point{X: p.X, Y: p.Y}] = struct{}{}
		}
		event = ev
	default:
		return draw.Edit{}, fmt.Errorf("unknown edit kind %q", st.Kind)
	}

	return draw.Edit{Event: event, Style: style}, nil
}
