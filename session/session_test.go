package session

import (
	"testing"

	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
)

var (
	red  = core.Cell{}.WithBg(core.Color{R: 255, A: 255})
	blue = core.Cell{}.WithBg(core.Color{B: 255, A: 255})
)

func visualMap(s *Session) map[core.Point]core.Cell {
	out := make(map[core.Point]core.Cell)
	s.Visual(func(p core.Point, c core.Cell) {
		out[p] = c
	})
	return out
}

func TestStrokeLifecycle(t *testing.T) {
	s := New(5, 5)
	s.SetTool(draw.ToolPencil)
	s.SetStyle(red)

	s.BeginStroke(core.Point{X: 0, Y: 0})
	if !s.Active() {
		t.Fatal("Expected an active stroke after BeginStroke")
	}
	s.ContinueStroke(core.Point{X: 2, Y: 0})
	s.EndStroke()

	if s.Active() {
		t.Error("Expected no active stroke after EndStroke")
	}
	for x := 0; x <= 2; x++ {
		if s.Raster().Get(core.Point{X: x, Y: 0}).Bg != red.Bg {
			t.Errorf("Expected committed red at (%d,0)", x)
		}
	}
}

func TestStrokeStyleCapturedAtStart(t *testing.T) {
	s := New(3, 3)
	s.SetTool(draw.ToolPencil)
	s.SetStyle(red)

	s.BeginStroke(core.Point{X: 0, Y: 0})
	s.SetStyle(blue) // changing the paint mid-stroke must not affect it
	s.EndStroke()

	if got := s.Raster().Get(core.Point{X: 0, Y: 0}).Bg; got != red.Bg {
		t.Errorf("Expected the style captured at stroke start, got %+v", got)
	}
}

func TestBeginDiscardsActiveStroke(t *testing.T) {
	s := New(5, 5)
	s.SetTool(draw.ToolPencil)
	s.SetStyle(red)

	s.BeginStroke(core.Point{X: 0, Y: 0})
	s.BeginStroke(core.Point{X: 4, Y: 4})
	s.EndStroke()

	if s.Raster().Get(core.Point{X: 0, Y: 0}) != (core.Cell{}) {
		t.Error("Discarded stroke must leave no trace")
	}
	if s.Raster().Get(core.Point{X: 4, Y: 4}).Bg != red.Bg {
		t.Error("Second stroke must commit normally")
	}
}

func TestIdleContinueAndEndAreNoOps(t *testing.T) {
	s := New(3, 3)
	s.ContinueStroke(core.Point{X: 1, Y: 1})
	s.EndStroke()

	if s.Raster().Get(core.Point{X: 1, Y: 1}) != (core.Cell{}) {
		t.Error("Idle continue/end must not paint")
	}
}

func TestEyedropSamplesStyle(t *testing.T) {
	s := New(3, 3)
	s.SetTool(draw.ToolFill)
	s.SetStyle(red)
	s.BeginStroke(core.Point{X: 0, Y: 0})
	s.EndStroke()

	s.SetTool(draw.ToolEyedrop)
	s.SetStyle(blue)
	s.BeginStroke(core.Point{X: 1, Y: 1})

	if s.Active() {
		t.Error("Eyedrop must not start a stroke")
	}
	if got := s.Style(); got.Bg != red.Bg {
		t.Errorf("Expected picked style red, got %+v", got)
	}
}

func TestVisualPreviewWins(t *testing.T) {
	s := New(4, 1)
	s.SetTool(draw.ToolLine)
	s.SetStyle(red)

	s.BeginStroke(core.Point{X: 0, Y: 0})
	s.ContinueStroke(core.Point{X: 2, Y: 0})

	vis := visualMap(s)
	for x := 0; x <= 2; x++ {
		if vis[core.Point{X: x, Y: 0}].Bg != red.Bg {
			t.Errorf("Expected preview at (%d,0)", x)
		}
	}
	if vis[core.Point{X: 3, Y: 0}] != (core.Cell{}) {
		t.Error("Cells outside the preview must show committed state")
	}

	// Preview is non-destructive: the raster is untouched until commit
	if s.Raster().Get(core.Point{X: 1, Y: 0}) != (core.Cell{}) {
		t.Error("Preview must not write to the committed raster")
	}
}

func TestSessionUndoRedo(t *testing.T) {
	s := New(3, 3)
	s.SetStyle(red)
	s.SetTool(draw.ToolPencil)
	s.BeginStroke(core.Point{X: 0, Y: 0})
	s.EndStroke()

	s.SetTool(draw.ToolFill)
	s.SetStyle(blue)
	s.BeginStroke(core.Point{X: 2, Y: 2})
	s.EndStroke()

	s.Undo()
	if s.Raster().Get(core.Point{X: 0, Y: 0}).Bg != red.Bg {
		t.Error("Undo must keep the pencil edit")
	}
	if s.Raster().Get(core.Point{X: 2, Y: 2}).Bg == blue.Bg {
		t.Error("Undo must remove the fill edit")
	}

	s.Redo()
	if s.Raster().Get(core.Point{X: 2, Y: 2}).Bg != blue.Bg {
		t.Error("Redo must reinstate the fill edit")
	}

	s.Undo()
	s.Undo()
	s.Undo() // below the floor, still fine
	s.Raster().Each(func(p core.Point, c core.Cell) {
		if c != (core.Cell{}) {
			t.Errorf("Expected blank raster after full undo, cell at %+v", p)
		}
	})
}
