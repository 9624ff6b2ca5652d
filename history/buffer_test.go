package history

import (
	"testing"

	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
)

var (
	red   = core.Cell{}.WithBg(core.Color{R: 255, A: 255})
	green = core.Cell{}.WithBg(core.Color{G: 255, A: 255})
)

func pencilAt(p core.Point, style core.Cell) draw.Edit {
	return draw.Edit{Event: draw.StartPencil(p), Style: style}
}

func fillAt(p core.Point, style core.Cell) draw.Edit {
	return draw.Edit{Event: draw.StartFill(p), Style: style}
}

func rastersEqual(a, b *core.Raster) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	equal := true
	a.Each(func(p core.Point, c core.Cell) {
		if b.Get(p) != c {
			equal = false
		}
	})
	return equal
}

func TestReplayMatchesIncremental(t *testing.T) {
	incremental := core.NewRaster(4, 4)
	b := New(incremental)

	edits := []draw.Edit{
		pencilAt(core.Point{X: 0, Y: 0}, red),
		fillAt(core.Point{X: 3, Y: 3}, green),
		pencilAt(core.Point{X: 1, Y: 2}, red),
	}
	for _, e := range edits {
		e.Apply(incremental)
		b.Commit(e)
	}

	if !rastersEqual(b.Replay(), incremental) {
		t.Error("Replay must reproduce the incrementally built raster")
	}
}

func TestUndoRedoInverse(t *testing.T) {
	b := New(core.NewRaster(4, 4))
	b.Commit(pencilAt(core.Point{X: 0, Y: 0}, red))
	b.Commit(pencilAt(core.Point{X: 1, Y: 1}, green))

	before := b.Replay()
	b.Undo()
	after := b.Redo()

	if !rastersEqual(before, after) {
		t.Error("Undo followed by redo must restore the previous raster")
	}
}

func TestUndoFloor(t *testing.T) {
	b := New(core.NewRaster(2, 2))

	first := b.Undo()
	second := b.Undo()

	if !rastersEqual(first, second) {
		t.Error("Undo below the bottom must be idempotent")
	}
	if !rastersEqual(first, b.Initial()) {
		t.Error("Undo on empty history must return the initial raster")
	}
}

func TestRedoCeiling(t *testing.T) {
	b := New(core.NewRaster(2, 2))
	b.Commit(pencilAt(core.Point{X: 0, Y: 0}, red))

	current := b.Replay()
	if !rastersEqual(b.Redo(), current) {
		t.Error("Redo with empty redo stack must replay unchanged history")
	}
}

func TestCommitClearsRedo(t *testing.T) {
	b := New(core.NewRaster(3, 3))
	b.Commit(pencilAt(core.Point{X: 0, Y: 0}, red))
	b.Commit(pencilAt(core.Point{X: 1, Y: 0}, red))
	b.Undo()

	if len(b.RedoStack()) != 1 {
		t.Fatalf("Expected one redoable edit, got %d", len(b.RedoStack()))
	}

	b.Commit(pencilAt(core.Point{X: 2, Y: 0}, green))

	if len(b.RedoStack()) != 0 {
		t.Error("Commit must clear the redo stack")
	}
	before := b.Replay()
	if !rastersEqual(b.Redo(), before) {
		t.Error("Redo after a fresh commit must be a no-op")
	}
}

func TestUndoAcrossTools(t *testing.T) {
	// Pencil then fill; undo removes only the fill, then the pencil
	b := New(core.NewRaster(3, 3))
	pencil := pencilAt(core.Point{X: 0, Y: 0}, red)
	b.Commit(pencil)

	onlyPencil := b.Replay()
	b.Commit(fillAt(core.Point{X: 2, Y: 2}, green))

	afterUndo := b.Undo()
	if !rastersEqual(afterUndo, onlyPencil) {
		t.Error("First undo must remove only the fill edit")
	}
	if afterUndo.Get(core.Point{X: 0, Y: 0}).Bg != red.Bg {
		t.Error("Pencil cells must survive the fill's undo")
	}

	afterSecond := b.Undo()
	if !rastersEqual(afterSecond, b.Initial()) {
		t.Error("Second undo must return to the initial raster")
	}
}

func TestAccessorsAreCopies(t *testing.T) {
	b := New(core.NewRaster(3, 3))
	b.Commit(pencilAt(core.Point{X: 0, Y: 0}, red))
	b.Commit(pencilAt(core.Point{X: 1, Y: 1}, green))
	b.Undo()

	before := b.Replay()

	// Growing the returned slices must not leak into the buffer
	_ = append(b.History(), fillAt(core.Point{X: 2, Y: 2}, green))
	_ = append(b.RedoStack(), fillAt(core.Point{X: 2, Y: 2}, red))

	if len(b.History()) != 1 || len(b.RedoStack()) != 1 {
		t.Fatalf("Buffer grew through accessor slices: %d history, %d redo",
			len(b.History()), len(b.RedoStack()))
	}
	if !rastersEqual(b.Replay(), before) {
		t.Error("Replay changed after appending to accessor slices")
	}
	if !rastersEqual(b.Redo(), b.Replay()) {
		t.Error("Redo must reinstate the undone pencil, not an appended edit")
	}
}

func TestInitialIsImmutable(t *testing.T) {
	b := New(core.NewRaster(2, 2))
	b.Commit(fillAt(core.Point{X: 0, Y: 0}, red))

	b.Replay()
	b.Undo()
	b.Redo()

	b.Initial().Each(func(p core.Point, c core.Cell) {
		if c != (core.Cell{}) {
			t.Errorf("Initial raster was mutated at %+v", p)
		}
	})
}
