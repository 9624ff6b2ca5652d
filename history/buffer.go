// Package history keeps a linear undo log of committed edits and
// rebuilds raster state by replaying it onto an immutable initial
// snapshot, instead of tracking per-cell diffs.
package history

import (
	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
)

// Buffer is an ordered log of committed edits plus a redo stack.
// The initial raster is never mutated; undo and redo always replay
// onto a fresh clone of it.
type Buffer struct {
	initial *core.Raster
	history []draw.Edit
	redo    []draw.Edit
}

// New captures a clone of initial as the replay base
func New(initial *core.Raster) *Buffer {
	return &Buffer{initial: initial.Clone()}
}

// Restore rebuilds a buffer from previously captured parts
func Restore(initial *core.Raster, history, redo []draw.Edit) *Buffer {
	return &Buffer{
		initial: initial.Clone(),
		history: history,
		redo:    redo,
	}
}

// Commit appends edit to the history and clears the redo stack.
// History is linear; committing after an undo discards the undone
// branch.
func (b *Buffer) Commit(edit draw.Edit) {
	b.history = append(b.history, edit)
	b.redo = b.redo[:0]
}

// Undo moves the newest history entry to the redo stack and returns
// the raster replayed without it. With an empty history it returns the
// initial raster unchanged.
func (b *Buffer) Undo() *core.Raster {
	if n := len(b.history); n > 0 {
		b.redo = append(b.redo, b.history[n-1])
		b.history = b.history[:n-1]
	}
	return b.Replay()
}

// Redo moves the newest redo entry back onto the history and returns
// the replayed raster. With an empty redo stack it is a no-op replay.
func (b *Buffer) Redo() *core.Raster {
	if n := len(b.redo); n > 0 {
		b.history = append(b.history, b.redo[n-1])
		b.redo = b.redo[:n-1]
	}
	return b.Replay()
}

// Replay applies the full history in order onto a clone of the initial
// raster
func (b *Buffer) Replay() *core.Raster {
	r := b.initial.Clone()
	for _, edit := range b.history {
		edit.Apply(r)
	}
	return r
}

// Initial returns the immutable replay base
func (b *Buffer) Initial() *core.Raster {
	return b.initial
}

// History returns a copy of the committed edits, oldest first
func (b *Buffer) History() []draw.Edit {
	return append([]draw.Edit(nil), b.history...)
}

// RedoStack returns a copy of the undone edits, oldest first
func (b *Buffer) RedoStack() []draw.Edit {
	return append([]draw.Edit(nil), b.redo...)
}
