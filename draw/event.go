// Package draw models one press→drag→release interaction per tool.
// An event records only the geometry needed to replay it; committing
// is a pure function of the event and the raster at commit time.
package draw

import (
	"github.com/lixenwraith/grid-painter/core"
)

// Tool identifies the active drawing tool
type Tool uint8

const (
	ToolPencil Tool = iota
	ToolLine
	ToolFill
	ToolErase
	// ToolEyedrop samples an existing cell's style; it never produces
	// an Event and never enters the stroke machinery
	ToolEyedrop
)

// Tools lists the selectable tools in UI order
var Tools = [5]Tool{ToolPencil, ToolLine, ToolFill, ToolErase, ToolEyedrop}

func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolLine:
		return "line"
	case ToolFill:
		return "fill"
	case ToolErase:
		return "erase"
	case ToolEyedrop:
		return "eyedrop"
	}
	return "unknown"
}

// ParseTool is the inverse of Tool.String, used when restoring state
func ParseTool(s string) (Tool, bool) {
	for _, t := range Tools {
		if t.String() == s {
			return t, true
		}
	}
	return ToolPencil, false
}

// Event is one in-progress or committed stroke
type Event interface {
	// Continue tracks drag motion to p
	Continue(p core.Point)

	// Commit applies the final effect of the stroke to r with the
	// stroke's fixed paint style
	Commit(r *core.Raster, style core.Cell)

	// Preview reports the cells the stroke would produce without
	// mutating r
	Preview(r *core.Raster, style core.Cell, visit func(core.Point, core.Cell))
}

// Start constructs the event for a tool's press at p.
// ToolEyedrop has no event and returns nil.
func Start(t Tool, p core.Point) Event {
	switch t {
	case ToolPencil:
		return StartPencil(p)
	case ToolLine:
		return StartLine(p)
	case ToolFill:
		return StartFill(p)
	case ToolErase:
		return StartErase(p)
	}
	return nil
}

// Edit is a committed stroke: the event plus the single style it was
// painted with, fixed at stroke start
type Edit struct {
	Event Event
	Style core.Cell
}

// Apply replays the edit onto r
func (e Edit) Apply(r *core.Raster) {
	e.Event.Commit(r, e.Style)
}
