// Package input parses tcell events into semantic intents. Pointer
// coordinates are translated and clamped into raster-local coordinates
// here; the canvas core never sees screen positions.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
)

// Action is the semantic operation an event maps to
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPointerDown
	ActionPointerMove
	ActionPointerUp
	ActionSelectTool
	ActionUndo
	ActionRedo
	ActionSave
	ActionCycleFg
	ActionCycleBg
	ActionCycleChar
	ActionFgOpacity
	ActionBgOpacity
	ActionResize
)

// Intent is one parsed input operation
type Intent struct {
	Action Action
	Tool   draw.Tool  // ActionSelectTool
	Pos    core.Point // pointer actions, raster-local
	Delta  int        // cycle and opacity actions, ±1
}

// Machine turns terminal events into intents. It tracks the canvas
// viewport for coordinate translation and the primary button state for
// press/drag/release detection.
type Machine struct {
	offsetX, offsetY int
	width, height    int

	dragging bool
}

// NewMachine creates a machine with an empty viewport; callers set the
// layout before the first mouse event arrives
func NewMachine() *Machine {
	return &Machine{}
}

// SetViewport places the canvas rectangle in screen coordinates
func (m *Machine) SetViewport(offsetX, offsetY, width, height int) {
	m.offsetX = offsetX
	m.offsetY = offsetY
	m.width = width
	m.height = height
}

// Translate parses one terminal event. ActionNone means the event is
// not bound.
func (m *Machine) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.translateKey(ev)
	case *tcell.EventMouse:
		return m.translateMouse(ev)
	case *tcell.EventResize:
		return Intent{Action: ActionResize}
	}
	return Intent{}
}

func (m *Machine) translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Action: ActionQuit}
	case tcell.KeyCtrlZ:
		return Intent{Action: ActionUndo}
	case tcell.KeyCtrlR:
		return Intent{Action: ActionRedo}
	case tcell.KeyCtrlS:
		return Intent{Action: ActionSave}
	}

	if ev.Key() != tcell.KeyRune {
		return Intent{}
	}

	switch ev.Rune() {
	case 'q':
		return Intent{Action: ActionQuit}
	case 'p':
		return Intent{Action: ActionSelectTool, Tool: draw.ToolPencil}
	case 'l':
		return Intent{Action: ActionSelectTool, Tool: draw.ToolLine}
	case 'f':
		return Intent{Action: ActionSelectTool, Tool: draw.ToolFill}
	case 'e':
		return Intent{Action: ActionSelectTool, Tool: draw.ToolErase}
	case 'i':
		return Intent{Action: ActionSelectTool, Tool: draw.ToolEyedrop}
	case 'u':
		return Intent{Action: ActionUndo}
	case 'r':
		return Intent{Action: ActionRedo}
	case '[':
		return Intent{Action: ActionCycleFg, Delta: -1}
	case ']':
		return Intent{Action: ActionCycleFg, Delta: 1}
	case '{':
		return Intent{Action: ActionCycleBg, Delta: -1}
	case '}':
		return Intent{Action: ActionCycleBg, Delta: 1}
	case '<':
		return Intent{Action: ActionCycleChar, Delta: -1}
	case '>':
		return Intent{Action: ActionCycleChar, Delta: 1}
	case '-':
		return Intent{Action: ActionFgOpacity, Delta: -1}
	case '=':
		return Intent{Action: ActionFgOpacity, Delta: 1}
	case '_':
		return Intent{Action: ActionBgOpacity, Delta: -1}
	case '+':
		return Intent{Action: ActionBgOpacity, Delta: 1}
	}
	return Intent{}
}

func (m *Machine) translateMouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	pos := m.toCanvas(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !m.dragging:
		m.dragging = true
		return Intent{Action: ActionPointerDown, Pos: pos}
	case pressed && m.dragging:
		return Intent{Action: ActionPointerMove, Pos: pos}
	case !pressed && m.dragging:
		m.dragging = false
		return Intent{Action: ActionPointerUp, Pos: pos}
	}
	return Intent{}
}

// toCanvas translates screen coordinates to raster-local ones, clamped
// to the canvas so drags that leave the window stay on the edge cells
func (m *Machine) toCanvas(x, y int) core.Point {
	p := core.Point{X: x - m.offsetX, Y: y - m.offsetY}
	if p.X < 0 {
		p.X = 0
	}
	if p.X >= m.width {
		p.X = m.width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= m.height {
		p.Y = m.height - 1
	}
	return p
}
