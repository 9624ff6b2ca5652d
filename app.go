package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-painter/audio"
	"github.com/lixenwraith/grid-painter/config"
	"github.com/lixenwraith/grid-painter/core"
	"github.com/lixenwraith/grid-painter/draw"
	"github.com/lixenwraith/grid-painter/input"
	"github.com/lixenwraith/grid-painter/render"
	"github.com/lixenwraith/grid-painter/session"
)

// opacityStep is one +/- keypress worth of alpha
const opacityStep = 15

// App wires the canvas session to the terminal
type App struct {
	screen   tcell.Screen
	cfg      *config.Config
	sess     *session.Session
	machine  *input.Machine
	renderer *render.Renderer
	sound    *audio.Feedback
	store    *session.Store

	// Palette cursor; the session only ever sees the resolved style
	fgIdx, bgIdx, chIdx int
	fgAlpha, bgAlpha    uint8

	message string
}

// NewApp builds the app around an existing session (fresh or loaded)
func NewApp(screen tcell.Screen, cfg *config.Config, sess *session.Session, store *session.Store, sound *audio.Feedback) *App {
	a := &App{
		screen:   screen,
		cfg:      cfg,
		sess:     sess,
		machine:  input.NewMachine(),
		renderer: render.New(screen),
		sound:    sound,
		store:    store,
		fgAlpha:  255,
		bgAlpha:  255,
	}
	a.machine.SetViewport(0, render.CanvasOffsetY, sess.Raster().Width(), sess.Raster().Height())
	return a
}

// applyPalette resolves the palette cursor into the session's paint
// style. Eyedrop picks bypass this until the next cursor change.
func (a *App) applyPalette() {
	pal := a.cfg.Palette
	style := core.Cell{}.
		WithChar(pal.Ch[a.chIdx]).
		WithFg(pal.Fg[a.fgIdx].WithAlpha(a.fgAlpha)).
		WithBg(pal.Bg[a.bgIdx].WithAlpha(a.bgAlpha))
	a.sess.SetStyle(style)
}

func (a *App) status() render.Status {
	style := a.sess.Style()
	st := render.Status{
		Tool:    a.sess.Tool(),
		Fg:      style.Fg,
		Bg:      style.Bg,
		Ch:      ' ',
		Message: a.message,
	}
	if style.Has(core.FieldChar) {
		st.Ch = style.Ch
	}
	return st
}

// Run drives the event loop until quit
func (a *App) Run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handle(a.machine.Translate(ev)) {
				return
			}
		case <-ticker.C:
			a.renderer.Draw(a.sess, a.status())
		}
	}
}

func (a *App) handle(it input.Intent) bool {
	switch it.Action {
	case input.ActionQuit:
		return false

	case input.ActionPointerDown:
		a.sess.BeginStroke(it.Pos)
		if a.sess.Tool() == draw.ToolEyedrop {
			a.message = "picked cell style"
		}
	case input.ActionPointerMove:
		a.sess.ContinueStroke(it.Pos)
	case input.ActionPointerUp:
		if a.sess.Active() {
			a.sess.EndStroke()
			a.sound.Commit()
		}

	case input.ActionSelectTool:
		a.sess.SetTool(it.Tool)
		a.message = ""

	case input.ActionUndo:
		a.sess.Undo()
		a.sound.Undo()
	case input.ActionRedo:
		a.sess.Redo()
		a.sound.Undo()

	case input.ActionSave:
		if err := a.store.Save(a.sess); err != nil {
			a.message = err.Error()
			a.sound.Error()
		} else {
			a.message = fmt.Sprintf("saved %s", a.store.Path())
			a.sound.Save()
		}

	case input.ActionCycleFg:
		a.fgIdx = cycle(a.fgIdx, it.Delta, len(a.cfg.Palette.Fg))
		a.applyPalette()
	case input.ActionCycleBg:
		a.bgIdx = cycle(a.bgIdx, it.Delta, len(a.cfg.Palette.Bg))
		a.applyPalette()
	case input.ActionCycleChar:
		a.chIdx = cycle(a.chIdx, it.Delta, len(a.cfg.Palette.Ch))
		a.applyPalette()

	case input.ActionFgOpacity:
		a.fgAlpha = stepAlpha(a.fgAlpha, it.Delta)
		a.applyPalette()
	case input.ActionBgOpacity:
		a.bgAlpha = stepAlpha(a.bgAlpha, it.Delta)
		a.applyPalette()

	case input.ActionResize:
		a.screen.Sync()
	}
	return true
}

func cycle(idx, delta, n int) int {
	idx = (idx + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

func stepAlpha(a uint8, delta int) uint8 {
	v := int(a) + delta*opacityStep
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}
