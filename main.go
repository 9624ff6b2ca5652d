package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-painter/audio"
	"github.com/lixenwraith/grid-painter/config"
	"github.com/lixenwraith/grid-painter/render"
	"github.com/lixenwraith/grid-painter/session"
)

var (
	configFlag = flag.String("config", "", "palette config file (TOML)")
	fileFlag   = flag.String("file", "canvas.toml", "session save file")
	sizeFlag   = flag.String("size", "", "canvas size as WIDTHxHEIGHT (default: terminal size)")
	muteFlag   = flag.Bool("mute", false, "disable feedback sounds")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Ensure the terminal is restored even if we crash mid-stroke
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "grid-painter crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	store := session.NewStore(*fileFlag)
	sess, resumed, err := openSession(screen, cfg, store)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	sound := audio.Muted()
	if cfg.UI.Sound && !*muteFlag {
		if sound, err = audio.New(); err != nil {
			// Non-fatal, the app runs without sound
			log.Printf("audio initialization failed: %v", err)
		}
	}
	defer sound.Close()

	app := NewApp(screen, cfg, sess, store, sound)
	if !resumed {
		// A resumed session keeps its saved paint style
		app.applyPalette()
	}
	app.Run()
}

// openSession resumes the saved session when the save file exists,
// otherwise creates a fresh canvas
func openSession(screen tcell.Screen, cfg *config.Config, store *session.Store) (*session.Session, bool, error) {
	if store.Exists() {
		sess, err := store.Load()
		return sess, true, err
	}

	width, height := cfg.UI.Width, cfg.UI.Height
	if *sizeFlag != "" {
		if _, err := fmt.Sscanf(*sizeFlag, "%dx%d", &width, &height); err != nil || width <= 0 || height <= 0 {
			return nil, false, fmt.Errorf("invalid -size %q, want WIDTHxHEIGHT", *sizeFlag)
		}
	}
	if width <= 0 || height <= 0 {
		sw, sh := screen.Size()
		width, height = sw, sh-render.CanvasOffsetY
	}
	if width <= 0 || height <= 0 {
		return nil, false, fmt.Errorf("terminal too small for a canvas")
	}

	sess := session.New(width, height)
	sess.SetTool(cfg.UI.Tool)
	return sess, false, nil
}
