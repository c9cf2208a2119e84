// Package term is the tcell display backend. tcell's event goroutine plays
// the part of the button interrupt: it calls Button.Edge as keys arrive,
// while the frame loop runs on its own ticker and only polls the queue.
package term

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/gfx"
	"github.com/vovakirdan/rocketberry/internal/registry"
)

func init() {
	registry.Register("term", func() registry.Backend { return &Backend{} })
}

// Backend draws half-block cells straight into a tcell screen.
type Backend struct {
	// NewScreen overrides screen creation; tests use a simulation screen.
	NewScreen func() (tcell.Screen, error)
	// Frames stops the loop after this many frames when positive.
	Frames int
}

// Title implements registry.Backend.
func (b *Backend) Title() string { return "tcell (raw terminal)" }

// Run implements registry.Backend.
func (b *Backend) Run(rt *registry.Runtime) error {
	newScreen := b.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	quit := make(chan struct{})
	var once sync.Once
	stop := func() { once.Do(func() { close(quit) }) }
	go pollEvents(screen, rt, stop)

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	styles := make(map[[2]core.Color]tcell.Style)
	for frames := 0; b.Frames <= 0 || frames < b.Frames; frames++ {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
		}
		rt.Step()
		draw(screen, rt.Session.Surface(), styles)
	}
	return nil
}

// pollEvents is the producer side. It calls stop and exits when the
// event stream ends or the player quits.
func pollEvents(screen tcell.Screen, rt *registry.Runtime, stop func()) {
	defer stop()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if handleKey(ev, rt) {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// handleKey maps one key to the button or tilt and reports a quit request.
func handleKey(ev *tcell.EventKey, rt *registry.Runtime) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		rt.Button.Edge()
	case tcell.KeyLeft:
		rt.Tilt.Left()
	case tcell.KeyRight:
		rt.Tilt.Right()
	case tcell.KeyDown:
		rt.Tilt.Center()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			rt.Button.Edge()
		case 'a', 'h':
			rt.Tilt.Left()
		case 'd', 'l':
			rt.Tilt.Right()
		case 's', 'j':
			rt.Tilt.Center()
		}
	}
	return false
}

func draw(screen tcell.Screen, sf *gfx.Surface, styles map[[2]core.Color]tcell.Style) {
	w, h := screen.Size()
	cols, rows := sf.FitCells(w, h)
	screen.Clear()
	sf.HalfBlocks(cols, rows, func(col, row int, top, bottom core.Color) {
		k := [2]core.Color{top, bottom}
		st, ok := styles[k]
		if !ok {
			st = tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R()), int32(top.G()), int32(top.B()))).
				Background(tcell.NewRGBColor(int32(bottom.R()), int32(bottom.G()), int32(bottom.B())))
			styles[k] = st
		}
		screen.SetContent(col, row, gfx.HalfBlock, nil, st)
	})
	screen.Show()
}
