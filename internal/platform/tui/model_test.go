package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocketberry/internal/config"
	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/game"
	"github.com/vovakirdan/rocketberry/internal/gfx"
	"github.com/vovakirdan/rocketberry/internal/input"
	"github.com/vovakirdan/rocketberry/internal/registry"
	"github.com/vovakirdan/rocketberry/internal/tilt"
)

func newRuntime(t *testing.T) *registry.Runtime {
	t.Helper()
	cfg := config.DefaultGameConfig()
	q := input.NewQueue(cfg.Input.QueueSize)
	kb := tilt.NewKeyboard(cfg.Tilt.Quantizer())

	clock := time.Unix(0, 0)
	now := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	sess, err := game.New(cfg, cfg.Runtime(30, 1), game.Deps{Input: q, Tilt: kb})
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	return &registry.Runtime{
		Session:  sess,
		Button:   input.NewButton(q, cfg.Input.Debounce, now),
		Tilt:     kb,
		TickRate: 30,
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeysDriveInputs(t *testing.T) {
	rt := newRuntime(t)
	var m tea.Model = NewModel(rt)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		presses  uint64
		expected tilt.Tier
	}{
		{"fire", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, 1, tilt.Neutral},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, 1, tilt.Tier(1)},
		{"right again", runeKey('d'), 1, tilt.Tier(2)},
		{"level", tea.KeyMsg{Type: tea.KeyDown}, 1, tilt.Neutral},
		{"left", runeKey('a'), 1, tilt.Tier(-1)},
		{"fire enter", tea.KeyMsg{Type: tea.KeyEnter}, 2, tilt.Tier(-1)},
	}
	for _, tc := range tests {
		m, _ = m.Update(tc.msg)
		if rt.Button.Presses() != tc.presses {
			t.Errorf("%s: Presses() = %d, expected %d", tc.name, rt.Button.Presses(), tc.presses)
		}
		if rt.Tilt.Tier() != tc.expected {
			t.Errorf("%s: Tier() = %v, expected %v", tc.name, rt.Tilt.Tier(), tc.expected)
		}
	}
}

func TestTickStepsSession(t *testing.T) {
	rt := newRuntime(t)
	var m tea.Model = NewModel(rt)

	m, _ = m.Update(runeKey(' '))
	m, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	if rt.Session.Phase() != game.PhasePlaying {
		t.Errorf("phase = %v, expected playing after a press", rt.Session.Phase())
	}
	if got := m.(Model).last.Phase; got != game.PhasePlaying {
		t.Errorf("model kept phase %v", got)
	}
}

func TestQuit(t *testing.T) {
	rt := newRuntime(t)
	m, cmd := NewModel(rt).Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewFitsTerminal(t *testing.T) {
	rt := newRuntime(t)
	var m tea.Model = NewModel(rt)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = m.Update(TickMsg(time.Now()))

	for i, line := range strings.Split(m.View(), "\n") {
		if w := len([]rune(stripANSI(line))); w > 100 {
			t.Errorf("line %d is %d cells wide", i, w)
		}
	}
	if h := strings.Count(m.View(), "\n") + 1; h > 40 {
		t.Errorf("view is %d lines tall", h)
	}
}

func TestRenderSurfaceGroupsRuns(t *testing.T) {
	s := gfx.NewSurface(4, 4, 2)
	s.Clear(core.ColorBlack)
	s.DrawRect(0, 0, 2, 4, core.ColorRed)
	s.Present()

	out := RenderSurface(s, 4, 2, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, line := range lines {
		if n := strings.Count(line, string(gfx.HalfBlock)); n != 4 {
			t.Errorf("line has %d half blocks, expected 4", n)
		}
	}
	if RenderSurface(s, 0, 2, nil) != "" {
		t.Error("empty grid should render nothing")
	}
}

// stripANSI drops CSI escape sequences.
func stripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
