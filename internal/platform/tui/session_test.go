package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func sessionSend(s SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := s.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	s := NewSessionModel(nil, cfg, "guest", log.New(io.Discard))

	if len(s.menu.items) < 2 {
		t.Fatalf("menu lists %d games, expected both variants", len(s.menu.items))
	}

	s, cmd := sessionSend(s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || cmd == nil {
		t.Fatal("enter should start the selected game")
	}
	if s.game.opts.Player != "guest" || !s.game.opts.Embedded {
		t.Errorf("game options = %+v", s.game.opts)
	}

	s, _ = sessionSend(s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.quitting {
		t.Fatal("esc on the ready screen should return to the menu")
	}

	s, _ = sessionSend(s, tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if s.View() == "" {
		t.Error("scoreboard view is empty")
	}

	s, _ = sessionSend(s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	s, cmd = sessionSend(s, runeKey('q'))
	if !s.quitting || cmd == nil {
		t.Fatal("q should end the session")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit command")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "guest", log.New(io.Discard))

	s, _ = sessionSend(s, tea.WindowSizeMsg{Width: 100, Height: 30})
	s, _ = sessionSend(s, tea.KeyMsg{Type: tea.KeyEnter})

	if s.game.screen.Width() != 100 || s.game.screen.Height() != 30 {
		t.Errorf("game screen = %dx%d, expected 100x30", s.game.screen.Width(), s.game.screen.Height())
	}
}
