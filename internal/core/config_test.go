package core

import "testing"

func TestGameStatePhases(t *testing.T) {
	tests := []struct {
		phase    Phase
		gameOver bool
		paused   bool
		name     string
	}{
		{PhaseReady, false, false, "Ready"},
		{PhasePlaying, false, false, "Playing"},
		{PhasePaused, false, true, "Paused"},
		{PhaseGameOver, true, false, "GameOver"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := GameState{Phase: tc.phase}
			if s.GameOver() != tc.gameOver {
				t.Errorf("GameOver() = %v, expected %v", s.GameOver(), tc.gameOver)
			}
			if s.Paused() != tc.paused {
				t.Errorf("Paused() = %v, expected %v", s.Paused(), tc.paused)
			}
			if tc.phase.String() != tc.name {
				t.Errorf("String() = %q, expected %q", tc.phase.String(), tc.name)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) || f.Has(ActionPause) {
		t.Error("Set(ActionJump) should only mark jump")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear() should remove all actions")
	}
}
