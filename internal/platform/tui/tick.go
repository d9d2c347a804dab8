// Package tui runs games in a terminal through Bubble Tea, locally or per
// SSH session via Wish.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the configured rate is not positive.
const defaultTickRate = 60

// lastTickID hands out tick loop IDs.
var lastTickID atomic.Int64

// TickMsg triggers one simulation step of the loop identified by ID.
// A model ignores ticks from loops it did not start.
type TickMsg struct {
	ID   int64
	Time time.Time
}

// nextTickID returns a fresh tick loop ID.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd schedules the next TickMsg for loop id at the given rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
