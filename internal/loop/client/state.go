package client

import (
	"time"

	"github.com/tomz197/spaceimpact/internal/input"
	"github.com/tomz197/spaceimpact/internal/loop/sim"
)

// ClientState holds per-connection state that lives outside the run:
// input, timers for overlays and what was on screen last frame.
type ClientState struct {
	Input   input.Input
	Running bool          // Client loop running
	elapsed time.Duration // Time since the client started
	delta   time.Duration // Frame delta time

	prevPhase   sim.Phase
	isInactive  bool // Whether the client is in inactive warning state
	wasInactive bool

	shuttingDown  bool
	shutdownTimer float64 // Seconds before auto-disconnect on shutdown

	banner      string  // High score announcement from another pilot
	bannerTimer float64 // Seconds the banner stays up
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Input:     input.Input{Number: -1},
		Running:   true,
		prevPhase: sim.PhaseMenu,
	}
}
