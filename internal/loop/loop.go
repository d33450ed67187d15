// Package loop runs the game in the local terminal.
package loop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
	"github.com/tomz197/spaceimpact/internal/loop/client"
	"github.com/tomz197/spaceimpact/internal/object"
)

// Options configures a local game.
type Options struct {
	Store        leaderboard.Store
	Rand         object.Rand // nil seeds from the clock
	Logger       *log.Logger
	HoldDuration time.Duration
	TickRate     int // Frames per second, 0 for the default
}

// Run plays offline on r and w until the player quits. The terminal must
// already be in raw mode.
func Run(r io.Reader, w io.Writer, opts Options) error {
	c := client.NewClient(nil, r, w, client.ClientOptions{
		Store:        opts.Store,
		Rand:         opts.Rand,
		Logger:       opts.Logger,
		HoldDuration: opts.HoldDuration,
		TickRate:     opts.TickRate,
	})
	return c.Run()
}
