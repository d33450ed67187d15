// Package client runs one terminal session: it reads keys, drives a
// sim.Controller and renders its snapshots with ANSI half-blocks.
package client

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceimpact/internal/draw"
	"github.com/tomz197/spaceimpact/internal/input"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/loop/server"
	"github.com/tomz197/spaceimpact/internal/loop/sim"
	"github.com/tomz197/spaceimpact/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer // nil when playing offline
	handle       *server.ClientHandle
	controller   *sim.Controller
	state        *ClientState
	canvas       *draw.Canvas
	frame        *draw.FrameWriter // Collects one frame of output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	logger       *log.Logger
	termSizeFunc draw.TermSizeFunc
	frameTime    time.Duration
	tickRate     int
}

// Used until the terminal reports a real size.
const (
	fallbackTermWidth  = 80
	fallbackTermHeight = 24
)

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Store        leaderboard.Store // Used when there is no server
	Rand         object.Rand
	Logger       *log.Logger
	HoldDuration time.Duration // How long a direction key stays held
	TickRate     int           // Frames per second, 0 for the default
}

// NewClient creates a client. gs may be nil for a local, offline game.
func NewClient(gs server.GameServer, r io.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.StdoutSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = config.ClientTargetFPS
	}

	c := &Client{
		server:       gs,
		tickRate:     tickRate,
		frameTime:    time.Second / time.Duration(tickRate),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r, opts.HoldDuration),
		termSizeFunc: termSizeFunc,
	}

	store := opts.Store
	if gs != nil {
		c.handle = gs.RegisterClient(opts.Username)
		store = gs.Store(c.handle.ID)
		logger = logger.With("user", opts.Username, "client", c.handle.ID)
	}
	c.logger = logger

	c.controller = sim.NewController(sim.Options{
		Store:  store,
		Rand:   opts.Rand,
		Logger: logger,
	})

	c.state = NewClientState()

	termWidth, termHeight, err := draw.TermSize(termSizeFunc)
	if err != nil {
		termWidth, termHeight = fallbackTermWidth, fallbackTermHeight
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	c.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, config.PlayfieldWidth, config.PlayfieldHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.frame = draw.NewFrameWriter(w, offsetCol, offsetRow)

	return c
}

// Controller returns the controller driven by this client.
func (c *Client) Controller() *sim.Controller {
	return c.controller
}

// Run starts the client loop. Blocks until the player quits, the input
// stream closes or the server sends the client away.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	if c.server != nil {
		defer c.server.UnregisterClient(c.handle.ID)
	}

	start := time.Now()
	lastTime := start

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		c.state.elapsed = frameStart.Sub(start)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()
		c.update()

		if err := c.drawFrame(); err != nil {
			return fmt.Errorf("drawing frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < c.frameTime {
			time.Sleep(c.frameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads this frame's keys and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if time.Since(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processServerEvents handles events from the lobby.
func (c *Client) processServerEvents() {
	if c.server == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventHighScore:
				c.state.banner = fmt.Sprintf("New high score by %s: %d", event.Username, event.Score)
				c.state.bannerTimer = config.HighScoreBannerSeconds
			case server.EventServerShutdown:
				c.state.shuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// update advances the controller and the overlay timers.
func (c *Client) update() {
	dt := c.state.delta.Seconds()

	if c.state.bannerTimer > 0 {
		c.state.bannerTimer -= dt
		if c.state.bannerTimer <= 0 {
			c.state.bannerTimer = 0
			c.state.banner = ""
		}
	}

	if c.state.shuttingDown {
		c.state.shutdownTimer -= dt
		if c.state.shutdownTimer <= 0 {
			c.state.Running = false
		}
		return
	}

	before := c.controller.Phase()
	c.controller.Update(c.state.Input, c.state.elapsed)
	if c.controller.Phase() != before {
		// Keys held on the old screen must not carry into the new one.
		input.ResetKeyInput(c.inputStream)
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := draw.TermSize(c.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.frame.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
