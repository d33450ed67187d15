package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/object"
)

// Phase is the state of the game around a run.
type Phase int

const (
	PhaseMenu      Phase = iota // Waiting for a mode
	PhaseCountdown              // Run created, counting down to start
	PhasePlaying                // Simulation running
	PhaseGameOver               // Run ended, frozen
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Command is a one-shot player action.
type Command int

const (
	CommandNone Command = iota
	CommandSelectLevel
	CommandSelectEndless
	CommandRestart
	CommandMenu
)

// Commands extracts the one-shot commands carried by a frame's input.
func Commands(in object.Input) []Command {
	var cmds []Command
	switch in.Number {
	case 1:
		cmds = append(cmds, CommandSelectLevel)
	case 2:
		cmds = append(cmds, CommandSelectEndless)
	}
	if in.Restart {
		cmds = append(cmds, CommandRestart)
	}
	if in.Menu {
		cmds = append(cmds, CommandMenu)
	}
	return cmds
}

// Options configures a Controller.
type Options struct {
	Store  leaderboard.Store // Defaults to an in-memory store
	Rand   object.Rand       // Defaults to a time-seeded source
	Logger *log.Logger       // Defaults to discarding
}

// Controller owns the current run and moves it through the game phases.
// It is not safe for concurrent use; one frame loop drives it.
type Controller struct {
	phase Phase
	mode  Mode
	run   *SimulationState

	stars       []object.Star
	leaderboard []int
	store       leaderboard.Store
	rng         object.Rand
	logger      *log.Logger

	countdownStart time.Duration
	goShown        bool // The "GO!" frame has been produced
	now            time.Duration
}

// NewController creates a controller at the menu.
func NewController(opts Options) *Controller {
	if opts.Store == nil {
		opts.Store = &leaderboard.MemoryStore{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Controller{
		phase:       PhaseMenu,
		stars:       object.NewStarfield(opts.Rand, config.StarCount),
		leaderboard: opts.Store.Load(),
		store:       opts.Store,
		rng:         opts.Rand,
		logger:      opts.Logger,
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Mode returns the selected mode, ModeNone at the menu.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Run returns the current run, nil at the menu.
func (c *Controller) Run() *SimulationState {
	return c.run
}

// Update handles the frame's one-shot commands, then advances one tick.
func (c *Controller) Update(in object.Input, elapsed time.Duration) {
	for _, cmd := range Commands(in) {
		c.Handle(cmd, elapsed)
	}
	c.Tick(in, elapsed)
}

// Handle applies a command. Mode selection only works at the menu; restart
// and menu do nothing until a mode has been chosen.
func (c *Controller) Handle(cmd Command, elapsed time.Duration) {
	c.now = elapsed

	switch cmd {
	case CommandSelectLevel, CommandSelectEndless:
		if c.phase != PhaseMenu {
			return
		}
		mode := ModeLevel
		if cmd == CommandSelectEndless {
			mode = ModeEndless
		}
		c.startRun(mode, elapsed)

	case CommandRestart:
		if c.mode == ModeNone {
			return
		}
		c.startRun(c.mode, elapsed)

	case CommandMenu:
		if c.mode == ModeNone {
			return
		}
		c.logger.Debug("back to menu", "run", c.run.RunID)
		c.run = nil
		c.mode = ModeNone
		c.phase = PhaseMenu
	}
}

// startRun replaces the current run with a fresh one and starts the countdown.
func (c *Controller) startRun(mode Mode, elapsed time.Duration) {
	c.mode = mode
	c.run = NewSimulationState(mode, c.rng)
	c.phase = PhaseCountdown
	c.countdownStart = elapsed
	c.goShown = false
	c.logger.Info("run started", "run", c.run.RunID, "mode", mode)
}

// Tick advances one frame. The starfield always scrolls; the run only moves
// while playing.
func (c *Controller) Tick(in object.Input, elapsed time.Duration) {
	c.now = elapsed

	for i := range c.stars {
		c.stars[i].Update(c.rng)
	}

	switch c.phase {
	case PhaseCountdown:
		// The first tick past the countdown stays here so one frame shows
		// "GO!"; the next one starts play.
		if elapsed-c.countdownStart >= config.CountdownDuration {
			if c.goShown {
				c.phase = PhasePlaying
			}
			c.goShown = true
		}
	case PhasePlaying:
		events := c.run.Step(in, elapsed)
		c.logEvents(events)
		if c.run.GameOver {
			c.enterGameOver()
		}
	}
}

// enterGameOver freezes the run and records endless scores.
func (c *Controller) enterGameOver() {
	c.phase = PhaseGameOver
	if c.mode != ModeEndless {
		return
	}

	board, err := c.store.Add(c.run.Score)
	if err != nil {
		c.logger.Error("saving leaderboard", "run", c.run.RunID, "err", err)
	}
	c.leaderboard = board
}

// CountdownRemaining returns the whole seconds left before play starts.
// Zero or less means "GO!".
func (c *Controller) CountdownRemaining() int {
	elapsed := c.now - c.countdownStart
	return config.CountdownSeconds - int(elapsed/time.Second)
}

func (c *Controller) logEvents(events []Event) {
	for _, e := range events {
		kv := []any{"run", c.run.RunID, "score", e.Score, "lives", e.Lives, "level", e.Level}
		if e.Detail != "" {
			kv = append(kv, "kind", e.Detail)
		}
		switch e.Type {
		case EventEnemyDestroyed, EventPowerupCollected, EventLifeLost:
			c.logger.Debug(e.Type.String(), kv...)
		default:
			c.logger.Info(e.Type.String(), kv...)
		}
	}
}
