// Package desktop runs the game in a window with ebiten.
package desktop

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/spaceimpact/internal/hud"
	"github.com/tomz197/spaceimpact/internal/input"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/loop/sim"
	"github.com/tomz197/spaceimpact/internal/object"
)

var (
	colorBackground = color.RGBA{0x05, 0x05, 0x12, 0xff}
	colorShip       = color.RGBA{0x00, 0xff, 0xff, 0xff}
	colorEnemy      = color.RGBA{0xff, 0x30, 0x30, 0xff}
	colorMiniBoss   = color.RGBA{0xff, 0x60, 0x60, 0xff}
	colorBoss       = color.RGBA{0x8b, 0x00, 0x00, 0xff}
	colorBullet     = color.RGBA{0xff, 0xff, 0x00, 0xff}
	colorLife       = color.RGBA{0x00, 0xff, 0x00, 0xff}
	colorDouble     = color.RGBA{0x00, 0xbf, 0xff, 0xff}
	colorExplosion  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorStar       = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Options configures a desktop game.
type Options struct {
	Store    leaderboard.Store
	Rand     object.Rand
	Logger   *log.Logger
	TickRate int // Updates per second, 0 for the default
}

// Game adapts a sim.Controller to ebiten.Game.
type Game struct {
	controller *sim.Controller
	tickRate   int
	start      time.Time
	elapsed    time.Duration
}

// NewGame creates a game at the menu.
func NewGame(opts Options) *Game {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = config.ClientTargetFPS
	}
	return &Game{
		controller: sim.NewController(sim.Options{
			Store:  opts.Store,
			Rand:   opts.Rand,
			Logger: opts.Logger,
		}),
		tickRate: tickRate,
		start:    time.Now(),
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.PlayfieldWidth*2, config.PlayfieldHeight*2)
	ebiten.SetWindowTitle("Space Impact")
	ebiten.SetTPS(g.tickRate)
	return ebiten.RunGame(g)
}

// Update advances one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.elapsed = time.Since(g.start)
	g.controller.Update(readInput(), g.elapsed)
	return nil
}

// readInput maps the keyboard onto the same Input the terminal produces.
func readInput() input.Input {
	in := input.Input{
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Menu:    inpututil.IsKeyJustPressed(ebiten.KeyM),
		Number:  -1,
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		in.Number = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		in.Number = 2
	}
	return in
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.controller.Snapshot()
	screen.Fill(colorBackground)

	for _, s := range snap.Stars {
		fillRect(screen, s.X, s.Y, s.Size, s.Size, colorStar)
	}

	if snap.Phase != sim.PhaseMenu {
		drawEntities(screen, &snap)
		ebitenutil.DebugPrintAt(screen, hud.Status(&snap), 4, 4)
	}

	blink := g.elapsed/config.MenuBlinkPeriod%2 == 0
	lines := hud.Overlay(&snap, blink)
	top := config.PlayfieldHeight/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		x := config.PlayfieldWidth/2 - len(line)*charWidth/2
		ebitenutil.DebugPrintAt(screen, line, x, top+i*lineHeight)
	}
}

// Debug font metrics.
const (
	charWidth  = 6
	lineHeight = 16
)

func drawEntities(screen *ebiten.Image, snap *sim.Snapshot) {
	for _, p := range snap.Powerups {
		c := colorLife
		if p.Kind == object.PowerupDoubleShot {
			c = colorDouble
		}
		fillRect(screen, p.X, p.Y, p.W, p.H, c)
	}
	for _, e := range snap.Enemies {
		c := colorEnemy
		if e.Kind == object.EnemyMiniBoss {
			c = colorMiniBoss
		}
		fillRect(screen, e.X, e.Y, e.W, e.H, c)
	}
	if b := snap.Boss; b != nil {
		fillRect(screen, b.X, b.Y, b.W, b.H, colorBoss)
	}
	for _, b := range snap.Bullets {
		fillRect(screen, b.X, b.Y, b.W, b.H, colorBullet)
	}
	for _, e := range snap.Explosions {
		f := float64(e.Timer) / config.ExplosionTicks
		w, h := e.W*f, e.H*f
		fillRect(screen, e.X+(e.W-w)/2, e.Y+(e.H-h)/2, w, h, colorExplosion)
	}
	s := snap.Ship
	fillRect(screen, s.X, s.Y, s.W, s.H, colorShip)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Layout fixes the logical resolution to the playfield; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.PlayfieldWidth, config.PlayfieldHeight
}
