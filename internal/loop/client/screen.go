package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/spaceimpact/internal/draw"
	"github.com/tomz197/spaceimpact/internal/loop/config"
	"github.com/tomz197/spaceimpact/internal/loop/sim"
	"github.com/tomz197/spaceimpact/internal/object"
)

var titleArt = []string{
	` ___ ___  _   ___ ___   ___ __  __ ___  _   ___ _____ `,
	`/ __| _ \/_\ / __| __| |_ _|  \/  | _ \/_\ / __|_   _|`,
	`\__ \  _/ _ \ (__| _|   | || |\/| |  _/ _ \ (__  | |  `,
	`|___/_|/_/ \_\___|___| |___|_|  |_|_|/_/ \_\___| |_|  `,
}

var gameOverArt = []string{
	`  ___   _   __  __ ___    _____   _____ ___  `,
	` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	snap := c.controller.Snapshot()

	// On phase or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	phaseChanged := snap.Phase != c.state.prevPhase
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if phaseChanged || inactiveChanged {
		c.frame.ClearAll()
		c.canvas.ForceRedraw()
		c.state.prevPhase = snap.Phase
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()
	c.drawScene(&snap)
	c.canvas.Render(c.frame)
	c.canvas.RenderBorder(c.frame)
	c.drawUI(&snap)

	return c.frame.Flush()
}

// drawScene paints the starfield and, once a run exists, its entities.
func (c *Client) drawScene(snap *sim.Snapshot) {
	cv := c.canvas

	for _, s := range snap.Stars {
		color := draw.ColorGray
		if s.Size >= 2 {
			color = draw.ColorWhite
		}
		cv.FillRect(s.X, s.Y, s.Size, s.Size, color)
	}

	if snap.Phase == sim.PhaseMenu {
		return
	}

	for _, p := range snap.Powerups {
		color := draw.ColorGreen
		if p.Kind == object.PowerupDoubleShot {
			color = draw.ColorOrange
		}
		cv.FillRect(p.X, p.Y, p.W, p.H, color)
		cv.StrokeRect(p.X, p.Y, p.W, p.H, draw.ColorWhite)
	}

	for _, e := range snap.Enemies {
		cv.FillRect(e.X, e.Y, e.W, e.H, enemyColor(e.Kind))
	}

	if b := snap.Boss; b != nil {
		cv.FillRect(b.X, b.Y+b.H/4, b.W, b.H/2, draw.ColorMagenta)
		cv.FillRect(b.X+b.W/4, b.Y, b.W/2, b.H, draw.ColorMagenta)
		cv.FillRect(b.X+b.W/8, b.Y+b.H/2-6, 12, 12, draw.ColorYellow)
	}

	for _, b := range snap.Bullets {
		cv.FillRect(b.X, b.Y, b.W, b.H, draw.ColorYellow)
	}

	for _, e := range snap.Explosions {
		// Shrinks towards the centre as it fades.
		f := float64(e.Timer) / config.ExplosionTicks
		w, h := e.W*f, e.H*f
		color := draw.ColorYellow
		if e.Timer%4 < 2 {
			color = draw.ColorOrange
		}
		cv.FillRect(e.X+(e.W-w)/2, e.Y+(e.H-h)/2, w, h, color)
	}

	s := snap.Ship
	cv.FillRect(s.X, s.Y+s.H/4, s.W*3/4, s.H/2, draw.ColorCyan)
	cv.FillRect(s.X, s.Y, s.W/3, s.H, draw.ColorCyan)
	cv.FillRect(s.X+s.W*3/4, s.Y+s.H*3/8, s.W/4, s.H/4, draw.ColorBrightCyan)
}

func enemyColor(kind object.EnemyKind) draw.Color {
	switch kind {
	case object.EnemyFast:
		return draw.ColorOrange
	case object.EnemyZigZag:
		return draw.ColorGreen
	case object.EnemyMiniBoss:
		return draw.ColorMagenta
	default:
		return draw.ColorRed
	}
}

// writeAt writes text over the canvas and marks the cells for cleanup.
func (c *Client) writeAt(col, row int, s string) {
	c.frame.Text(col, row, s)
	c.canvas.MarkTextDirty(col, row, len([]rune(s)))
}

// writeCentered writes text centered on centerX.
func (c *Client) writeCentered(centerX, row int, s string) {
	col := c.frame.Centered(centerX, row, s)
	c.canvas.MarkTextDirty(col, row, len([]rune(s)))
}

func (c *Client) writeArt(centerX, top int, art []string) {
	for i, line := range art {
		c.writeCentered(centerX, top+i, line)
	}
}

// drawUI draws the text overlay for the current phase.
func (c *Client) drawUI(snap *sim.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.shuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch snap.Phase {
	case sim.PhaseMenu:
		c.drawMenuScreen(centerX, centerY, snap)
	case sim.PhaseCountdown:
		c.drawCountdownScreen(centerX, centerY, snap)
	case sim.PhasePlaying:
		c.drawPlayingHUD(termWidth, termHeight, snap)
	case sim.PhaseGameOver:
		c.drawGameOverScreen(centerX, centerY, snap)
	}

	if c.state.banner != "" {
		col := c.frame.Colored(centerX, 2, draw.ColorYellow, c.state.banner)
		c.canvas.MarkTextDirty(col, 2, len([]rune(c.state.banner)))
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	)
	c.writeCentered(centerX, centerY, msg)
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// blinkOn alternates every MenuBlinkPeriod.
func (c *Client) blinkOn() bool {
	return c.state.elapsed/config.MenuBlinkPeriod%2 == 0
}

// drawMenuScreen draws the title and mode selection.
func (c *Client) drawMenuScreen(centerX, centerY int, snap *sim.Snapshot) {
	top := centerY - 9
	c.writeArt(centerX, top, titleArt)

	y := top + len(titleArt) + 1
	c.writeCentered(centerX, y, "~ Side-scrolling shoot 'em up ~")

	y += 2
	modes := []string{
		"1  . . . . . .  Level mode",
		"2  . . . . . Endless mode",
	}
	for i, line := range modes {
		c.writeCentered(centerX, y+i, line)
	}

	y += len(modes) + 1
	c.writeCentered(centerX, y, "Controls")
	controls := []string{
		"W A S D / Arrows . .  Move",
		"R  . . . . . . . . Restart",
		"M  . . . . . . . . .  Menu",
		"Q  . . . . . . . . .  Quit",
	}
	for i, line := range controls {
		c.writeCentered(centerX, y+1+i, line)
	}

	y += len(controls) + 2
	prompt := ">>  Press 1 or 2 to launch  <<"
	if c.blinkOn() {
		c.writeCentered(centerX, y, prompt)
	} else {
		c.writeCentered(centerX, y, strings.Repeat(" ", len(prompt)))
	}

	best := 0
	if len(snap.Leaderboard) > 0 {
		best = snap.Leaderboard[0]
	}
	if c.server != nil {
		lobby := c.server.GetSnapshot()
		best = max(best, lobby.TopScore)
		c.writeCentered(centerX, y+3, fmt.Sprintf("Pilots online: %d", lobby.Players))
	}
	c.writeCentered(centerX, y+2, fmt.Sprintf("Endless high score: %d", best))
}

// drawCountdownScreen shows the seconds left before launch.
func (c *Client) drawCountdownScreen(centerX, centerY int, snap *sim.Snapshot) {
	if snap.Countdown == nil {
		return
	}
	title := fmt.Sprintf("LEVEL %d", snap.Level)
	if snap.Mode == sim.ModeEndless {
		title = "ENDLESS"
	}
	c.writeCentered(centerX, centerY-2, title)
	c.writeCentered(centerX, centerY, fmt.Sprintf("%-3s", snap.Countdown.Label))
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snap *sim.Snapshot) {
	c.writeAt(2, 1, fmt.Sprintf("Score: %-8d", snap.Score))

	livesText := fmt.Sprintf("Lives: %-3d", snap.Lives)
	c.writeAt(termWidth-len(livesText)-1, 1, livesText)

	var modeText string
	if snap.Mode == sim.ModeLevel {
		modeText = fmt.Sprintf("Level %-3d Target: %-6d", snap.Level, snap.LevelTarget)
	} else {
		modeText = "Endless"
	}
	c.writeAt(2, termHeight, modeText)

	if snap.Boss != nil {
		c.writeCentered(termWidth/2, 1, fmt.Sprintf("BOSS %-4d", snap.Boss.HP))
	}

	powerText := strings.Repeat(" ", 16)
	if snap.DoubleShot {
		secs := float64(snap.DoubleShotTicks) / float64(c.tickRate)
		powerText = fmt.Sprintf("Double shot %-4.0f", secs)
	}
	c.writeAt(termWidth-len(powerText)-1, termHeight, powerText)

	if c.server != nil {
		c.writeCentered(termWidth/2, termHeight, fmt.Sprintf("Pilots: %-4d", c.server.GetSnapshot().Players))
	}
}

// drawGameOverScreen shows the final score and, in endless mode, the leaderboard.
func (c *Client) drawGameOverScreen(centerX, centerY int, snap *sim.Snapshot) {
	top := centerY - 10
	c.writeArt(centerX, top, gameOverArt)

	y := top + len(gameOverArt) + 1
	c.writeCentered(centerX, y, fmt.Sprintf("Score: %d", snap.Score))
	if snap.Mode == sim.ModeLevel {
		c.writeCentered(centerX, y+1, fmt.Sprintf("Reached level %d", snap.Level))
	}

	y += 3
	if snap.Mode == sim.ModeEndless {
		c.writeCentered(centerX, y, "High scores")
		marked := false
		for i, score := range snap.Leaderboard {
			line := fmt.Sprintf("%2d. %8d  ", i+1, score)
			if score == snap.Score && !marked {
				line = fmt.Sprintf("%2d. %8d <", i+1, score)
				marked = true
			}
			c.writeCentered(centerX, y+1+i, line)
		}
		y += len(snap.Leaderboard) + 2
	}

	if c.blinkOn() {
		c.writeCentered(centerX, y, ">>  R to restart, M for menu  <<")
	} else {
		c.writeCentered(centerX, y, strings.Repeat(" ", 32))
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
