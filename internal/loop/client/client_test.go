package client

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/spaceimpact/internal/leaderboard"
	"github.com/tomz197/spaceimpact/internal/loop/server"
	"github.com/tomz197/spaceimpact/internal/loop/sim"
)

type fakeServer struct {
	handle       *server.ClientHandle
	store        *leaderboard.MemoryStore
	unregistered bool
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		handle: &server.ClientHandle{ID: 7, EventsCh: make(chan server.ClientEvent, 4)},
		store:  leaderboard.NewMemoryStore(1234),
	}
}

func (f *fakeServer) RegisterClient(username string) *server.ClientHandle {
	f.handle.Username = username
	return f.handle
}

func (f *fakeServer) UnregisterClient(int) { f.unregistered = true }

func (f *fakeServer) Store(int) leaderboard.Store { return f.store }

func (f *fakeServer) GetSnapshot() *server.LobbySnapshot {
	return &server.LobbySnapshot{Players: 3, TopScore: 1234}
}

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(t *testing.T, gs server.GameServer, out io.Writer) *Client {
	t.Helper()
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	return NewClient(gs, r, out, ClientOptions{
		TermSizeFunc: fixedSize(120, 40),
		Username:     "tester",
		Store:        &leaderboard.MemoryStore{},
	})
}

func TestMenuFrame(t *testing.T) {
	var out bytes.Buffer
	c := newTestClient(t, newFakeServer(), &out)

	if err := c.drawFrame(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Level mode", "Endless mode", "Pilots online: 3", "Endless high score: 1234"} {
		if !strings.Contains(got, want) {
			t.Errorf("menu frame missing %q", want)
		}
	}
}

func TestFramesFollowPhases(t *testing.T) {
	var out bytes.Buffer
	c := newTestClient(t, nil, &out)

	c.controller.Handle(sim.CommandSelectEndless, 0)
	out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if !strings.Contains(out.String(), "ENDLESS") || !strings.Contains(out.String(), "3") {
		t.Fatalf("countdown frame: %q", out.String())
	}
	if !strings.Contains(out.String(), "\033[2J") {
		t.Fatal("phase change should clear the terminal")
	}

	c.controller.Tick(c.state.Input, 3*time.Second)
	out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if !strings.Contains(out.String(), "GO!") {
		t.Fatalf("countdown should end on GO!: %q", out.String())
	}

	c.controller.Tick(c.state.Input, 3*time.Second+16*time.Millisecond)
	out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if !strings.Contains(out.String(), "Score: 0") || !strings.Contains(out.String(), "Lives: 3") {
		t.Fatalf("HUD missing: %q", out.String())
	}
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := clampTermSize(200, 50)
	if w != 160 || h != 46 || col != 20 || row != 2 {
		t.Fatalf("clamp(200,50) = %d %d %d %d", w, h, col, row)
	}
	w, h, col, row = clampTermSize(80, 24)
	if w != 80 || h != 24 || col != 0 || row != 0 {
		t.Fatalf("clamp(80,24) = %d %d %d %d", w, h, col, row)
	}
}

func TestTickRate(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{0, time.Second / 60},
		{30, time.Second / 30},
		{120, time.Second / 120},
	}
	for _, tt := range tests {
		r, w := io.Pipe()
		c := NewClient(nil, r, io.Discard, ClientOptions{TermSizeFunc: fixedSize(80, 24), TickRate: tt.rate})
		w.Close()
		if c.frameTime != tt.want {
			t.Errorf("tick rate %d: frame time %v, want %v", tt.rate, c.frameTime, tt.want)
		}
	}
}

func TestServerEvents(t *testing.T) {
	fs := newFakeServer()
	c := newTestClient(t, fs, io.Discard)

	fs.handle.EventsCh <- server.ClientEvent{Type: server.EventHighScore, Username: "ace", Score: 900}
	c.processServerEvents()
	if !strings.Contains(c.state.banner, "ace") || c.state.bannerTimer <= 0 {
		t.Fatalf("banner not shown: %q", c.state.banner)
	}

	fs.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents()
	if !c.state.shuttingDown {
		t.Fatal("shutdown event ignored")
	}

	c.state.delta = 10 * time.Second
	c.update()
	if c.state.Running {
		t.Fatal("client should leave once the shutdown timer runs out")
	}
	if c.state.banner != "" {
		t.Fatal("banner should expire")
	}

	close(fs.handle.EventsCh)
	c.state.Running = true
	c.processServerEvents()
	if c.state.Running {
		t.Fatal("closed event channel should stop the client")
	}
}

func TestRunQuits(t *testing.T) {
	r, w := io.Pipe()
	fs := newFakeServer()
	var out bytes.Buffer
	c := NewClient(fs, r, &out, ClientOptions{TermSizeFunc: fixedSize(80, 24)})

	go func() {
		w.Write([]byte("q"))
		w.Close()
	}()

	done := make(chan error, 1)
	go func() { done <- c.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("client did not quit")
	}
	if !fs.unregistered {
		t.Fatal("client should unregister on exit")
	}
}
