package server

import (
	"context"
	"io"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
)

func startServer(t *testing.T, store leaderboard.Store) *Server {
	t.Helper()
	s := NewServer(store, log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go s.Run(ctx)
	return s
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func nextEvent(t *testing.T, h *ClientHandle) ClientEvent {
	t.Helper()
	select {
	case e, ok := <-h.EventsCh:
		if !ok {
			t.Fatal("events channel closed")
		}
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
	return ClientEvent{}
}

func TestSnapshotTracksPilots(t *testing.T) {
	s := startServer(t, leaderboard.NewMemoryStore(70, 90))

	if snap := s.GetSnapshot(); snap.TopScore != 90 || !slices.Equal(snap.Leaderboard, []int{90, 70}) {
		t.Fatalf("initial snapshot %+v", snap)
	}

	a := s.RegisterClient("zoe")
	s.RegisterClient("adam")
	waitFor(t, "two pilots", func() bool { return s.GetSnapshot().Players == 2 })
	if got := s.GetSnapshot().Pilots; !slices.Equal(got, []string{"adam", "zoe"}) {
		t.Fatalf("pilots %v", got)
	}

	s.UnregisterClient(a.ID)
	waitFor(t, "one pilot", func() bool { return s.GetSnapshot().Players == 1 })
	if _, ok := <-a.EventsCh; ok {
		t.Fatal("events channel should be closed after unregister")
	}
}

func TestHighScoreIsAnnounced(t *testing.T) {
	store := leaderboard.NewMemoryStore(100)
	s := startServer(t, store)

	setter := s.RegisterClient("ace")
	watcher := s.RegisterClient("rookie")
	waitFor(t, "registration", func() bool { return s.GetSnapshot().Players == 2 })

	if _, err := s.Store(setter.ID).Add(250); err != nil {
		t.Fatalf("add: %v", err)
	}

	e := nextEvent(t, watcher)
	if e.Type != EventHighScore || e.Username != "ace" || e.Score != 250 {
		t.Fatalf("unexpected event %+v", e)
	}
	select {
	case e := <-setter.EventsCh:
		t.Fatalf("setter should not be told about its own score: %+v", e)
	default:
	}

	if got := store.Load(); !slices.Equal(got, []int{250, 100}) {
		t.Fatalf("shared store %v", got)
	}
	waitFor(t, "snapshot update", func() bool {
		snap := s.GetSnapshot()
		return snap.TopScore == 250 && snap.TopPilot == "ace"
	})
}

func TestLowerScoreIsNotAnnounced(t *testing.T) {
	s := startServer(t, leaderboard.NewMemoryStore(500))
	a := s.RegisterClient("a")
	b := s.RegisterClient("b")
	waitFor(t, "registration", func() bool { return s.GetSnapshot().Players == 2 })

	if _, err := s.Store(a.ID).Add(20); err != nil {
		t.Fatalf("add: %v", err)
	}
	waitFor(t, "board update", func() bool { return len(s.GetSnapshot().Leaderboard) == 2 })

	select {
	case e := <-b.EventsCh:
		t.Fatalf("unexpected event %+v", e)
	default:
	}
}

func TestSimultaneousScoresAreKept(t *testing.T) {
	store := leaderboard.NewMemoryStore()
	s := startServer(t, store)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		i := i
		h := s.RegisterClient("pilot")
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Store(h.ID).Add(i * 100); err != nil {
				t.Errorf("add: %v", err)
			}
		}()
	}
	wg.Wait()

	want := []int{800, 700, 600, 500, 400, 300, 200, 100}
	if got := store.Load(); !slices.Equal(got, want) {
		t.Fatalf("board %v, want %v", got, want)
	}
	waitFor(t, "lobby board", func() bool { return slices.Equal(s.GetSnapshot().Leaderboard, want) })
}

func TestShutdownNotifiesAndWaits(t *testing.T) {
	s := startServer(t, &leaderboard.MemoryStore{})
	h := s.RegisterClient("pilot")
	waitFor(t, "registration", func() bool { return s.GetSnapshot().Players == 1 })

	done := make(chan struct{})
	go func() {
		s.Shutdown(5 * time.Second)
		close(done)
	}()

	if e := nextEvent(t, h); e.Type != EventServerShutdown {
		t.Fatalf("got %+v, want shutdown", e)
	}
	s.UnregisterClient(h.ID)

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("shutdown did not return after the last client left")
	}
}
