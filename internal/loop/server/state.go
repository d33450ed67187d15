package server

import (
	"slices"
)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Closed when the client is unregistered
}

// ClientEvent is sent from the server to a client.
type ClientEvent struct {
	Type     ClientEventType
	Username string // Who set the score, for EventHighScore
	Score    int
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventHighScore ClientEventType = iota // Another pilot took the top spot
	EventServerShutdown
)

// LobbySnapshot is an immutable view of the server for rendering.
type LobbySnapshot struct {
	Players     int
	Pilots      []string // Usernames of connected clients, sorted
	TopScore    int
	TopPilot    string // Who set TopScore this server run, empty if loaded from disk
	Leaderboard []int
}

// scoreReport is sent when a client records a score.
type scoreReport struct {
	clientID int
	score    int
}

func (s *Server) createSnapshot() {
	s.mu.RLock()
	pilots := make([]string, 0, len(s.clients))
	for _, h := range s.clients {
		pilots = append(pilots, h.Username)
	}
	s.mu.RUnlock()
	slices.Sort(pilots)

	snap := &LobbySnapshot{
		Players:     len(pilots),
		Pilots:      pilots,
		TopPilot:    s.topPilot,
		Leaderboard: slices.Clone(s.board),
	}
	if len(s.board) > 0 {
		snap.TopScore = s.board[0]
	}
	s.snapshot.Store(snap)
}
