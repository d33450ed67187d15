// Package server is the lobby shared by all SSH sessions. Every session plays
// its own run; the server tracks who is connected, owns the shared
// leaderboard and tells sessions about new high scores and shutdowns.
package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
	"github.com/tomz197/spaceimpact/internal/loop/config"
)

// GameServer is the interface clients use to talk to the lobby.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	Store(clientID int) leaderboard.Store
	GetSnapshot() *LobbySnapshot
}

// Server manages connected clients and the shared leaderboard.
type Server struct {
	store    leaderboard.Store
	logger   *log.Logger
	snapshot atomic.Pointer[LobbySnapshot]

	clients      map[int]*ClientHandle
	nextClientID int
	registerCh   chan *ClientHandle
	unregisterCh chan int
	scoreCh      chan scoreReport
	mu           sync.RWMutex

	// Owned by the Run goroutine.
	board    []int
	topPilot string
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// NewServer creates a lobby backed by store.
func NewServer(store leaderboard.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		store:        store,
		logger:       logger,
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan int, 16),
		scoreCh:      make(chan scoreReport, 16),
		board:        store.Load(),
	}
	s.createSnapshot()
	return s
}

// Run starts the server loop. Blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frameStart := time.Now()

		s.processRegistrations()
		s.processScores()
		s.createSnapshot()

		elapsed := time.Since(frameStart)
		if elapsed < config.ServerTickTime {
			time.Sleep(config.ServerTickTime - elapsed)
		}
	}
}

// Shutdown notifies all connected clients and waits for them to disconnect,
// up to timeout. The caller should cancel the server context afterwards.
func (s *Server) Shutdown(timeout time.Duration) {
	s.broadcast(ClientEvent{Type: EventServerShutdown}, 0)

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			s.processRegistrations()
			s.mu.RLock()
			remaining := len(s.clients)
			s.mu.RUnlock()
			if remaining == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	id := s.nextClientID
	s.nextClientID++
	s.mu.Unlock()

	handle := &ClientHandle{
		ID:       id,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}

	s.registerCh <- handle
	return handle
}

// UnregisterClient removes a client from the server.
func (s *Server) UnregisterClient(clientID int) {
	s.unregisterCh <- clientID
}

// GetSnapshot returns the current lobby snapshot.
func (s *Server) GetSnapshot() *LobbySnapshot {
	return s.snapshot.Load()
}

// Store returns the leaderboard as seen by one client. Saves go to the
// shared store and are announced to the other clients.
func (s *Server) Store(clientID int) leaderboard.Store {
	return &sessionStore{server: s, clientID: clientID}
}

// processRegistrations handles pending client registrations/unregistrations.
func (s *Server) processRegistrations() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.clients[handle.ID] = handle
			s.mu.Unlock()
			s.logger.Info("pilot joined", "id", handle.ID, "user", handle.Username)
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			if handle, ok := s.clients[clientID]; ok {
				close(handle.EventsCh)
				delete(s.clients, clientID)
				s.logger.Info("pilot left", "id", clientID, "user", handle.Username)
			}
			s.mu.Unlock()
		default:
			return
		}
	}
}

// processScores refreshes the board after each recorded score and
// announces a new top score. The store is authoritative because several
// sessions may record at once.
func (s *Server) processScores() {
	for {
		select {
		case r := <-s.scoreCh:
			prevTop := 0
			if len(s.board) > 0 {
				prevTop = s.board[0]
			}
			s.board = s.store.Load()
			if r.score <= prevTop || len(s.board) == 0 || s.board[0] != r.score {
				continue
			}

			s.mu.RLock()
			username := ""
			if h, ok := s.clients[r.clientID]; ok {
				username = h.Username
			}
			s.mu.RUnlock()

			s.topPilot = username
			s.logger.Info("new high score", "user", username, "score", r.score)
			s.broadcast(ClientEvent{Type: EventHighScore, Username: username, Score: r.score}, r.clientID)
		default:
			return
		}
	}
}

// broadcast sends an event to every client except skipID. Clients with a
// full queue miss the event.
func (s *Server) broadcast(event ClientEvent, skipID int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, handle := range s.clients {
		if id == skipID {
			continue
		}
		select {
		case handle.EventsCh <- event:
		default:
		}
	}
}

// sessionStore is the leaderboard.Store handed to one client.
type sessionStore struct {
	server   *Server
	clientID int
}

func (ss *sessionStore) Load() []int {
	return ss.server.store.Load()
}

func (ss *sessionStore) Add(score int) ([]int, error) {
	board, err := ss.server.store.Add(score)
	if err != nil {
		return board, err
	}
	select {
	case ss.server.scoreCh <- scoreReport{clientID: ss.clientID, score: score}:
	default:
	}
	return board, nil
}
