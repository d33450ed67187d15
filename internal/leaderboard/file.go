package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// FileStore keeps the board as a JSON array of integers on disk.
// It is safe for concurrent use; SSH sessions share one store.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

// NewFileStore creates a store backed by the file at path.
// The file and its directory are created on first save.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.Default()
	}
	return &FileStore{
		path:   path,
		logger: logger.With("leaderboard", path),
	}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the board. A missing or corrupt file yields an empty board.
func (f *FileStore) Load() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Save writes the board, replacing the file atomically.
func (f *FileStore) Save(scores []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(scores)
}

// Add reads, merges and writes the board under one lock.
func (f *FileStore) Add(score int) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	board := Merge(f.load(), score)
	return board, f.save(board)
}

func (f *FileStore) load() []int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("reading leaderboard", "err", err)
		}
		return []int{}
	}

	var scores []int
	if err := json.Unmarshal(data, &scores); err != nil {
		f.logger.Warn("ignoring corrupt leaderboard", "err", err)
		return []int{}
	}
	if scores == nil {
		return []int{}
	}
	return normalize(scores)
}

func (f *FileStore) save(scores []int) error {
	if scores == nil {
		scores = []int{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create leaderboard dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close leaderboard: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}
