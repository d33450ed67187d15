package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the runtime knobs that can come from a YAML file or the
// environment. Environment variables win over the file.
type Settings struct {
	LeaderboardPath string `yaml:"leaderboard_path"`
	TickRate        int    `yaml:"tick_rate"`   // Simulation ticks per second
	Seed            int64  `yaml:"seed"`        // 0 seeds from the clock
	KeyHoldMS       int    `yaml:"key_hold_ms"` // Terminal held-key window
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LeaderboardPath: "leaderboard.json",
		TickRate:        60,
		KeyHoldMS:       120,
	}
}

// Load reads settings from path, filling unset fields from the defaults and
// then applying environment overrides. An empty path or a missing file
// yields the defaults.
func Load(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return s, fmt.Errorf("reading settings: %w", err)
		default:
			var file Settings
			if err := yaml.Unmarshal(data, &file); err != nil {
				return s, fmt.Errorf("parsing settings %s: %w", path, err)
			}
			s.merge(file)
		}
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	if s.TickRate <= 0 {
		return s, fmt.Errorf("tick_rate must be positive, got %d", s.TickRate)
	}
	return s, nil
}

// LoadFromEnv loads the settings file named by SPACEIMPACT_CONFIG.
func LoadFromEnv() (Settings, error) {
	return Load(GetEnv("SPACEIMPACT_CONFIG", ""))
}

func (s *Settings) merge(o Settings) {
	if o.LeaderboardPath != "" {
		s.LeaderboardPath = o.LeaderboardPath
	}
	if o.TickRate != 0 {
		s.TickRate = o.TickRate
	}
	if o.Seed != 0 {
		s.Seed = o.Seed
	}
	if o.KeyHoldMS != 0 {
		s.KeyHoldMS = o.KeyHoldMS
	}
}

func (s *Settings) applyEnv() error {
	s.LeaderboardPath = GetEnv("LEADERBOARD_PATH", s.LeaderboardPath)

	if v := GetEnv("SPACEIMPACT_SEED", ""); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing SPACEIMPACT_SEED: %w", err)
		}
		s.Seed = seed
	}
	return nil
}

// HoldDuration returns the held-key window.
func (s Settings) HoldDuration() time.Duration {
	return time.Duration(s.KeyHoldMS) * time.Millisecond
}

// Rand returns the random source for a game. A zero seed is replaced with
// the current time.
func (s Settings) Rand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
