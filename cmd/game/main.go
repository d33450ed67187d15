package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceimpact/internal/config"
	"github.com/tomz197/spaceimpact/internal/leaderboard"
	"github.com/tomz197/spaceimpact/internal/loop"
	"golang.org/x/term"
)

func main() {
	// The terminal is the screen, so logs go to a file when asked for.
	logOut := io.Discard
	if path := config.GetEnv("SPACEIMPACT_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})

	settings, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		Store:        leaderboard.NewFileStore(settings.LeaderboardPath, logger),
		Rand:         settings.Rand(),
		Logger:       logger,
		HoldDuration: settings.HoldDuration(),
		TickRate:     settings.TickRate,
	}
	if err := loop.Run(bufio.NewReader(os.Stdin), os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
