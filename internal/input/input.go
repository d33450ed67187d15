// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"io"
	"time"
)

// DefaultHoldDuration is how long a direction key is considered "held" after
// its last press. Terminals report no key-up, so held state is inferred from
// auto-repeat.
const DefaultHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
// Directions are level-triggered; Number, Restart and Menu are one-shot and
// only set on the frame the key arrived.
type Input struct {
	Quit    bool
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Restart bool
	Menu    bool
	Number  int // Digit pressed this frame, -1 if none
	Pressed []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks held key state.
type Stream struct {
	ch      chan byte
	hold    time.Duration
	keys    keyState
	pending []byte // Unfinished escape sequence from the previous read
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// hold <= 0 selects DefaultHoldDuration.
func StartStream(r io.Reader, hold time.Duration) *Stream {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{
		ch:   make(chan byte, 128),
		hold: hold,
	}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	return ReadInputAt(s, time.Now())
}

// ReadInputAt is ReadInput with an explicit clock.
// A closed stream reports Quit.
func ReadInputAt(s *Stream, now time.Time) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	data := append(s.pending, buf...)
	data, s.pending = splitIncomplete(data)
	if closed {
		s.pending = nil
	}

	in := parse(&s.keys, data, now)
	in.Pressed = buf
	in.Up = now.Sub(s.keys.up) < s.hold
	in.Down = now.Sub(s.keys.down) < s.hold
	in.Left = now.Sub(s.keys.left) < s.hold
	in.Right = now.Sub(s.keys.right) < s.hold
	if closed {
		in.Quit = true
	}
	return in
}

// ResetKeyInput forgets all held keys, so a key held across a screen change
// does not leak into the next one.
func ResetKeyInput(s *Stream) {
	s.keys = keyState{}
}

// splitIncomplete cuts a trailing ESC or ESC [ off buf; its final byte has
// not arrived yet.
func splitIncomplete(buf []byte) (complete, rest []byte) {
	n := len(buf)
	switch {
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return buf[:n-2], []byte{'\x1b', '['}
	case n >= 1 && buf[n-1] == '\x1b':
		return buf[:n-1], []byte{'\x1b'}
	}
	return buf, nil
}

// parse decodes one frame's bytes. Held keys update their timestamps in
// state; one-shot keys are returned directly.
func parse(state *keyState, buf []byte, now time.Time) Input {
	in := Input{Number: -1, Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
			case 'B':
				state.down = now
			case 'C':
				state.right = now
			case 'D':
				state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			in.Quit = true
		case 'w', 'W', 'k', 'K':
			state.up = now
		case 's', 'S', 'j', 'J':
			state.down = now
		case 'a', 'A', 'h', 'H':
			state.left = now
		case 'd', 'D', 'l', 'L':
			state.right = now
		case 'r', 'R':
			in.Restart = true
		case 'm', 'M':
			in.Menu = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			in.Number = int(b - '0')
		}
	}

	return in
}
