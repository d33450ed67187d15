package input

import (
	"testing"
	"time"
)

func newTestStream(hold time.Duration) *Stream {
	return &Stream{ch: make(chan byte, 64), hold: hold}
}

func (s *Stream) push(bs ...byte) {
	for _, b := range bs {
		s.ch <- b
	}
}

func TestParseOneShots(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		number  int
		restart bool
		menu    bool
		quit    bool
	}{
		{"nothing", "", -1, false, false, false},
		{"level mode", "1", 1, false, false, false},
		{"endless mode", "2", 2, false, false, false},
		{"restart", "r", -1, true, false, false},
		{"restart upper", "R", -1, true, false, false},
		{"menu", "M", -1, false, true, false},
		{"quit", "q", -1, false, false, true},
		{"ctrl-c", "\x03", -1, false, false, true},
		{"mixed", "2rm", 2, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ks keyState
			in := parse(&ks, []byte(tt.buf), time.Now())
			if in.Number != tt.number || in.Restart != tt.restart || in.Menu != tt.menu || in.Quit != tt.quit {
				t.Fatalf("parse(%q) = %+v", tt.buf, in)
			}
		})
	}
}

func TestArrowKeysAreHeld(t *testing.T) {
	s := newTestStream(100 * time.Millisecond)
	start := time.Now()

	s.push('\x1b', '[', 'A', '\x1b', '[', 'C')
	in := ReadInputAt(s, start)
	if !in.Up || !in.Right || in.Down || in.Left {
		t.Fatalf("after arrows: %+v", in)
	}

	// No new bytes, still within the hold window.
	in = ReadInputAt(s, start.Add(50*time.Millisecond))
	if !in.Up || !in.Right {
		t.Fatalf("keys released inside hold window: %+v", in)
	}
	if in.Number != -1 || in.Restart {
		t.Fatalf("one-shot keys leaked into a later frame: %+v", in)
	}

	in = ReadInputAt(s, start.Add(150*time.Millisecond))
	if in.Up || in.Right {
		t.Fatalf("keys still held after hold window: %+v", in)
	}
}

func TestLetterDirections(t *testing.T) {
	s := newTestStream(100 * time.Millisecond)
	s.push('s', 'a')
	in := ReadInputAt(s, time.Now())
	if !in.Down || !in.Left || in.Up || in.Right {
		t.Fatalf("wasd input: %+v", in)
	}
}

func TestOneShotIsEdgeTriggered(t *testing.T) {
	s := newTestStream(100 * time.Millisecond)
	now := time.Now()

	s.push('1')
	if in := ReadInputAt(s, now); in.Number != 1 {
		t.Fatalf("expected number 1, got %d", in.Number)
	}
	if in := ReadInputAt(s, now.Add(time.Millisecond)); in.Number != -1 {
		t.Fatalf("number repeated on next frame: %d", in.Number)
	}
}

func TestResetKeyInput(t *testing.T) {
	s := newTestStream(time.Second)
	now := time.Now()
	s.push('w')
	ReadInputAt(s, now)
	ResetKeyInput(s)
	if in := ReadInputAt(s, now); in.Up {
		t.Fatal("reset should release held keys")
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := newTestStream(time.Second)
	close(s.ch)
	if in := ReadInputAt(s, time.Now()); !in.Quit {
		t.Fatal("closed stream should report quit")
	}
}

func TestSplitArrowSequence(t *testing.T) {
	tests := []struct {
		name  string
		first []byte
		rest  []byte
	}{
		{"after bracket", []byte{'\x1b', '['}, []byte{'D'}},
		{"after escape", []byte{'\x1b'}, []byte{'[', 'D'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStream(100 * time.Millisecond)
			now := time.Now()

			s.push(tt.first...)
			if in := ReadInputAt(s, now); in.Left || in.Right {
				t.Fatalf("partial sequence moved: %+v", in)
			}

			s.push(tt.rest...)
			in := ReadInputAt(s, now.Add(time.Millisecond))
			if !in.Left || in.Right {
				t.Fatalf("split left arrow read as %+v", in)
			}
		})
	}
}

func TestSplitIncomplete(t *testing.T) {
	tests := []struct {
		buf, complete, rest string
	}{
		{"ab", "ab", ""},
		{"a\x1b", "a", "\x1b"},
		{"a\x1b[", "a", "\x1b["},
		{"\x1b[A", "\x1b[A", ""},
	}
	for _, tt := range tests {
		complete, rest := splitIncomplete([]byte(tt.buf))
		if string(complete) != tt.complete || string(rest) != tt.rest {
			t.Errorf("splitIncomplete(%q) = %q, %q", tt.buf, complete, rest)
		}
	}
}
