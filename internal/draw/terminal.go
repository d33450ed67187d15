package draw

import (
	"errors"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// maxChunkSize is the largest single write; small writes keep SSH output smooth.
const maxChunkSize = 1400

// FrameWriter collects one frame of terminal output and sends it with Flush.
// Positions are 1-based render-area coordinates; the centering offset is
// added on the way out. It also serves as the io.Writer for Canvas.Render.
type FrameWriter struct {
	w      io.Writer
	buf    []byte
	offCol int
	offRow int
}

// NewFrameWriter creates a FrameWriter for w with the given centering offset.
func NewFrameWriter(w io.Writer, offsetCol, offsetRow int) *FrameWriter {
	return &FrameWriter{
		w:      w,
		buf:    make([]byte, 0, 16*1024),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset changes the centering offset, e.g. after a resize.
func (fw *FrameWriter) SetOffset(offsetCol, offsetRow int) {
	fw.offCol = offsetCol
	fw.offRow = offsetRow
}

func (fw *FrameWriter) moveTo(col, row int) {
	fw.buf = append(fw.buf, "\033["...)
	fw.buf = strconv.AppendInt(fw.buf, int64(row+fw.offRow), 10)
	fw.buf = append(fw.buf, ';')
	fw.buf = strconv.AppendInt(fw.buf, int64(col+fw.offCol), 10)
	fw.buf = append(fw.buf, 'H')
}

// Write appends raw bytes. Canvas.Render emits absolute positions, so no
// offset is applied here.
func (fw *FrameWriter) Write(p []byte) (int, error) {
	fw.buf = append(fw.buf, p...)
	return len(p), nil
}

// ClearAll queues a full terminal clear.
func (fw *FrameWriter) ClearAll() {
	fw.buf = append(fw.buf, "\033[H\033[2J"...)
}

// Text writes s starting at (col, row).
func (fw *FrameWriter) Text(col, row int, s string) {
	fw.moveTo(col, row)
	fw.buf = append(fw.buf, s...)
}

// Centered writes s centered on centerX and returns its first column.
func (fw *FrameWriter) Centered(centerX, row int, s string) int {
	col := centerX - len([]rune(s))/2
	fw.Text(col, row, s)
	return col
}

// Colored is Centered in a palette color.
func (fw *FrameWriter) Colored(centerX, row int, color Color, s string) int {
	col := centerX - len([]rune(s))/2
	fw.moveTo(col, row)
	fw.buf = append(fw.buf, color.Code()...)
	fw.buf = append(fw.buf, s...)
	fw.buf = append(fw.buf, ColorReset...)
	return col
}

// Flush sends the frame in chunks of at most maxChunkSize bytes.
func (fw *FrameWriter) Flush() error {
	data := fw.buf
	fw.buf = fw.buf[:0]
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := fw.w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

var _ io.Writer = (*FrameWriter)(nil)

// TermSizeFunc reports the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// StdoutSize reads the size of the terminal attached to stdout.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

var errNoSize = errors.New("terminal reported no size")

// TermSize calls f and rejects empty sizes, which some clients report
// before their first window change.
func TermSize(f TermSizeFunc) (width, height int, err error) {
	width, height, err = f()
	if err != nil {
		return 0, 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, 0, errNoSize
	}
	return width, height, nil
}
