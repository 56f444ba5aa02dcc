// Package console is the terminal I/O surface of the game: readers that
// turn keyboard input into choices and a printer that shows game text.
package console

import (
	"bufio"
	"context"
	"io"
	"unicode"

	"golang.org/x/term"

	"github.com/oakwood-commons/blackwood/internal/navigator"
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyEsc   = 0x1b
)

// LineReader reads choices from buffered, line-oriented input. Whitespace
// (including newlines) before a choice is skipped, and each call consumes
// exactly one non-space rune, so "xe\n" yields 'x' then 'e'.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadChoice returns the next non-space rune, or io.EOF.
func (l *LineReader) ReadChoice(_ context.Context) (rune, error) {
	return nextNonSpace(l.r)
}

func nextNonSpace(r *bufio.Reader) (rune, error) {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		if unicode.IsSpace(c) {
			continue
		}
		return c, nil
	}
}

// TTY is the terminal file a KeyReader reads from, normally os.Stdin.
type TTY interface {
	io.Reader
	Fd() uintptr
}

// KeyReader reads single key presses with the terminal in raw mode, so the
// player does not need to press Enter. When the input is not a terminal it
// behaves like a LineReader.
//
// Ctrl-C and Ctrl-D end input (io.EOF). The left and right arrow keys map
// to the left and right choices.
type KeyReader struct {
	tty TTY
	br  *bufio.Reader

	isTerminal func(fd int) bool
	makeRaw    func(fd int) (*term.State, error)
	restore    func(fd int, state *term.State) error
}

// NewKeyReader reads from tty.
func NewKeyReader(tty TTY) *KeyReader {
	return &KeyReader{
		tty:        tty,
		br:         bufio.NewReader(tty),
		isTerminal: term.IsTerminal,
		makeRaw:    term.MakeRaw,
		restore:    term.Restore,
	}
}

// ReadChoice blocks for one key press.
func (k *KeyReader) ReadChoice(_ context.Context) (rune, error) {
	fd := int(k.tty.Fd())
	if !k.isTerminal(fd) {
		return nextNonSpace(k.br)
	}
	state, err := k.makeRaw(fd)
	if err != nil {
		// Some terminals refuse raw mode; line input still works there.
		return nextNonSpace(k.br)
	}
	defer func() {
		_ = k.restore(fd, state)
	}()
	return decodeKey(k.br)
}

// decodeKey reads one key from raw terminal input.
func decodeKey(r *bufio.Reader) (rune, error) {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		switch {
		case c == keyCtrlC || c == keyCtrlD:
			return 0, io.EOF
		case c == keyEsc:
			return decodeEscape(r)
		case unicode.IsSpace(c):
			continue
		default:
			return c, nil
		}
	}
}

// decodeEscape handles the bytes after ESC. Arrow keys arrive as ESC [ C/D.
// A lone ESC, or any other sequence, is returned as ESC and counts as an
// invalid choice.
func decodeEscape(r *bufio.Reader) (rune, error) {
	if r.Buffered() < 2 {
		return keyEsc, nil
	}
	seq, err := r.Peek(2)
	if err != nil || seq[0] != '[' {
		return keyEsc, nil
	}
	switch seq[1] {
	case 'D':
		_, _ = r.Discard(2)
		return navigator.KeyLeft, nil
	case 'C':
		_, _ = r.Discard(2)
		return navigator.KeyRight, nil
	case 'A', 'B':
		_, _ = r.Discard(2)
		return keyEsc, nil
	default:
		return keyEsc, nil
	}
}
