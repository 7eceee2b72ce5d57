package app

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const ctrlC = 0x03

// rawTerminal switches fd to raw mode and returns the function restoring the
// previous mode. Callers defer it immediately.
func rawTerminal(fd int) (restore func(), err error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw terminal: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

// terminalSize returns the size of the terminal on f, or ok=false when f is
// not a terminal.
func terminalSize(f *os.File) (rows, cols int, ok bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || rows <= 0 || cols <= 0 {
		return 0, 0, false
	}
	return rows, cols, true
}

// readKeys forwards bytes from r to the returned channel. Ctrl-C is mapped to
// 'q' since raw mode disables the interrupt signal. The reader goroutine ends
// when r does; a blocked read on stdin lives until process exit.
func readKeys(r io.Reader) <-chan rune {
	keys := make(chan rune, 16)
	go func() {
		defer close(keys)
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				key := rune(buf[0])
				if buf[0] == ctrlC {
					key = 'q'
				}
				send(keys, key)
			}
			if err != nil {
				return
			}
		}
	}()
	return keys
}

// send queues key, discarding the oldest queued key when the buffer is full
// so the most recent input (a quit in particular) is never the one lost.
func send(keys chan rune, key rune) {
	for {
		select {
		case keys <- key:
			return
		default:
		}
		select {
		case <-keys:
		default:
		}
	}
}

// crlfWriter translates "\n" into "\r\n" for terminals with output
// post-processing disabled.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p)+len(p)/8)
	for _, b := range p {
		if b == '\n' {
			out = append(out, '\r')
		}
		out = append(out, b)
	}
	if _, err := c.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
