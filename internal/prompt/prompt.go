// Package prompt reads line-oriented answers for the interactive menu.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter writes a label and waits for one line of input.
// Lines are read by a background goroutine so a cancelled context
// interrupts a pending Ask. Call Close when done asking.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	lines chan line

	done      chan struct{}
	closeOnce sync.Once
}

type line struct {
	text string
	err  error
}

// New creates a Prompter reading from in and writing labels to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, done: make(chan struct{})}
}

// Close releases the reader goroutine once its pending read returns.
// Unread input is dropped. Safe to call more than once.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

// Ask writes label and returns the next input line without its line ending.
// Returns io.EOF once input is exhausted, or ctx.Err() if ctx is done first.
func (p *Prompter) Ask(ctx context.Context, label string) (string, error) {
	if label != "" {
		fmt.Fprint(p.out, label)
	}
	if p.lines == nil {
		p.lines = make(chan line)
		go p.read()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (p *Prompter) read() {
	defer close(p.lines)

	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		if !p.send(line{text: strings.TrimRight(sc.Text(), "\r")}) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		p.send(line{err: err})
	}
}

// send delivers l to Ask. Returns false if the Prompter was closed first.
func (p *Prompter) send(l line) bool {
	select {
	case p.lines <- l:
		return true
	case <-p.done:
		return false
	}
}
