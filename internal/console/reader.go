package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Reader prompts for and reads one line at a time. Lines have no length
// limit.
//
// Lines are read on a background goroutine so that ReadLine can give up
// when its context is cancelled (Ctrl-C) even though the underlying read
// is still blocked. After a cancel that goroutine stays parked on the
// input until the process exits; a console game reads once per run, so
// nothing waits for it.
type Reader struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan line
}

// NewReader reads lines from in and writes prompts to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: in, out: out, lines: make(chan line, 1)}
}

// ReadLine prints prompt and waits for a line, without its line ending.
// It returns ctx.Err() if ctx is cancelled first and io.EOF once the input
// is exhausted.
func (r *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	r.once.Do(func() { go r.scan() })
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (r *Reader) scan() {
	defer close(r.lines)
	br := bufio.NewReader(r.in)
	for {
		s, err := br.ReadString('\n')
		if len(s) > 0 {
			r.lines <- line{text: strings.TrimRight(s, "\r\n")}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.lines <- line{err: err}
			}
			return
		}
	}
}
