// internal/console/presenter.go
//
// Terminal rendering for the console game.
// Responsibilities:
//   - Welcome banner (ASCII art via go-figure).
//   - Info / warning / error / success messages with ANSI styling.
//   - Styling is turned off when the output is not a terminal or NO_COLOR is set.

package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBold   = "\x1b[1m"
)

// Presenter writes game messages to a terminal. It holds no game state.
type Presenter struct {
	out   io.Writer
	color bool
}

// NewPresenter renders to w, styled when color is true.
func NewPresenter(w io.Writer, color bool) *Presenter {
	return &Presenter{out: w, color: color}
}

// Stdout returns a Presenter for the process's standard output, styled
// only when stdout is a terminal and noColor is false.
func Stdout(noColor bool) *Presenter {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return NewPresenter(colorable.NewColorable(os.Stdout), tty && !noColor)
}

// Banner prints title as ASCII art.
func (p *Presenter) Banner(title string) {
	art := figure.NewFigure(title, "", true).String()
	p.write(ansiBold+ansiRed, strings.TrimRight(art, "\n"))
}

// Info prints an unstyled message.
func (p *Presenter) Info(msg string) { p.write("", msg) }

// Warning prints a yellow message.
func (p *Presenter) Warning(msg string) { p.write(ansiYellow, msg) }

// Error prints a red message.
func (p *Presenter) Error(msg string) { p.write(ansiRed, msg) }

// Success prints a green message.
func (p *Presenter) Success(msg string) { p.write(ansiGreen, msg) }

func (p *Presenter) write(style, msg string) {
	if p.color && style != "" {
		fmt.Fprintln(p.out, style+msg+ansiReset)
		return
	}
	fmt.Fprintln(p.out, msg)
}
