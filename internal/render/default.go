package render

import (
	"image/color"
	"io"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out io.Writer
	Fd  int // Terminal to put in raw mode, negative to skip

	buffer       strings.Builder
	restoreState *term.State
}

func (r *DefaultRenderer) Init() error {
	if r.Fd >= 0 && term.IsTerminal(r.Fd) {
		state, err := term.MakeRaw(r.Fd)
		if nil != err {
			return err
		}
		r.restoreState = state
	}

	r.buffer.WriteString("\033[?1049h") // Enable alternate buffer
	r.buffer.WriteString("\033[?25l")   // Make the cursor invisible
	r.buffer.WriteString("\033[2J")     // Clear the screen
	return r.flush()
}

func (r *DefaultRenderer) Deinit() error {
	r.buffer.WriteString("\033[?1049l") // Disable alternate buffer
	r.buffer.WriteString("\033[?25h")   // Make the cursor visible
	err := r.flush()
	if nil != r.restoreState {
		if rerr := term.Restore(r.Fd, r.restoreState); nil != rerr {
			return rerr
		}
		r.restoreState = nil
	}
	return err
}

// Render writes every row of the canvas, one escape per run of color
func (r *DefaultRenderer) Render(c *Canvas) error {
	width, height := c.Size()
	for row := 0; row < height; row++ {
		r.Fill(row+1, 1, "\033[K")
		start := 0
		for start < width {
			_, fg := c.At(row, start)
			end := start
			var run strings.Builder
			for end < width {
				ch, f := c.At(row, end)
				if f != fg {
					break
				}
				run.WriteRune(ch)
				end++
			}
			if strings.TrimSpace(run.String()) != "" {
				r.FillColor(row+1, start+1, fg, run.String())
			}
			start = end
		}
	}
	return r.flush()
}

// Fill moves to a one based row and column and writes message
func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}
