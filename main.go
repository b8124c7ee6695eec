package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/flashcards/internal/config"
	"git.lost.host/meutraa/flashcards/internal/game"
	"git.lost.host/meutraa/flashcards/internal/input"
	"git.lost.host/meutraa/flashcards/internal/render"
	"git.lost.host/meutraa/flashcards/internal/score"
	"git.lost.host/meutraa/flashcards/internal/sound"
	"github.com/eiannone/keyboard"
	"golang.org/x/term"
)

const resizePeriod = 250 * time.Millisecond

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	// The screen belongs to the renderer while playing
	log.SetOutput(io.Discard)
	if cfg.Log != "" {
		f, err := os.OpenFile(cfg.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if nil != err {
			return fmt.Errorf("unable to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	fd := int(os.Stdout.Fd())
	columns, rows, err := term.GetSize(fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	// Ensure our Default implementations are used as interfaces
	var scorer score.Scorer = &score.DefaultScorer{}
	var r render.Renderer = &render.DefaultRenderer{Out: os.Stdout, Fd: fd}

	controller := game.NewController(scorer, game.NewPicker(cfg.Seed), cfg.Delay)
	p := NewProgram(controller, r, input.NewBindings(cfg.Keys))
	if _, err := p.Resize(columns, rows); nil != err {
		return err
	}

	if cfg.Sound {
		player, err := sound.NewPlayer(cfg.Volume)
		if nil != err {
			return err
		}
		p.Player = player
	}

	keyChannel, err := keyboard.GetKeys(16)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer finish(keyboard.Close, os.Stdout, p)

	if err := r.Init(); nil != err {
		return fmt.Errorf("unable to set up terminal: %w", err)
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	controller.Start()
	defer controller.Stop()

	ticker := time.NewTicker(resizePeriod)
	defer ticker.Stop()

	dirty := true
	for {
		if dirty {
			if err := p.Render(); nil != err {
				return err
			}
			dirty = false
		}
		select {
		case ev, ok := <-keyChannel:
			if !ok {
				return nil
			}
			if !p.Update(p.Bindings.Action(ev)) {
				return nil
			}
			dirty = true
		case <-controller.Pending():
			dirty = controller.Advance()
		case <-ticker.C:
			w, h, err := term.GetSize(fd)
			if nil != err {
				log.Println("unable to get terminal size", err)
				break
			}
			changed, err := p.Resize(w, h)
			if nil != err {
				return err
			}
			dirty = changed
		}
	}
}

// finish hands the tty back before printing the summary, the keyboard
// keeps it in raw mode until closed
func finish(closeKeyboard func() error, out io.Writer, p *Program) {
	if err := closeKeyboard(); nil != err {
		log.Println("unable to close keyboard", err)
	}
	s := p.Score()
	fmt.Fprintf(out, "%v/%v correct, best streak %v\n", s.Correct, s.Total, s.BestStreak)
}
