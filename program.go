package main

import (
	"log"

	"git.lost.host/meutraa/flashcards/internal/game"
	"git.lost.host/meutraa/flashcards/internal/input"
	"git.lost.host/meutraa/flashcards/internal/render"
	"git.lost.host/meutraa/flashcards/internal/score"
	"git.lost.host/meutraa/flashcards/internal/theme"
)

type Player interface {
	Play(n game.Note)
}

type Program struct {
	Controller *game.Controller
	Renderer   render.Renderer
	Theme      theme.Theme
	Bindings   input.Bindings
	Player     Player // nil when sound is off

	canvas *render.Canvas
	layout render.Layout
	width  int
	height int
}

func NewProgram(c *game.Controller, r render.Renderer, bindings input.Bindings) *Program {
	p := &Program{
		Controller: c,
		Renderer:   r,
		Theme:      &theme.DefaultTheme{},
		Bindings:   bindings,
	}
	c.OnAdvance = func(round game.Round) {
		log.Printf("round %v: showing %v\n", round.ID, round.Note)
		if nil != p.Player {
			p.Player.Play(round.Note)
		}
	}
	return p
}

// Resize rebuilds the layout, it reports whether the size changed
func (p *Program) Resize(width, height int) (bool, error) {
	if width == p.width && height == p.height && nil != p.canvas {
		return false, nil
	}
	l, err := render.NewLayout(width, height)
	if nil != err {
		return false, err
	}
	p.layout = l
	p.canvas = render.NewCanvas(width, height)
	p.width, p.height = width, height
	return true, nil
}

// Update applies one action and reports whether to keep running
func (p *Program) Update(a input.Action) bool {
	switch a.Kind {
	case input.Quit:
		return false
	case input.Guess:
		if _, ok := p.Controller.Guess(a.Letter); !ok {
			log.Printf("ignored %v, round already answered\n", a.Letter)
		}
	}
	return true
}

func (p *Program) View() render.View {
	return render.View{Round: p.Controller.Round(), Score: p.Controller.Score()}
}

func (p *Program) Render() error {
	render.DrawScreen(p.canvas, p.layout, p.Theme, p.View())
	return p.Renderer.Render(p.canvas)
}

// Score is the final result, for printing after the terminal is restored
func (p *Program) Score() score.State {
	return p.Controller.Score()
}
