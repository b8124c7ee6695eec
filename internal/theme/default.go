package theme

import (
	"image/color"

	"git.lost.host/meutraa/flashcards/internal/game"
)

type DefaultTheme struct {
}

const (
	noteheadSym = "⬤"
	clefSym     = "𝄞"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	grey  = color.RGBA{106, 106, 106, 255}
	green = color.RGBA{0, 236, 128, 255}
	red   = color.RGBA{236, 30, 0, 255}
	gold  = color.RGBA{236, 195, 0, 255}
	blue  = color.RGBA{173, 236, 236, 255}

	buttonColors = map[game.ButtonState]color.RGBA{
		game.ButtonIdle:      white,
		game.ButtonCorrect:   green,
		game.ButtonIncorrect: red,
		game.ButtonRevealed:  gold,
	}
	feedbackColors = map[game.Tone]color.RGBA{
		game.ToneNone:     white,
		game.TonePositive: green,
		game.ToneNegative: red,
	}
)

func (t *DefaultTheme) Staff() color.RGBA {
	return grey
}

func (t *DefaultTheme) Notehead(phase game.Phase) color.RGBA {
	if phase == game.Answered {
		return blue
	}
	return white
}

func (t *DefaultTheme) Button(state game.ButtonState) color.RGBA {
	col, ok := buttonColors[state]
	if !ok {
		return white
	}
	return col
}

func (t *DefaultTheme) Feedback(tone game.Tone) color.RGBA {
	col, ok := feedbackColors[tone]
	if !ok {
		return white
	}
	return col
}

func (t *DefaultTheme) Text() color.RGBA {
	return white
}

func (t *DefaultTheme) NoteheadSym() string {
	return noteheadSym
}

func (t *DefaultTheme) ClefSym() string {
	return clefSym
}
