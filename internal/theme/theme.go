package theme

import (
	"image/color"

	"git.lost.host/meutraa/flashcards/internal/game"
)

type Theme interface {
	Staff() color.RGBA
	Notehead(phase game.Phase) color.RGBA
	Button(state game.ButtonState) color.RGBA
	Feedback(tone game.Tone) color.RGBA
	Text() color.RGBA

	NoteheadSym() string
	ClefSym() string
}
