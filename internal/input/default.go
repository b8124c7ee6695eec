package input

import (
	"unicode"

	"git.lost.host/meutraa/flashcards/internal/game"
	"github.com/eiannone/keyboard"
)

type Kind uint8

const (
	None Kind = iota
	Guess
	Quit
)

type Action struct {
	Kind   Kind
	Letter game.Letter
}

// Bindings maps extra keys to letters, on top of the letters themselves.
// Extra keys never replace a letter key or the quit keys.
type Bindings map[rune]game.Letter

func NewBindings(extra map[game.Letter]string) Bindings {
	b := Bindings{}
	for _, l := range game.Letters {
		r := rune(l[0])
		b[r] = l
		b[unicode.ToLower(r)] = l
	}
	for l, keys := range extra {
		if !l.Valid() {
			continue
		}
		for _, r := range keys {
			if _, ok := b[r]; ok || r == 'q' || r == 'Q' {
				continue
			}
			b[r] = l
		}
	}
	return b
}

func (b Bindings) Action(ev keyboard.KeyEvent) Action {
	if nil != ev.Err {
		return Action{Kind: None}
	}
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Action{Kind: Quit}
	}
	if l, ok := b[ev.Rune]; ok {
		return Action{Kind: Guess, Letter: l}
	}
	if ev.Rune == 'q' || ev.Rune == 'Q' {
		return Action{Kind: Quit}
	}
	return Action{Kind: None}
}
