package input

import (
	"errors"
	"testing"

	"git.lost.host/meutraa/flashcards/internal/game"
	"github.com/eiannone/keyboard"
)

var actionTests = map[keyboard.KeyEvent]Action{
	{Rune: 'c'}:              {Kind: Guess, Letter: game.C},
	{Rune: 'C'}:              {Kind: Guess, Letter: game.C},
	{Rune: 'g'}:              {Kind: Guess, Letter: game.G},
	{Rune: 'B'}:              {Kind: Guess, Letter: game.B},
	{Rune: '1'}:              {Kind: Guess, Letter: game.C},
	{Rune: '7'}:              {Kind: Guess, Letter: game.B},
	{Rune: 'h'}:              {Kind: None},
	{Rune: 'q'}:              {Kind: Quit},
	{Key: keyboard.KeyEsc}:   {Kind: Quit},
	{Key: keyboard.KeyCtrlC}: {Kind: Quit},
	{Key: keyboard.KeySpace}: {Kind: None},
}

func TestAction(t *testing.T) {
	extra := map[game.Letter]string{}
	for i, l := range game.Letters {
		extra[l] = string(rune('1' + i))
	}
	extra["H"] = "h"
	b := NewBindings(extra)

	for ev, expected := range actionTests {
		if out := b.Action(ev); out != expected {
			t.Log("Event   ", ev)
			t.Log("Action  ", out)
			t.Log("Expected", expected)
			t.Fail()
		}
	}
}

func TestActionError(t *testing.T) {
	b := NewBindings(nil)
	if out := b.Action(keyboard.KeyEvent{Rune: 'c', Err: errors.New("closed")}); out.Kind != None {
		t.Fatal("error event produced", out)
	}
}

func TestExtraKeysKeepLetterAndQuit(t *testing.T) {
	b := NewBindings(map[game.Letter]string{game.C: "dq1"})
	tests := map[rune]Action{
		'd': {Kind: Guess, Letter: game.D},
		'q': {Kind: Quit},
		'1': {Kind: Guess, Letter: game.C},
	}
	for r, expected := range tests {
		if out := b.Action(keyboard.KeyEvent{Rune: r}); out != expected {
			t.Log("Rune    ", string(r))
			t.Log("Action  ", out)
			t.Log("Expected", expected)
			t.Fail()
		}
	}
}
