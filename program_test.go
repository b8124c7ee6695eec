package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/flashcards/internal/game"
	"git.lost.host/meutraa/flashcards/internal/input"
	"git.lost.host/meutraa/flashcards/internal/render"
	"git.lost.host/meutraa/flashcards/internal/score"
)

type recordingRenderer struct {
	frames []*render.Canvas
}

func (r *recordingRenderer) Init() error   { return nil }
func (r *recordingRenderer) Deinit() error { return nil }
func (r *recordingRenderer) Render(c *render.Canvas) error {
	r.frames = append(r.frames, c)
	return nil
}

type recordingPlayer struct {
	notes []game.Note
}

func (p *recordingPlayer) Play(n game.Note) {
	p.notes = append(p.notes, n)
}

func newTestProgram(t *testing.T) (*Program, *recordingRenderer) {
	r := &recordingRenderer{}
	c := game.NewController(&score.DefaultScorer{}, game.NewPicker(99), time.Hour)
	p := NewProgram(c, r, input.NewBindings(nil))
	if _, err := p.Resize(80, 24); nil != err {
		t.Fatal(err)
	}
	return p, r
}

func TestProgramRound(t *testing.T) {
	p, r := newTestProgram(t)
	player := &recordingPlayer{}
	p.Player = player
	p.Controller.Start()

	note := p.Controller.Round().Note
	if !p.Update(input.Action{Kind: input.Guess, Letter: note.Name}) {
		t.Fatal("guess stopped the program")
	}
	if err := p.Render(); nil != err {
		t.Fatal(err)
	}
	frame := r.frames[len(r.frames)-1]
	if _, _, ok := frame.Find(game.CorrectText); !ok {
		t.Fatal("feedback not rendered")
	}
	if _, _, ok := frame.Find("Correct: 1  Total: 1  Streak: 1"); !ok {
		t.Fatal("score not rendered")
	}

	p.Controller.Advance()
	if err := p.Render(); nil != err {
		t.Fatal(err)
	}
	frame = r.frames[len(r.frames)-1]
	if _, _, ok := frame.Find(game.CorrectText); ok {
		t.Fatal("feedback survived the advance")
	}
	next := p.Controller.Round()
	sym := []rune(p.Theme.NoteheadSym())[0]
	_, height := frame.Size()
	noteheads := 0
	for row := 0; row < height; row++ {
		count := strings.Count(frame.Line(row), string(sym))
		if count > 0 && row != p.layout.NoteRow(next.Note.Position) {
			t.Fatal("notehead on row", row, "expected", p.layout.NoteRow(next.Note.Position))
		}
		noteheads += count
	}
	if noteheads != 1 {
		t.Fatal("expected one notehead after the advance, got", noteheads)
	}
	if len(player.notes) != 2 || player.notes[0] != note {
		t.Fatal("player heard", player.notes)
	}
}

func TestProgramQuit(t *testing.T) {
	p, _ := newTestProgram(t)
	p.Controller.Start()
	if p.Update(input.Action{Kind: input.Quit}) {
		t.Fatal("quit did not stop the program")
	}
	if !p.Update(input.Action{Kind: input.None}) {
		t.Fatal("unbound key stopped the program")
	}
}

func TestProgramResize(t *testing.T) {
	p, r := newTestProgram(t)
	p.Controller.Start()

	if changed, err := p.Resize(80, 24); nil != err || changed {
		t.Fatal("same size reported a change", changed, err)
	}
	if changed, err := p.Resize(render.MinWidth, 24); nil != err || !changed {
		t.Fatal("resize failed", changed, err)
	}
	if err := p.Render(); nil != err {
		t.Fatal(err)
	}
	frame := r.frames[len(r.frames)-1]
	if w, _ := frame.Size(); w != render.MinWidth || frame.Clipped() != 0 {
		t.Fatal("frame does not fit", w, frame.Clipped())
	}
	if _, err := p.Resize(render.MinWidth-1, 24); nil == err {
		t.Fatal("expected an error for a narrow terminal")
	}
	if !strings.Contains(frame.Line(1), render.Heading) {
		t.Fatal("heading missing at narrow width")
	}
}

func TestFinishClosesKeyboardFirst(t *testing.T) {
	p, _ := newTestProgram(t)
	p.Controller.Start()
	p.Update(input.Action{Kind: input.Guess, Letter: p.Controller.Round().Note.Name})

	var out bytes.Buffer
	written := false
	finish(func() error {
		written = out.Len() > 0
		return nil
	}, &out, p)

	if written {
		t.Fatal("summary printed before the keyboard was closed")
	}
	if out.String() != "1/1 correct, best streak 1\n" {
		t.Fatalf("summary %q", out.String())
	}
}
