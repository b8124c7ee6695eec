package render

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/flashcards/internal/game"
	"git.lost.host/meutraa/flashcards/internal/score"
	"git.lost.host/meutraa/flashcards/internal/theme"
)

const Heading = "Music Note Flashcards"

// View is everything a frame shows
type View struct {
	Round game.Round
	Score score.State
}

// DrawScreen redraws the whole frame, so a notehead from the previous
// round never survives an advance.
func DrawScreen(c *Canvas, l Layout, th theme.Theme, v View) {
	c.Clear()
	c.Put(l.HeadingRow, l.centered(Heading), Heading, th.Text())
	drawStaff(c, l, th, v.Round)
	drawButtons(c, l, th, v.Round)

	feedback := v.Round.Feedback()
	if feedback.Text != "" {
		c.Put(l.FeedbackRow, l.centered(feedback.Text), feedback.Text, th.Feedback(feedback.Tone))
	}

	line := fmt.Sprintf("Correct: %d  Total: %d  Streak: %d", v.Score.Correct, v.Score.Total, v.Score.Streak)
	if l.Compact || len(line) > l.ContentWidth {
		line = fmt.Sprintf("%d/%d  streak %d", v.Score.Correct, v.Score.Total, v.Score.Streak)
	}
	c.Put(l.ScoreRow, l.centered(line), line, th.Text())

	if l.StatsCol >= 0 {
		c.Put(l.StaffTop, l.StatsCol, fmt.Sprintf("   Round: %6d", v.Round.ID), th.Staff())
		c.Put(l.StaffTop+1, l.StatsCol, fmt.Sprintf("Accuracy: %5.1f%%", v.Score.Accuracy()), th.Staff())
		c.Put(l.StaffTop+2, l.StatsCol, fmt.Sprintf("    Best: %6d", v.Score.BestStreak), th.Staff())
	}
}

func drawStaff(c *Canvas, l Layout, th theme.Theme, r game.Round) {
	left := l.Left + (l.ContentWidth-l.StaffWidth)/2
	line := strings.Repeat("─", l.StaffWidth)
	for _, p := range staffLines {
		c.Put(l.NoteRow(p), left, line, th.Staff())
	}
	c.Put(l.NoteRow(clefPosition), left+1, th.ClefSym(), th.Text())

	col := left + l.StaffWidth/2 + noteheadShift
	row := l.NoteRow(r.Note.Position)
	if r.Note.Position == ledgerC4 {
		c.Put(row, col-1, "───", th.Staff())
	}
	c.Put(row, col, th.NoteheadSym(), th.Notehead(r.Phase))
}

func drawButtons(c *Canvas, l Layout, th theme.Theme, r game.Round) {
	for i, b := range r.Buttons() {
		c.Put(l.ButtonsRow, l.buttonCol(i), "["+string(b.Letter)+"]", th.Button(b.State))
	}
}
