package render

import (
	"fmt"

	"git.lost.host/meutraa/flashcards/internal/game"
)

const (
	MinWidth  = 24
	MinHeight = 22

	maxStaffWidth = 40
	statsWidth    = 18

	// Rows between the highest and lowest notehead, inclusive
	staffRows = (game.BottomPosition-game.TopPosition)/game.PositionStep + 1
)

const (
	wideButtonWidth    = 4 // "[C] "
	compactButtonWidth = 3 // "[C]"
)

// Layout places every element of the screen for a terminal size. All
// columns are zero based and the main content ends before the last column.
type Layout struct {
	Width, Height int
	Compact       bool

	Left         int // First column of the main content
	ContentWidth int

	HeadingRow  int
	StaffTop    int // Row of the highest notehead position
	StaffWidth  int
	ButtonsRow  int
	FeedbackRow int
	ScoreRow    int

	StatsCol int // -1 when there is no room for the stats column
}

func NewLayout(width, height int) (Layout, error) {
	if width < MinWidth || height < MinHeight {
		return Layout{}, fmt.Errorf("terminal is %vx%v, need at least %vx%v", width, height, MinWidth, MinHeight)
	}

	l := Layout{Width: width, Height: height, StatsCol: -1}
	buttonsWidth := len(game.Letters)*wideButtonWidth - 1
	if width-2 < buttonsWidth {
		l.Compact = true
		buttonsWidth = len(game.Letters) * compactButtonWidth
	}

	l.StaffWidth = width - 2
	if l.StaffWidth > maxStaffWidth {
		l.StaffWidth = maxStaffWidth
	}
	l.ContentWidth = l.StaffWidth
	if buttonsWidth > l.ContentWidth {
		l.ContentWidth = buttonsWidth
	}
	l.Left = (width - l.ContentWidth) / 2

	if side := l.Left + l.ContentWidth + 2; side+statsWidth <= width {
		l.StatsCol = side
	}

	l.HeadingRow = 1
	l.StaffTop = 3
	l.ButtonsRow = l.StaffTop + staffRows + 1
	l.FeedbackRow = l.ButtonsRow + 2
	l.ScoreRow = l.FeedbackRow + 2
	return l, nil
}

// NoteRow is the screen row of a notehead at a note position
func (l Layout) NoteRow(position int) int {
	return l.StaffTop + (position-game.TopPosition)/game.PositionStep
}

// Positions of the five staff lines, E4 G4 B4 D5 F5
var staffLines = [...]int{140, 120, 100, 80, 60}

const (
	clefPosition  = 120 // The treble clef curls around G4
	ledgerC4      = 160
	noteheadShift = 2 // Columns right of the staff middle, clear of the clef
)

func (l Layout) buttonCol(i int) int {
	width := wideButtonWidth
	total := len(game.Letters)*wideButtonWidth - 1
	if l.Compact {
		width = compactButtonWidth
		total = len(game.Letters) * compactButtonWidth
	}
	return l.Left + (l.ContentWidth-total)/2 + i*width
}

func (l Layout) centered(s string) int {
	n := len([]rune(s))
	if n >= l.ContentWidth {
		return l.Left
	}
	return l.Left + (l.ContentWidth-n)/2
}
