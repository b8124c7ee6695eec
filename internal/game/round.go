package game

type Phase uint8

const (
	AwaitingGuess Phase = iota
	Answered
)

func (p Phase) String() string {
	switch p {
	case AwaitingGuess:
		return "awaiting guess"
	case Answered:
		return "answered"
	}
	return "unknown"
}

type ButtonState uint8

const (
	ButtonIdle ButtonState = iota
	ButtonCorrect
	ButtonIncorrect
	ButtonRevealed // The true answer after a wrong guess
)

type Button struct {
	Letter Letter
	State  ButtonState
}

// Round is one question, it accepts exactly one scored guess
type Round struct {
	ID    uint64
	Note  Note
	Phase Phase

	// Set once answered
	Guess   Letter
	Correct bool
}

func (r Round) Buttons() []Button {
	buttons := make([]Button, len(Letters))
	for i, l := range Letters {
		buttons[i] = Button{Letter: l}
		if r.Phase != Answered {
			continue
		}
		switch {
		case l == r.Guess && r.Correct:
			buttons[i].State = ButtonCorrect
		case l == r.Guess:
			buttons[i].State = ButtonIncorrect
		case l == r.Note.Name:
			buttons[i].State = ButtonRevealed
		}
	}
	return buttons
}

type Tone uint8

const (
	ToneNone Tone = iota
	TonePositive
	ToneNegative
)

type Feedback struct {
	Text string
	Tone Tone
}

const CorrectText = "Correct!"

func (r Round) Feedback() Feedback {
	if r.Phase != Answered {
		return Feedback{}
	}
	if r.Correct {
		return Feedback{Text: CorrectText, Tone: TonePositive}
	}
	return Feedback{Text: "Not quite, it was " + string(r.Note.Name), Tone: ToneNegative}
}
