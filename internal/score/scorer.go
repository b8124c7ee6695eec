package score

type Scorer interface {
	// Apply the result of one guess and return the new totals
	Record(correct bool) State

	State() State
	Reset()
}

type State struct {
	Correct    uint
	Total      uint
	Streak     uint
	BestStreak uint
}

// Accuracy as a percentage, 0 before the first guess
func (s State) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Correct) / float64(s.Total)
}
