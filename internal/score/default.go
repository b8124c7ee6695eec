package score

type DefaultScorer struct {
	state State
}

func (s *DefaultScorer) Record(correct bool) State {
	s.state.Total++
	if !correct {
		s.state.Streak = 0
		return s.state
	}
	s.state.Correct++
	s.state.Streak++
	if s.state.Streak > s.state.BestStreak {
		s.state.BestStreak = s.state.Streak
	}
	return s.state
}

func (s *DefaultScorer) State() State {
	return s.state
}

func (s *DefaultScorer) Reset() {
	s.state = State{}
}
