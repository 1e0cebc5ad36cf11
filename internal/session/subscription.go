package session

// CanGenerateQuiz reports whether the learner may generate another quiz
// under the current plan. The caller gates generation on this; the
// session itself never blocks a GenerateQuizRecord call.
func (s *Session) CanGenerateQuiz() bool {
	if s.Premium {
		return true
	}
	return s.QuizGenerations < s.FreeQuizLimit
}

// RemainingFreeQuizzes returns how many free-tier generations are left,
// or -1 for unlimited on the premium plan.
func (s *Session) RemainingFreeQuizzes() int {
	if s.Premium {
		return -1
	}
	remaining := s.FreeQuizLimit - s.QuizGenerations
	if remaining < 0 {
		return 0
	}
	return remaining
}

// UpgradeToPremium flips the session to the unlimited plan. Called by
// the payment collaborator after a successful charge.
func (s *Session) UpgradeToPremium() {
	s.Premium = true
	s.touch()
}

// Plan names the current subscription plan for display.
func (s *Session) Plan() string {
	if s.Premium {
		return "Premium"
	}
	return "Free"
}
