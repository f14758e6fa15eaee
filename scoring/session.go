package scoring

import (
	"errors"

	"quizbuilder/models"
)

// ErrNoSelection is returned by Next when the current question has no
// selected answer yet.
var ErrNoSelection = errors.New("current question has no selected answer")

// Session walks a loaded quiz question by question. It is in progress until
// the user advances past the last question, at which point the score is
// computed and the session is completed; only Reset leaves that state.
type Session struct {
	quiz       *models.Quiz
	index      int
	selections Selections
	completed  bool
	score      int
}

func NewSession(quiz *models.Quiz) *Session {
	s := &Session{
		quiz:       quiz,
		selections: make(Selections),
	}
	// Nothing to answer; completed immediately with a zero score.
	if len(quiz.Questions) == 0 {
		s.completed = true
	}
	return s
}

// Current returns the question the session is positioned on. ok is false
// once the session has completed.
func (s *Session) Current() (models.Question, bool) {
	if s.completed {
		return models.Question{}, false
	}
	return s.quiz.Questions[s.index], true
}

func (s *Session) Index() int {
	return s.index
}

// Selected returns the answer ids chosen for a question so far.
func (s *Session) Selected(questionID uint) []uint {
	return s.selections[questionID]
}

// Toggle adds the answer to the current question's selection set, or removes
// it if already selected. Ignored once the session has completed.
func (s *Session) Toggle(answerID uint) {
	current, ok := s.Current()
	if !ok {
		return
	}

	selected := s.selections[current.ID]
	for i, id := range selected {
		if id == answerID {
			s.selections[current.ID] = append(selected[:i], selected[i+1:]...)
			return
		}
	}
	s.selections[current.ID] = append(selected, answerID)
}

// CanAdvance reports whether the current question has at least one selection.
func (s *Session) CanAdvance() bool {
	current, ok := s.Current()
	if !ok {
		return false
	}
	return len(s.selections[current.ID]) > 0
}

// Next moves to the following question. Advancing past the last question
// computes the score and completes the session.
func (s *Session) Next() error {
	if s.completed {
		return nil
	}
	if !s.CanAdvance() {
		return ErrNoSelection
	}

	if s.index < len(s.quiz.Questions)-1 {
		s.index++
		return nil
	}

	s.score = Score(s.quiz.Questions, s.selections)
	s.completed = true
	return nil
}

// Previous steps back one question, never below the first.
func (s *Session) Previous() {
	if s.completed || s.index == 0 {
		return
	}
	s.index--
}

func (s *Session) Completed() bool {
	return s.completed
}

// Score is meaningful once Completed reports true.
func (s *Session) Score() int {
	return s.score
}

// Reset returns the session to the first question with all selections
// cleared.
func (s *Session) Reset() {
	s.index = 0
	s.selections = make(Selections)
	s.score = 0
	s.completed = len(s.quiz.Questions) == 0
}
