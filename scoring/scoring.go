// Package scoring evaluates a taken quiz against its correctness sets. It is
// pure: it only compares already-loaded quiz data with the user's selections.
package scoring

import (
	"math"

	"quizbuilder/models"
)

// Selections maps a question id to the set of answer ids the user selected.
type Selections map[uint][]uint

// QuestionCorrect reports whether the selection matches the question's
// correctness set exactly: same size, same membership, order irrelevant.
// There is no partial credit.
func QuestionCorrect(question models.Question, selected []uint) bool {
	correct := make(map[uint]bool)
	for _, answer := range question.Answers {
		if answer.IsCorrect {
			correct[answer.ID] = true
		}
	}

	chosen := make(map[uint]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}

	if len(chosen) != len(correct) {
		return false
	}
	for id := range chosen {
		if !correct[id] {
			return false
		}
	}
	return true
}

// Score returns the percentage of correctly answered questions, rounded to
// the nearest integer. A quiz with no questions scores 0.
func Score(questions []models.Question, selections Selections) int {
	if len(questions) == 0 {
		return 0
	}

	correctCount := 0
	for _, question := range questions {
		if QuestionCorrect(question, selections[question.ID]) {
			correctCount++
		}
	}

	return int(math.Round(float64(correctCount) / float64(len(questions)) * 100))
}
