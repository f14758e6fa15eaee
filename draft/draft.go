// Package draft models the quiz-authoring form as a serializable value:
// an ordered list of question drafts, each holding an ordered list of answer
// drafts. Every operation is pure and returns an updated copy, so a UI can
// bind to it without the draft knowing anything about rendering.
package draft

import (
	"quizbuilder/models"
	"quizbuilder/services"
)

const (
	TrueLabel  = "True"
	FalseLabel = "False"
)

type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type Question struct {
	Question string              `json:"question"`
	Type     models.QuestionType `json:"type"`
	Answers  []Answer            `json:"answers"`
}

type Answer struct {
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"isCorrect"`
}

func New() Quiz {
	return Quiz{}
}

func (d Quiz) SetTitle(title string) Quiz {
	d = d.clone()
	d.Title = title
	return d
}

// AddQuestion appends an empty input-type question with no answers.
func (d Quiz) AddQuestion() Quiz {
	d = d.clone()
	d.Questions = append(d.Questions, Question{Type: models.QuestionTypeInput})
	return d
}

func (d Quiz) RemoveQuestion(i int) Quiz {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d = d.clone()
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
	return d
}

func (d Quiz) SetQuestionText(i int, text string) Quiz {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d = d.clone()
	d.Questions[i].Question = text
	return d
}

// SetQuestionType switches a question between its three variants. Switching
// to boolean installs the fixed True/False pair with neither marked correct;
// switching away clears the answers for re-authoring.
func (d Quiz) SetQuestionType(i int, t models.QuestionType) Quiz {
	if i < 0 || i >= len(d.Questions) || !t.Valid() {
		return d
	}
	d = d.clone()
	d.Questions[i].Type = t
	if t == models.QuestionTypeBoolean {
		d.Questions[i].Answers = []Answer{
			{Answer: TrueLabel, IsCorrect: false},
			{Answer: FalseLabel, IsCorrect: false},
		}
	} else {
		d.Questions[i].Answers = nil
	}
	return d
}

func (d Quiz) AddAnswer(i int) Quiz {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	d = d.clone()
	d.Questions[i].Answers = append(d.Questions[i].Answers, Answer{})
	return d
}

func (d Quiz) RemoveAnswer(i, j int) Quiz {
	if i < 0 || i >= len(d.Questions) {
		return d
	}
	answers := d.Questions[i].Answers
	if j < 0 || j >= len(answers) {
		return d
	}
	d = d.clone()
	d.Questions[i].Answers = append(d.Questions[i].Answers[:j], d.Questions[i].Answers[j+1:]...)
	return d
}

func (d Quiz) SetAnswerText(i, j int, text string) Quiz {
	if i < 0 || i >= len(d.Questions) || j < 0 || j >= len(d.Questions[i].Answers) {
		return d
	}
	d = d.clone()
	d.Questions[i].Answers[j].Answer = text
	return d
}

func (d Quiz) SetAnswerCorrect(i, j int, correct bool) Quiz {
	if i < 0 || i >= len(d.Questions) || j < 0 || j >= len(d.Questions[i].Answers) {
		return d
	}
	d = d.clone()
	d.Questions[i].Answers[j].IsCorrect = correct
	return d
}

// SelectTrueFalse marks exactly one side of a boolean question's pair
// correct, reinstalling the pair in case it was edited.
func (d Quiz) SelectTrueFalse(i int, selected string) Quiz {
	if i < 0 || i >= len(d.Questions) || d.Questions[i].Type != models.QuestionTypeBoolean {
		return d
	}
	if selected != TrueLabel && selected != FalseLabel {
		return d
	}
	d = d.clone()
	d.Questions[i].Answers = []Answer{
		{Answer: TrueLabel, IsCorrect: selected == TrueLabel},
		{Answer: FalseLabel, IsCorrect: selected == FalseLabel},
	}
	return d
}

// ToRequest converts the draft into the create DTO the API accepts.
func (d Quiz) ToRequest() services.CreateQuizRequest {
	req := services.CreateQuizRequest{Title: d.Title}
	for _, q := range d.Questions {
		question := services.CreateQuestionRequest{
			Question: q.Question,
			Type:     q.Type,
		}
		for _, a := range q.Answers {
			question.Answers = append(question.Answers, services.CreateAnswerRequest{
				Answer:    a.Answer,
				IsCorrect: a.IsCorrect,
			})
		}
		req.Questions = append(req.Questions, question)
	}
	return req
}

// clone deep-copies the question and answer slices so updates never alias
// the receiver's backing arrays.
func (d Quiz) clone() Quiz {
	questions := make([]Question, len(d.Questions))
	copy(questions, d.Questions)
	for i := range questions {
		answers := make([]Answer, len(questions[i].Answers))
		copy(answers, questions[i].Answers)
		questions[i].Answers = answers
	}
	d.Questions = questions
	return d
}
