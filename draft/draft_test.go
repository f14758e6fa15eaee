package draft

import (
	"testing"

	"quizbuilder/models"
)

func TestAddAndRemoveQuestion(t *testing.T) {
	d := New().AddQuestion().AddQuestion()
	if len(d.Questions) != 2 {
		t.Fatalf("question count = %d, want 2", len(d.Questions))
	}
	if d.Questions[0].Type != models.QuestionTypeInput {
		t.Errorf("new question type = %q, want input", d.Questions[0].Type)
	}

	d = d.SetQuestionText(0, "keep").SetQuestionText(1, "drop").RemoveQuestion(1)
	if len(d.Questions) != 1 || d.Questions[0].Question != "keep" {
		t.Errorf("after remove: %+v", d.Questions)
	}

	// Out-of-range indices are ignored.
	if got := d.RemoveQuestion(5); len(got.Questions) != 1 {
		t.Errorf("out-of-range remove changed the draft")
	}
}

func TestSetQuestionTypeBooleanInstallsPair(t *testing.T) {
	d := New().AddQuestion().SetQuestionType(0, models.QuestionTypeBoolean)

	answers := d.Questions[0].Answers
	if len(answers) != 2 {
		t.Fatalf("boolean answers = %d, want 2", len(answers))
	}
	if answers[0].Answer != TrueLabel || answers[1].Answer != FalseLabel {
		t.Errorf("pair = %+v", answers)
	}
	if answers[0].IsCorrect || answers[1].IsCorrect {
		t.Errorf("fresh pair should have no correct answer marked")
	}

	// Switching away clears answers for re-authoring.
	d = d.SetQuestionType(0, models.QuestionTypeCheckbox)
	if len(d.Questions[0].Answers) != 0 {
		t.Errorf("answers survived type switch: %+v", d.Questions[0].Answers)
	}
}

func TestSelectTrueFalseMarksExactlyOne(t *testing.T) {
	d := New().AddQuestion().SetQuestionType(0, models.QuestionTypeBoolean)

	d = d.SelectTrueFalse(0, FalseLabel)
	answers := d.Questions[0].Answers
	if answers[0].IsCorrect || !answers[1].IsCorrect {
		t.Errorf("after selecting False: %+v", answers)
	}

	d = d.SelectTrueFalse(0, TrueLabel)
	answers = d.Questions[0].Answers
	if !answers[0].IsCorrect || answers[1].IsCorrect {
		t.Errorf("after selecting True: %+v", answers)
	}

	// Only applies to boolean questions.
	d = d.SetQuestionType(0, models.QuestionTypeInput)
	if got := d.SelectTrueFalse(0, TrueLabel); len(got.Questions[0].Answers) != 0 {
		t.Errorf("SelectTrueFalse touched a non-boolean question")
	}
}

func TestAnswerEditing(t *testing.T) {
	d := New().AddQuestion().AddAnswer(0).AddAnswer(0).
		SetAnswerText(0, 0, "first").
		SetAnswerText(0, 1, "second").
		SetAnswerCorrect(0, 1, true).
		RemoveAnswer(0, 0)

	answers := d.Questions[0].Answers
	if len(answers) != 1 || answers[0].Answer != "second" || !answers[0].IsCorrect {
		t.Errorf("answers = %+v", answers)
	}
}

func TestOperationsArePure(t *testing.T) {
	base := New().AddQuestion().AddAnswer(0).SetAnswerText(0, 0, "original")

	_ = base.SetAnswerText(0, 0, "changed")
	_ = base.SetQuestionType(0, models.QuestionTypeBoolean)
	_ = base.RemoveQuestion(0)

	if len(base.Questions) != 1 {
		t.Fatalf("base draft mutated: %+v", base)
	}
	if base.Questions[0].Answers[0].Answer != "original" {
		t.Errorf("base answer mutated: %+v", base.Questions[0].Answers)
	}
	if base.Questions[0].Type != models.QuestionTypeInput {
		t.Errorf("base type mutated: %q", base.Questions[0].Type)
	}
}

func TestToRequest(t *testing.T) {
	d := New().SetTitle("Draft Quiz").
		AddQuestion().
		SetQuestionText(0, "Pick one").
		SetQuestionType(0, models.QuestionTypeBoolean).
		SelectTrueFalse(0, TrueLabel)

	req := d.ToRequest()
	if req.Title != "Draft Quiz" {
		t.Errorf("title = %q", req.Title)
	}
	if len(req.Questions) != 1 || req.Questions[0].Type != models.QuestionTypeBoolean {
		t.Fatalf("questions = %+v", req.Questions)
	}
	if len(req.Questions[0].Answers) != 2 || !req.Questions[0].Answers[0].IsCorrect {
		t.Errorf("answers = %+v", req.Questions[0].Answers)
	}
}
