package models

import (
	"time"

	"gorm.io/gorm"
)

// QuestionType is a closed enumeration; Valid rejects anything outside the
// three authoring variants.
type QuestionType string

const (
	QuestionTypeBoolean  QuestionType = "boolean"
	QuestionTypeInput    QuestionType = "input"
	QuestionTypeCheckbox QuestionType = "checkbox"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeBoolean, QuestionTypeInput, QuestionTypeCheckbox:
		return true
	}
	return false
}

type Question struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	QuizID    uint           `json:"quiz_id" gorm:"not null;index"`
	Question  string         `json:"question" gorm:"not null"`
	Type      QuestionType   `json:"type" gorm:"not null"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Answers []Answer `json:"answers" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}
