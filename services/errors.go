package services

import (
	"errors"
	"fmt"
)

// Validation messages surfaced verbatim to clients.
const (
	MsgTitleRequired     = "Quiz title is required"
	MsgQuestionsRequired = "Quiz must have at least one question"
	MsgQuestionRequired  = "Question text is required"
	MsgAnswersRequired   = "Question must have at least one answer"
	MsgAnswerRequired    = "Answer text is required"
	MsgInvalidIDFormat   = "Invalid quiz ID format"
	MsgInvalidType       = "Invalid question type"

	MsgCreationFailed = "Failed to create quiz"
	MsgFetchFailed    = "Failed to fetch quiz"
	MsgDeletionFailed = "Failed to delete quiz"
)

// NotFoundError reports a quiz id that matched no row.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Quiz not found with id %s", e.ID)
}

// InvalidDataError reports a structural or content validation failure.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string {
	return e.Message
}

// OperationError wraps an unexpected storage failure. Message is safe to show
// to clients; Err carries the underlying cause for logs only.
type OperationError struct {
	Op      string // "create", "fetch", "delete"
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidData(err error) bool {
	var inv *InvalidDataError
	return errors.As(err, &inv)
}
