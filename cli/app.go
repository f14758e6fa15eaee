// Package cli implements the terminal quiz-taking flow on top of the API
// client and the scoring session.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizbuilder/client"
	"quizbuilder/models"
	"quizbuilder/scoring"
	"quizbuilder/services"
)

// API is the slice of the quiz API the runner needs.
type API interface {
	ListQuizzes(ctx context.Context) ([]services.QuizSummary, error)
	GetQuiz(ctx context.Context, id uint) (*models.Quiz, error)
}

func Run(ctx context.Context, api API, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	summaries, err := api.ListQuizzes(ctx)
	if err != nil {
		return errors.New(describeError(err))
	}
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No quizzes available.")
		return nil
	}

	fmt.Fprintln(out, "Available quizzes:")
	for i, summary := range summaries {
		fmt.Fprintf(out, "%d. %s (%d questions)\n", i+1, summary.Title, summary.QuestionCount)
	}

	choice, ok := pickQuiz(reader, out, len(summaries))
	if !ok {
		return nil
	}

	quiz, err := api.GetQuiz(ctx, summaries[choice-1].ID)
	if err != nil {
		return errors.New(describeError(err))
	}

	session := scoring.NewSession(quiz)
	for {
		takeQuiz(session, quiz, reader, out)
		fmt.Fprintf(out, "\nQuiz complete! Your score: %d%%\n", session.Score())

		fmt.Fprint(out, "Try again? (y/n): ")
		line, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(line)) != "y" {
			return nil
		}
		session.Reset()
	}
}

func pickQuiz(reader *bufio.Reader, out io.Writer, count int) (int, bool) {
	for {
		fmt.Fprintf(out, "\nPick a quiz (1-%d): ", count)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= count {
			return choice, true
		}
		fmt.Fprintln(out, "Invalid choice.")
	}
}

func takeQuiz(session *scoring.Session, quiz *models.Quiz, reader *bufio.Reader, out io.Writer) {
	for !session.Completed() {
		question, ok := session.Current()
		if !ok {
			return
		}

		printQuestion(out, session, quiz, question)

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input := strings.ToUpper(strings.TrimSpace(line))

		switch input {
		case "":
			if err := session.Next(); err != nil {
				fmt.Fprintln(out, "Select at least one answer first.")
			}
		case "P":
			session.Previous()
		default:
			if len(input) == 1 && input[0] >= 'A' && int(input[0]-'A') < len(question.Answers) {
				session.Toggle(question.Answers[input[0]-'A'].ID)
			} else {
				fmt.Fprintf(out, "Invalid input. Enter a letter A-%c, 'p', or a blank line.\n", 'A'+len(question.Answers)-1)
			}
		}
	}
}

func printQuestion(out io.Writer, session *scoring.Session, quiz *models.Quiz, question models.Question) {
	selected := make(map[uint]bool)
	for _, id := range session.Selected(question.ID) {
		selected[id] = true
	}

	fmt.Fprintf(out, "\nQuestion %d of %d: %s\n\n", session.Index()+1, len(quiz.Questions), question.Question)
	for i, answer := range question.Answers {
		mark := " "
		if selected[answer.ID] {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %c. %s\n", mark, 'A'+i, answer.Answer)
	}
	fmt.Fprint(out, "\nToggle an answer with its letter, 'p' for previous, blank line to continue: ")
}

// describeError mirrors the frontend's contextual error rendering.
func describeError(err error) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Type {
	case client.ErrorTypeNetwork:
		return "Connection error with server"
	case client.ErrorTypeServer:
		return "Internal server error"
	case client.ErrorTypeNotFound:
		return "Resource not found"
	case client.ErrorTypeUnauthorized:
		return "Authentication required"
	case client.ErrorTypeForbidden:
		return "Access denied"
	case client.ErrorTypeValidation:
		return apiErr.Message
	}
	return apiErr.Message
}
