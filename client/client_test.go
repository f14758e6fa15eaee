package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizbuilder/services"
)

func TestListQuizzes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/quizzes" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]services.QuizSummary{
			{ID: 1, Title: "First", QuestionCount: 3},
		})
	}))
	defer server.Close()

	summaries, err := New(server.URL).ListQuizzes(context.Background())
	if err != nil {
		t.Fatalf("ListQuizzes: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Title != "First" || summaries[0].QuestionCount != 3 {
		t.Errorf("summaries = %+v", summaries)
	}
}

func TestGetQuizDecodesAggregate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quizzes/7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":7,"title":"T","questions":[{"id":1,"question":"Q","type":"input","answers":[{"id":2,"answer":"A","isCorrect":true}]}]}`))
	}))
	defer server.Close()

	quiz, err := New(server.URL).GetQuiz(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	if quiz.ID != 7 || len(quiz.Questions) != 1 || !quiz.Questions[0].Answers[0].IsCorrect {
		t.Errorf("quiz = %+v", quiz)
	}
}

func TestServerErrorsAreClassified(t *testing.T) {
	cases := []struct {
		status  int
		message string
		want    ErrorType
	}{
		{http.StatusBadRequest, "Quiz title is required", ErrorTypeValidation},
		{http.StatusUnauthorized, "Authentication required", ErrorTypeUnauthorized},
		{http.StatusForbidden, "Access denied", ErrorTypeForbidden},
		{http.StatusNotFound, "Quiz not found with id 7", ErrorTypeNotFound},
		{http.StatusInternalServerError, "Failed to fetch quiz", ErrorTypeServer},
		{http.StatusTeapot, "odd", ErrorTypeUnknown},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"statusCode": tc.status,
				"message":    tc.message,
				"error":      http.StatusText(tc.status),
			})
		}))

		_, err := New(server.URL).GetQuiz(context.Background(), 7)
		server.Close()

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: error = %v, want APIError", tc.status, err)
		}
		if apiErr.Type != tc.want {
			t.Errorf("status %d: type = %s, want %s", tc.status, apiErr.Type, tc.want)
		}
		if apiErr.Message != tc.message {
			t.Errorf("status %d: message = %q, want %q", tc.status, apiErr.Message, tc.message)
		}
		if apiErr.StatusCode != tc.status {
			t.Errorf("status %d: statusCode = %d", tc.status, apiErr.StatusCode)
		}
	}
}

func TestNoResponseClassifiedAsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	_, err := New(server.URL).ListQuizzes(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.Type != ErrorTypeNetwork {
		t.Errorf("type = %s, want %s", apiErr.Type, ErrorTypeNetwork)
	}
	if apiErr.StatusCode != 0 {
		t.Errorf("network error carries status %d, want 0", apiErr.StatusCode)
	}
	if errors.Unwrap(apiErr) == nil {
		t.Errorf("network error lost its underlying transport cause")
	}
}

func TestDeleteQuizReturnsMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.Write([]byte(`{"message":"Quiz deleted successfully"}`))
	}))
	defer server.Close()

	message, err := New(server.URL).DeleteQuiz(context.Background(), 3)
	if err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}
	if message != "Quiz deleted successfully" {
		t.Errorf("message = %q", message)
	}
}
