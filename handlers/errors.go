package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"quizbuilder/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every error leaves the API in.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// writeError maps a service error onto its HTTP status and renders the
// envelope. Underlying causes stay in the logs; clients only see the
// summary message.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var notFound *services.NotFoundError
	var invalid *services.InvalidDataError
	var op *services.OperationError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		message = notFound.Error()
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
		message = invalid.Message
	case errors.As(err, &op):
		message = op.Message
	}

	log.Printf("%s %s - %d - %s", c.Request.Method, c.Request.URL.Path, status, message)

	c.JSON(status, ErrorResponse{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

func writeBadRequest(c *gin.Context, message string) {
	writeError(c, &services.InvalidDataError{Message: message})
}
