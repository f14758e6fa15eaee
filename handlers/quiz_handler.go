package handlers

import (
	"net/http"

	"quizbuilder/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "Invalid input data")
		return
	}

	quiz, err := h.quizService.CreateQuiz(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) GetQuizzes(c *gin.Context) {
	summaries, err := h.quizService.GetQuizzes()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *QuizHandler) GetQuizByID(c *gin.Context) {
	quiz, err := h.quizService.GetQuizByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	message, err := h.quizService.DeleteQuiz(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
