package services

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"quizbuilder/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type QuizService struct {
	db    *gorm.DB
	redis redisCache // optional aggregate cache, nil disables caching
}

func NewQuizService(db *gorm.DB, redisClient *redis.Client) *QuizService {
	svc := &QuizService{db: db}
	// A nil *redis.Client must stay a nil interface so the cache layer
	// can tell caching is disabled.
	if redisClient != nil {
		svc.redis = redisClient
	}
	return svc
}

type CreateQuizRequest struct {
	Title     string                  `json:"title"`
	Questions []CreateQuestionRequest `json:"questions"`
}

type CreateQuestionRequest struct {
	Question string                `json:"question"`
	Type     models.QuestionType   `json:"type"`
	Answers  []CreateAnswerRequest `json:"answers"`
}

type CreateAnswerRequest struct {
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuizSummary struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"questionCount"`
}

// validateCreateQuiz checks the whole nested structure before anything is
// written, failing at the first violation in top-down order.
func validateCreateQuiz(req *CreateQuizRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return &InvalidDataError{Message: MsgTitleRequired}
	}
	if len(req.Questions) == 0 {
		return &InvalidDataError{Message: MsgQuestionsRequired}
	}
	for _, qReq := range req.Questions {
		if strings.TrimSpace(qReq.Question) == "" {
			return &InvalidDataError{Message: MsgQuestionRequired}
		}
		if !qReq.Type.Valid() {
			return &InvalidDataError{Message: MsgInvalidType}
		}
		if len(qReq.Answers) == 0 {
			return &InvalidDataError{Message: MsgAnswersRequired}
		}
		for _, aReq := range qReq.Answers {
			if strings.TrimSpace(aReq.Answer) == "" {
				return &InvalidDataError{Message: MsgAnswerRequired}
			}
		}
	}
	return nil
}

// CreateQuiz persists a quiz with its questions and answers as one unit.
// Validation runs up front and all inserts share one transaction, so a failed
// creation leaves no rows behind. Returns the aggregate re-read from storage.
func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	if err := validateCreateQuiz(req); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	quiz := models.Quiz{
		Title: strings.TrimSpace(req.Title),
	}

	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to create quiz: %v", err)
		return nil, &OperationError{Op: "create", Message: MsgCreationFailed, Err: err}
	}

	for _, qReq := range req.Questions {
		question := models.Question{
			QuizID:   quiz.ID,
			Question: strings.TrimSpace(qReq.Question),
			Type:     qReq.Type,
		}

		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			log.Printf("Failed to create question for quiz %d: %v", quiz.ID, err)
			return nil, &OperationError{Op: "create", Message: MsgCreationFailed, Err: err}
		}

		for _, aReq := range qReq.Answers {
			answer := models.Answer{
				QuestionID: question.ID,
				Answer:     strings.TrimSpace(aReq.Answer),
				IsCorrect:  aReq.IsCorrect,
			}

			if err := tx.Create(&answer).Error; err != nil {
				tx.Rollback()
				log.Printf("Failed to create answer for question %d: %v", question.ID, err)
				return nil, &OperationError{Op: "create", Message: MsgCreationFailed, Err: err}
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit quiz %d: %v", quiz.ID, err)
		return nil, &OperationError{Op: "create", Message: MsgCreationFailed, Err: err}
	}

	log.Printf("Created quiz with id: %d", quiz.ID)

	// Re-read so the caller sees exactly what storage now holds.
	return s.GetQuizByID(strconv.FormatUint(uint64(quiz.ID), 10))
}

// GetQuizzes returns the summary view: id, title and question count. Answers
// are never loaded for the list.
func (s *QuizService) GetQuizzes() ([]QuizSummary, error) {
	var quizzes []models.Quiz
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "quiz_id")
		}).
		Find(&quizzes).Error
	if err != nil {
		log.Printf("Failed to fetch quizzes: %v", err)
		return nil, &OperationError{Op: "fetch", Message: MsgFetchFailed, Err: err}
	}

	summaries := make([]QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, QuizSummary{
			ID:            quiz.ID,
			Title:         quiz.Title,
			QuestionCount: len(quiz.Questions),
		})
	}

	log.Printf("Retrieved %d quizzes", len(summaries))
	return summaries, nil
}

// GetQuizByID loads the full aggregate with questions and answers in
// insertion order.
func (s *QuizService) GetQuizByID(id string) (*models.Quiz, error) {
	quizID, err := parseQuizID(id)
	if err != nil {
		return nil, err
	}

	if quiz, ok := s.cachedQuiz(quizID); ok {
		return quiz, nil
	}

	var quiz models.Quiz
	err = s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		log.Printf("Failed to fetch quiz %s: %v", id, err)
		return nil, &OperationError{Op: "fetch", Message: MsgFetchFailed, Err: err}
	}

	s.storeCachedQuiz(&quiz)
	log.Printf("Retrieved quiz with id: %s", id)
	return &quiz, nil
}

// DeleteQuiz removes a quiz and its dependents bottom-up: answers, then
// questions, then the quiz row itself.
func (s *QuizService) DeleteQuiz(id string) (string, error) {
	quizID, err := parseQuizID(id)
	if err != nil {
		return "", err
	}

	var existing models.Quiz
	if err := s.db.First(&existing, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{ID: id}
		}
		log.Printf("Failed to delete quiz %s: %v", id, err)
		return "", &OperationError{Op: "delete", Message: MsgDeletionFailed, Err: err}
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var questions []models.Question
	if err := tx.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to delete quiz %s: %v", id, err)
		return "", &OperationError{Op: "delete", Message: MsgDeletionFailed, Err: err}
	}

	for _, question := range questions {
		if err := tx.Where("question_id = ?", question.ID).Delete(&models.Answer{}).Error; err != nil {
			tx.Rollback()
			log.Printf("Failed to delete answers of quiz %s: %v", id, err)
			return "", &OperationError{Op: "delete", Message: MsgDeletionFailed, Err: err}
		}
	}

	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to delete questions of quiz %s: %v", id, err)
		return "", &OperationError{Op: "delete", Message: MsgDeletionFailed, Err: err}
	}

	result := tx.Delete(&models.Quiz{}, quizID)
	if result.Error != nil {
		tx.Rollback()
		log.Printf("Failed to delete quiz %s: %v", id, result.Error)
		return "", &OperationError{Op: "delete", Message: MsgDeletionFailed, Err: result.Error}
	}
	if result.RowsAffected == 0 {
		// Concurrent deletion between the existence check and the delete.
		tx.Rollback()
		return "", &NotFoundError{ID: id}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit delete of quiz %s: %v", id, err)
		return "", &OperationError{Op: "delete", Message: MsgDeletionFailed, Err: err}
	}

	s.invalidateCachedQuiz(quizID)
	log.Printf("Deleted quiz with id: %s", id)
	return "Quiz deleted successfully", nil
}

func parseQuizID(id string) (uint, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || parsed < 0 {
		return 0, &InvalidDataError{Message: MsgInvalidIDFormat}
	}
	return uint(parsed), nil
}
