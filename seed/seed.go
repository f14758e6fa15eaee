package seed

import (
	"fmt"
	"log"

	"quizbuilder/models"
	"quizbuilder/services"

	"gorm.io/gorm"
)

// Run seeds the reference quizzes. It is idempotent: a store that already
// holds any quiz is left untouched.
func Run(db *gorm.DB, quizzes *services.QuizService) error {
	log.Println("Starting database seeding...")

	var count int64
	if err := db.Model(&models.Quiz{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count quizzes: %w", err)
	}
	if count > 0 {
		log.Println("Database already contains data. Skipping seeding.")
		return nil
	}

	for _, req := range sampleQuizzes() {
		quiz, err := quizzes.CreateQuiz(&req)
		if err != nil {
			return fmt.Errorf("failed to seed quiz %q: %w", req.Title, err)
		}
		log.Printf("Created %s quiz with ID: %d", quiz.Title, quiz.ID)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func sampleQuizzes() []services.CreateQuizRequest {
	return []services.CreateQuizRequest{
		{
			Title: "JavaScript Fundamentals",
			Questions: []services.CreateQuestionRequest{
				{
					Question: "Is JavaScript a compiled language?",
					Type:     models.QuestionTypeBoolean,
					Answers: []services.CreateAnswerRequest{
						{Answer: "True", IsCorrect: false},
						{Answer: "False", IsCorrect: true},
					},
				},
				{
					Question: "What does DOM stand for in web development?",
					Type:     models.QuestionTypeInput,
					Answers: []services.CreateAnswerRequest{
						{Answer: "Document Object Model", IsCorrect: true},
					},
				},
				{
					Question: "Which of the following are JavaScript data types?",
					Type:     models.QuestionTypeCheckbox,
					Answers: []services.CreateAnswerRequest{
						{Answer: "String", IsCorrect: true},
						{Answer: "Number", IsCorrect: true},
						{Answer: "Boolean", IsCorrect: true},
						{Answer: "Array", IsCorrect: true},
						{Answer: "Object", IsCorrect: true},
						{Answer: "Function", IsCorrect: false},
					},
				},
			},
		},
		{
			Title: "Basic Mathematics",
			Questions: []services.CreateQuestionRequest{
				{
					Question: "Is the square root of 16 equal to 4?",
					Type:     models.QuestionTypeBoolean,
					Answers: []services.CreateAnswerRequest{
						{Answer: "True", IsCorrect: true},
						{Answer: "False", IsCorrect: false},
					},
				},
				{
					Question: "What is 7 x 8?",
					Type:     models.QuestionTypeInput,
					Answers: []services.CreateAnswerRequest{
						{Answer: "56", IsCorrect: true},
					},
				},
				{
					Question: "Which of the following are prime numbers?",
					Type:     models.QuestionTypeCheckbox,
					Answers: []services.CreateAnswerRequest{
						{Answer: "2", IsCorrect: true},
						{Answer: "3", IsCorrect: true},
						{Answer: "5", IsCorrect: true},
						{Answer: "7", IsCorrect: true},
						{Answer: "4", IsCorrect: false},
						{Answer: "6", IsCorrect: false},
					},
				},
			},
		},
		{
			Title: "World History",
			Questions: []services.CreateQuestionRequest{
				{
					Question: "Did World War II end in 1945?",
					Type:     models.QuestionTypeBoolean,
					Answers: []services.CreateAnswerRequest{
						{Answer: "True", IsCorrect: true},
						{Answer: "False", IsCorrect: false},
					},
				},
				{
					Question: "In which year did Christopher Columbus discover America?",
					Type:     models.QuestionTypeInput,
					Answers: []services.CreateAnswerRequest{
						{Answer: "1492", IsCorrect: true},
					},
				},
				{
					Question: "Which of the following were ancient civilizations?",
					Type:     models.QuestionTypeCheckbox,
					Answers: []services.CreateAnswerRequest{
						{Answer: "Egyptian", IsCorrect: true},
						{Answer: "Roman", IsCorrect: true},
						{Answer: "Greek", IsCorrect: true},
						{Answer: "Mayan", IsCorrect: true},
						{Answer: "American", IsCorrect: false},
						{Answer: "Canadian", IsCorrect: false},
					},
				},
			},
		},
		{
			Title: "General Science",
			Questions: []services.CreateQuestionRequest{
				{
					Question: "Is water composed of hydrogen and oxygen?",
					Type:     models.QuestionTypeBoolean,
					Answers: []services.CreateAnswerRequest{
						{Answer: "True", IsCorrect: true},
						{Answer: "False", IsCorrect: false},
					},
				},
				{
					Question: "What is the chemical symbol for gold?",
					Type:     models.QuestionTypeInput,
					Answers: []services.CreateAnswerRequest{
						{Answer: "Au", IsCorrect: true},
					},
				},
				{
					Question: "Which of the following are planets in our solar system?",
					Type:     models.QuestionTypeCheckbox,
					Answers: []services.CreateAnswerRequest{
						{Answer: "Earth", IsCorrect: true},
						{Answer: "Mars", IsCorrect: true},
						{Answer: "Jupiter", IsCorrect: true},
						{Answer: "Venus", IsCorrect: true},
						{Answer: "Moon", IsCorrect: false},
						{Answer: "Sun", IsCorrect: false},
					},
				},
			},
		},
	}
}
