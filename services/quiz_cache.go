package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"quizbuilder/models"

	"github.com/redis/go-redis/v9"
)

// Redis-backed read-through cache for full quiz aggregates. Cache failures
// are logged and the caller falls back to the database, so a missing or
// unreachable Redis never breaks reads.

const quizCacheTTL = time.Hour

// redisCache is the slice of *redis.Client the cache layer uses.
type redisCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

func quizCacheKey(quizID uint) string {
	return "quiz:" + strconv.FormatUint(uint64(quizID), 10)
}

func (s *QuizService) cachedQuiz(quizID uint) (*models.Quiz, bool) {
	if s.redis == nil {
		return nil, false
	}

	data, err := s.redis.Get(context.Background(), quizCacheKey(quizID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis error getting quiz %d: %v", quizID, err)
		}
		return nil, false
	}

	var quiz models.Quiz
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		log.Printf("Failed to decode cached quiz %d: %v", quizID, err)
		return nil, false
	}

	return &quiz, true
}

func (s *QuizService) storeCachedQuiz(quiz *models.Quiz) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(quiz)
	if err != nil {
		log.Printf("Failed to encode quiz %d for cache: %v", quiz.ID, err)
		return
	}

	if err := s.redis.Set(context.Background(), quizCacheKey(quiz.ID), data, quizCacheTTL).Err(); err != nil {
		log.Printf("Failed to store quiz %d in Redis: %v", quiz.ID, err)
	}
}

func (s *QuizService) invalidateCachedQuiz(quizID uint) {
	if s.redis == nil {
		return
	}

	if err := s.redis.Del(context.Background(), quizCacheKey(quizID)).Err(); err != nil {
		log.Printf("Failed to invalidate cached quiz %d: %v", quizID, err)
	}
}
