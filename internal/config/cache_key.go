package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AttemptAnswersKey returns the cache key for an attempt's latest answer snapshot.
func (r *CacheKeyStruct) AttemptAnswersKey(attemptID string) string {
	return fmt.Sprintf("attempt:%s:answers", attemptID)
}

// AttemptStartKey returns the cache key for an attempt's start instant (unix seconds).
func (r *CacheKeyStruct) AttemptStartKey(attemptID string) string {
	return fmt.Sprintf("attempt:%s:started_at", attemptID)
}

// ResultEventsChannel returns the Redis PubSub channel carrying
// attempt-completed events for the admin live result stream.
func (r *CacheKeyStruct) ResultEventsChannel() string {
	return "quiz:results:events"
}

var CacheKey = NewCacheKeyStruct()
