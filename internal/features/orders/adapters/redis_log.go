package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecommerce-api-client/internal/core/cache"
	"ecommerce-api-client/internal/core/logger"
	"ecommerce-api-client/internal/features/orders/domain"

	"go.uber.org/zap"
)

const submissionLogKey = "orders:submissions"

// recentReadLimit bounds a Recent read when the log itself is uncapped.
const recentReadLimit = 100

// RedisSubmissionLog implements ports.SubmissionLog on top of the cache port.
type RedisSubmissionLog struct {
	cache cache.Cache
	max   int64
	ttl   time.Duration
}

// NewRedisSubmissionLog creates a submission log that keeps at most max
// entries and expires ttl after the last write.
func NewRedisSubmissionLog(c cache.Cache, max int64, ttl time.Duration) *RedisSubmissionLog {
	return &RedisSubmissionLog{
		cache: c,
		max:   max,
		ttl:   ttl,
	}
}

// Record appends the submission to the log.
func (l *RedisSubmissionLog) Record(ctx context.Context, submission *domain.Submission) error {
	data, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	if err := l.cache.Append(ctx, submissionLogKey, data, l.max, l.ttl); err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}

	return nil
}

// Recent returns the logged submissions, newest first. Entries that no
// longer decode are skipped rather than failing the whole read.
func (l *RedisSubmissionLog) Recent(ctx context.Context) ([]domain.Submission, error) {
	limit := l.max
	if limit <= 0 {
		limit = recentReadLimit
	}

	entries, err := l.cache.List(ctx, submissionLogKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read submission log: %w", err)
	}

	submissions := make([]domain.Submission, 0, len(entries))
	for _, entry := range entries {
		var submission domain.Submission
		if err := json.Unmarshal(entry, &submission); err != nil {
			logger.Get().Warn("Skipping undecodable submission entry", zap.Error(err))
			continue
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}
