package store

import (
	"context"
	"time"
)

const (
	retryAttempts = 3
	retryBackoff  = 50 * time.Millisecond
)

// withRetry runs fn until it succeeds, fails with an error the classifier
// does not consider [Retryable], or the attempts run out. The wait between
// attempts grows linearly and is cut short by ctx.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == retryAttempts || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
}
