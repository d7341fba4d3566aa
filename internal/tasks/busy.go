package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Busy flags gate the generate action: one flag per user and document kind,
// set by the API when a task is enqueued and released by the worker when the
// task finishes. CV and cover-letter generation are independent. The TTL is
// a safety net against a worker dying mid-task.

// BusyKey names the flag for one user/kind pair.
func BusyKey(userID uint, kind string) string {
	return fmt.Sprintf("busy:generate:%d:%s", userID, kind)
}

// AcquireBusy sets the flag if it is not already held. Returns false when a
// generation for this user/kind is already in flight.
func AcquireBusy(ctx context.Context, client redis.UniversalClient, userID uint, kind string, ttl time.Duration) (bool, error) {
	ok, err := client.SetNX(ctx, BusyKey(userID, kind), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire busy flag: %w", err)
	}
	return ok, nil
}

// ReleaseBusy clears the flag.
func ReleaseBusy(ctx context.Context, client redis.UniversalClient, userID uint, kind string) error {
	if err := client.Del(ctx, BusyKey(userID, kind)).Err(); err != nil {
		return fmt.Errorf("release busy flag: %w", err)
	}
	return nil
}
