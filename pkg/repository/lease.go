package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talkifydocs/ingest-backend/pkg/types"
)

const runLeasePrefix = "ingest-run-"

// Lease tracks which ingestion runs are alive. A run holds its lease while it
// executes and refreshes it periodically, so a record in PROCESSING without a
// lease belongs to a run that died.
type Lease interface {
	// AcquireRunLease takes the lease of a file. It returns false if another
	// run already holds it.
	AcquireRunLease(ctx context.Context, fileUID types.FileUIDType, ttl time.Duration) (bool, error)
	// ExtendRunLease refreshes the TTL of a held lease. It returns false if
	// the lease had already expired.
	ExtendRunLease(ctx context.Context, fileUID types.FileUIDType, ttl time.Duration) (bool, error)
	// ReleaseRunLease drops the lease of a file.
	ReleaseRunLease(ctx context.Context, fileUID types.FileUIDType) error
	// ListLeasedFiles returns the subset of fileUIDs with a live lease.
	ListLeasedFiles(ctx context.Context, fileUIDs []types.FileUIDType) (map[types.FileUIDType]bool, error)
}

func runLeaseKey(fileUID types.FileUIDType) string {
	return runLeasePrefix + fileUID.String()
}

func (r *repository) AcquireRunLease(ctx context.Context, fileUID types.FileUIDType, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, runLeaseKey(fileUID), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquiring run lease: %w", err)
	}
	return ok, nil
}

func (r *repository) ExtendRunLease(ctx context.Context, fileUID types.FileUIDType, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.Expire(ctx, runLeaseKey(fileUID), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("extending run lease: %w", err)
	}
	return ok, nil
}

func (r *repository) ReleaseRunLease(ctx context.Context, fileUID types.FileUIDType) error {
	if err := r.redisClient.Del(ctx, runLeaseKey(fileUID)).Err(); err != nil {
		return fmt.Errorf("releasing run lease: %w", err)
	}
	return nil
}

// ListLeasedFiles checks every lease in a single pipeline round trip.
func (r *repository) ListLeasedFiles(ctx context.Context, fileUIDs []types.FileUIDType) (map[types.FileUIDType]bool, error) {
	leased := make(map[types.FileUIDType]bool, len(fileUIDs))
	if len(fileUIDs) == 0 {
		return leased, nil
	}

	pipe := r.redisClient.Pipeline()
	results := make(map[types.FileUIDType]*redis.IntCmd, len(fileUIDs))
	for _, uid := range fileUIDs {
		results[uid] = pipe.Exists(ctx, runLeaseKey(uid))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("checking run leases: %w", err)
	}

	for uid, cmd := range results {
		if cmd.Val() > 0 {
			leased[uid] = true
		}
	}
	return leased, nil
}
