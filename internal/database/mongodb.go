package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chinarfoundation/charity-site/pkg/logger"
)

const connectAttempts = 5

// dial opens a single connection attempt bounded by timeout and verifies it
// with a ping.
func dial(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// Connect dials MongoDB with retry and exponential backoff, tolerating the
// startup race where the database container is still coming up. Caller should
// call client.Disconnect(ctx) when done.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	backoff := time.Second
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		client, err := dial(ctx, uri, timeout)
		if err == nil {
			return client, nil
		}
		lastErr = err
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, connectAttempts, err)
		if attempt < connectAttempts {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("mongo connect after %d attempts: %w", connectAttempts, lastErr)
}
