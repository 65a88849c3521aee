package health

import (
	"context"
	"errors"

	"github.com/piresc/xpend/internal/pkg/database"
	"github.com/piresc/xpend/internal/pkg/nats"
)

// NewPostgresHealthChecker returns nil when client is nil so memory mode skips the check
func NewPostgresHealthChecker(client *database.PostgresClient) HealthChecker {
	if client == nil {
		return nil
	}
	return CheckerFunc(client.Ping)
}

// NewRedisHealthChecker returns nil when client is nil
func NewRedisHealthChecker(client *database.RedisClient) HealthChecker {
	if client == nil {
		return nil
	}
	return CheckerFunc(client.Ping)
}

// NewNATSHealthChecker reports whether the connection is up
func NewNATSHealthChecker(client *nats.Client) HealthChecker {
	if client == nil {
		return nil
	}
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return errors.New("nats not connected")
		}
		return nil
	})
}
