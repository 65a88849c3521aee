package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestShutdownManagerRunsInReverseOrder(t *testing.T) {
	sm := NewShutdownManager()
	var order []string

	sm.Register("postgres", func(ctx context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register("redis", func(ctx context.Context) error {
		order = append(order, "redis")
		return errors.New("already closed")
	})
	sm.Register("nats", func(ctx context.Context) error {
		order = append(order, "nats")
		return nil
	})

	sm.Shutdown(context.Background())

	assert.Equal(t, []string{"nats", "redis", "postgres"}, order)
}

func TestGracefulServerShutdownWithoutStart(t *testing.T) {
	sm := NewShutdownManager()
	closed := false
	sm.Register("store", func(ctx context.Context) error {
		closed = true
		return nil
	})

	s := NewGracefulServer(echo.New(), "127.0.0.1", 0, time.Second, sm)

	assert.NoError(t, s.Shutdown())
	assert.True(t, closed)
	assert.Equal(t, "127.0.0.1:0", s.addr)
}
