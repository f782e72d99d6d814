// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/wedplan/internal/platform/redis"
)

/*
TestNewClient covers a reachable server, an invalid URL and a dead address.
*/
func TestNewClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("connected", func(t *testing.T) {
		server := miniredis.RunT(t)

		client, err := redisstore.NewClient(ctx, "redis://"+server.Addr()+"/0", logger)
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		assert.NoError(t, redisstore.Ping(ctx, client))
	})

	t.Run("invalid_url", func(t *testing.T) {
		_, err := redisstore.NewClient(ctx, "http://not-redis", logger)
		assert.ErrorContains(t, err, "invalid URL")
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := redisstore.NewClient(ctx, "redis://127.0.0.1:1/0", logger)
		assert.ErrorContains(t, err, "ping failed")
	})
}
