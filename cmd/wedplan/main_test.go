// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

/*
TestAwaitExit_Completed checks that the command result is returned and that
cancellation is not treated as a failure.
*/
func TestAwaitExit_Completed(t *testing.T) {
	failure := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"success", nil, nil},
		{"failure", failure, failure},
		{"cancelled", context.Canceled, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := bufferLogger()
			done := make(chan error, 1)
			done <- tt.err

			assert.Equal(t, tt.want, awaitExit(context.Background(), log, done, time.Second))
		})
	}
}

/*
TestAwaitExit_SignalWaitsForCommand checks that after a signal the command is
allowed to finish before awaitExit returns.
*/
func TestAwaitExit_SignalWaitsForCommand(t *testing.T) {
	log, buf := bufferLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	finished := make(chan struct{})
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(finished)
		done <- context.Canceled
	}()

	assert.NoError(t, awaitExit(ctx, log, done, 5*time.Second))

	select {
	case <-finished:
	default:
		t.Fatal("awaitExit returned before the command finished")
	}
	assert.Contains(t, buf.String(), "shutdown_signal_received")
	assert.NotContains(t, buf.String(), "shutdown_grace_expired")
}

/*
TestAwaitExit_GraceExpired checks that a command that never returns does not
block shutdown beyond the grace period.
*/
func TestAwaitExit_GraceExpired(t *testing.T) {
	log, buf := bufferLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.NoError(t, awaitExit(ctx, log, make(chan error), 20*time.Millisecond))

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Contains(t, buf.String(), "shutdown_grace_expired")
}
