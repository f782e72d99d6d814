// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package generator_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wedplan/internal/core/generator"
	"github.com/taibuivan/wedplan/internal/platform/apperr"
)

// scriptedRepository records the call order and fails where told to.
type scriptedRepository struct {
	calls     []string
	failOn    map[string]error
	sequences map[string]string
}

func (s *scriptedRepository) step(name string) error {
	s.calls = append(s.calls, name)
	return s.failOn[name]
}

func (s *scriptedRepository) Truncate(context.Context) error {
	return s.step("truncate")
}

func (s *scriptedRepository) InsertGrooms(_ context.Context, count int) (int64, error) {
	if err := s.step("grooms"); err != nil {
		return 0, err
	}
	return int64(count), nil
}

func (s *scriptedRepository) InsertOrganizers(_ context.Context, count int) (int64, error) {
	if err := s.step("organizers"); err != nil {
		return 0, err
	}
	return int64(count), nil
}

func (s *scriptedRepository) InsertOrders(_ context.Context, count int) (int64, error) {
	if err := s.step("orders"); err != nil {
		return 0, err
	}
	return int64(count), nil
}

func (s *scriptedRepository) SerialSequence(_ context.Context, target generator.Target) (string, error) {
	if err := s.step("lookup:" + target.Column); err != nil {
		return "", err
	}
	return s.sequences[target.Column], nil
}

func (s *scriptedRepository) ResetSequence(_ context.Context, _ string, target generator.Target) error {
	return s.step("reset:" + target.Column)
}

func allSequences() map[string]string {
	return map[string]string{
		"groom_id":     "public.groom_groom_id_seq",
		"organizer_id": "public.organizer_organizer_id_seq",
		"id":           "public.order_id_seq",
	}
}

func newService(repo generator.Repository) (*generator.Service, *bytes.Buffer) {
	console := &bytes.Buffer{}
	return generator.NewService(repo, console, slog.New(slog.NewTextHandler(io.Discard, nil))), console
}

/*
TestService_Generate runs the happy path and checks the step order and the
final report.
*/
func TestService_Generate(t *testing.T) {
	repo := &scriptedRepository{sequences: allSequences()}
	service, console := newService(repo)

	report, err := service.Generate(context.Background(), 25)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"truncate", "grooms", "organizers", "orders",
		"lookup:groom_id", "reset:groom_id",
		"lookup:organizer_id", "reset:organizer_id",
		"lookup:id", "reset:id",
	}, repo.calls)

	assert.Equal(t, 25, report.Requested)
	assert.Equal(t, int64(25), report.Grooms)
	assert.Equal(t, int64(25), report.Organizers)
	assert.Equal(t, int64(25), report.Orders)
	require.Len(t, report.Sync, 3)
	for _, outcome := range report.Sync {
		assert.Equal(t, generator.SyncDone, outcome.Status)
	}
	assert.Equal(t, "public.order_id_seq", report.Sync[2].Sequence)

	assert.Contains(t, console.String(), "Generating 25 rows...")
	assert.Contains(t, console.String(), "Data generation completed successfully.")
}

/*
TestService_Generate_RejectsCount verifies that a non-positive count never
touches the store.
*/
func TestService_Generate_RejectsCount(t *testing.T) {
	for _, count := range []int{0, -10} {
		repo := &scriptedRepository{}
		service, _ := newService(repo)

		_, err := service.Generate(context.Background(), count)

		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
		assert.Empty(t, repo.calls)
	}
}

/*
TestService_Generate_InsertFailureStops verifies that a failed insert stops the
run and that earlier counts stay in the report.
*/
func TestService_Generate_InsertFailureStops(t *testing.T) {
	boom := apperr.ExecutionFailed("SQL execution failed", errors.New("disk full"))
	repo := &scriptedRepository{
		failOn:    map[string]error{"organizers": boom},
		sequences: allSequences(),
	}
	service, console := newService(repo)

	report, err := service.Generate(context.Background(), 10)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"truncate", "grooms", "organizers"}, repo.calls)
	assert.Equal(t, int64(10), report.Grooms)
	assert.Zero(t, report.Organizers)
	assert.Empty(t, report.Sync)
	assert.NotContains(t, console.String(), "completed successfully")
}

/*
TestService_Generate_SyncFailureContinues verifies that one failed sequence
sync is reported as SYNC_FAILED without skipping the others.
*/
func TestService_Generate_SyncFailureContinues(t *testing.T) {
	repo := &scriptedRepository{
		failOn:    map[string]error{"reset:organizer_id": errors.New("permission denied")},
		sequences: allSequences(),
	}
	service, console := newService(repo)

	report, err := service.Generate(context.Background(), 5)

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeSyncFailed))
	assert.True(t, apperr.IsReported(err))
	assert.Contains(t, repo.calls, "reset:id")

	require.Len(t, report.Sync, 3)
	assert.Equal(t, generator.SyncDone, report.Sync[0].Status)
	assert.Equal(t, generator.SyncFailed, report.Sync[1].Status)
	assert.Equal(t, generator.SyncDone, report.Sync[2].Status)
	assert.Equal(t, int64(5), report.Orders)
	assert.Contains(t, console.String(), "Warning: failed to automatically synchronize sequence")
}

/*
TestService_Generate_MissingSequence verifies the warning-only path for a
column without a serial sequence.
*/
func TestService_Generate_MissingSequence(t *testing.T) {
	sequences := allSequences()
	delete(sequences, "groom_id")
	repo := &scriptedRepository{sequences: sequences}
	service, console := newService(repo)

	report, err := service.Generate(context.Background(), 3)

	require.NoError(t, err)
	assert.NotContains(t, repo.calls, "reset:groom_id")
	assert.Equal(t, generator.SyncSkipped, report.Sync[0].Status)
	assert.Contains(t, console.String(), "No serial sequence detected for public.groom.groom_id")
}
