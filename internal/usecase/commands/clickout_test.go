//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodai-api/internal/domain/clickout"
	"foodai-api/internal/pkg/clock"
	"foodai-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	inserted []clickout.Clickout
	err      error
}

func (s *fakeStore) Insert(_ context.Context, c clickout.Clickout) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, c)
	return nil
}

func TestClickoutCommands_Record(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	params := commands.RecordClickoutParams{
		OfferID:    "offer-1",
		ProviderID: "wolt",
		IP:         "203.0.113.7",
		UserAgent:  "test-agent",
		Referer:    "https://example.com",
	}

	t.Run("persists the row with request metadata", func(t *testing.T) {
		store := &fakeStore{}
		cmd := commands.NewClickoutCommands(store, clock.NewMockClock(now))

		result := cmd.Record(context.Background(), params)

		assert.NotEqual(t, uuid.Nil, result.ClickoutID)
		require.Len(t, store.inserted, 1)
		row := store.inserted[0]
		assert.Equal(t, result.ClickoutID, row.ID)
		assert.Equal(t, "offer-1", row.OfferID)
		assert.Equal(t, "wolt", row.ProviderID)
		assert.Equal(t, "203.0.113.7", row.IP)
		assert.Equal(t, now, row.Timestamp)
		assert.Nil(t, row.UserID)
	})

	t.Run("storage failure still succeeds", func(t *testing.T) {
		store := &fakeStore{err: errors.New("connection refused")}
		cmd := commands.NewClickoutCommands(store, clock.NewMockClock(now))

		result := cmd.Record(context.Background(), params)

		assert.NotEqual(t, uuid.Nil, result.ClickoutID)
	})

	t.Run("every record gets a fresh id", func(t *testing.T) {
		store := &fakeStore{}
		cmd := commands.NewClickoutCommands(store, clock.NewMockClock(now))

		first := cmd.Record(context.Background(), params)
		second := cmd.Record(context.Background(), params)

		assert.NotEqual(t, first.ClickoutID, second.ClickoutID)
	})
}
