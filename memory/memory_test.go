package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/meikuraledutech/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendFillsIDAndTimestamp(t *testing.T) {
	s := New()

	entry := &route.HistoryEntry{From: "A", To: "C", Path: []string{"A", "B", "C"}}
	id, err := s.Append(context.Background(), entry)
	require.NoError(t, err)

	assert.NotEmpty(t, id)
	assert.Equal(t, id, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Append(ctx, &route.HistoryEntry{From: fmt.Sprintf("N%d", i), To: "X"})
		require.NoError(t, err)
	}

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "N2", entries[0].From)
	assert.Equal(t, "N0", entries[2].From)
}

func TestStore_CapsAtMaxEntries(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 0; i < route.MaxHistoryEntries+10; i++ {
		_, err := s.Append(ctx, &route.HistoryEntry{From: fmt.Sprintf("N%d", i), To: "X"})
		require.NoError(t, err)
	}

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, route.MaxHistoryEntries)
	// the oldest entries were evicted
	assert.Equal(t, fmt.Sprintf("N%d", route.MaxHistoryEntries+9), entries[0].From)
	assert.Equal(t, "N10", entries[len(entries)-1].From)
}

func TestStore_Clear(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Append(ctx, &route.HistoryEntry{From: "A", To: "B"})
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Append(ctx, &route.HistoryEntry{From: "A", To: "B"})
	require.NoError(t, err)

	entries, err := s.List(ctx)
	require.NoError(t, err)
	entries[0].From = "mutated"

	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", again[0].From)
}
