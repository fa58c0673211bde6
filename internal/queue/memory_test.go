package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Publish(ctx, "jobs", "one"))
	require.NoError(t, m.Publish(ctx, "jobs", "two"))

	got, err := m.Dequeue(ctx, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	got, err = m.Dequeue(ctx, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}

func TestMemoryChannelsAreIndependent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Publish(ctx, "a", "payload"))

	timeout, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err := m.Dequeue(timeout, "b")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryDequeueBlocksUntilCancel(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := m.Dequeue(ctx, "empty")
	assert.ErrorIs(t, err, context.Canceled)
}
