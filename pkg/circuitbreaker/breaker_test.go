package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failing() error { return errBoom }
func succeeding() error { return nil }

func TestBreakerTripsAfterThreshold(t *testing.T) {
	b := New("test", Config{FailureThreshold: 3, Cooldown: time.Hour})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(ctx, failing), errBoom)
	}
	assert.Equal(t, StateOpen, b.State())

	assert.ErrorIs(t, b.Execute(ctx, succeeding), ErrCircuitOpen)
}

func TestBreakerStaysClosedUnderThreshold(t *testing.T) {
	b := New("test", Config{FailureThreshold: 3, Cooldown: time.Hour})
	ctx := context.Background()

	require.Error(t, b.Execute(ctx, failing))
	require.Error(t, b.Execute(ctx, failing))
	require.NoError(t, b.Execute(ctx, succeeding))

	// success resets the consecutive failure count
	require.Error(t, b.Execute(ctx, failing))
	require.Error(t, b.Execute(ctx, failing))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	b := New("test", Config{FailureThreshold: 1, SuccessThreshold: 2, Cooldown: 10 * time.Millisecond})
	ctx := context.Background()

	require.Error(t, b.Execute(ctx, failing))
	require.Equal(t, StateOpen, b.State())

	time.Sleep(20 * time.Millisecond)

	require.NoError(t, b.Execute(ctx, succeeding))
	assert.Equal(t, StateHalfOpen, b.State())

	require.NoError(t, b.Execute(ctx, succeeding))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerReopensOnHalfOpenFailure(t *testing.T) {
	b := New("test", Config{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})
	ctx := context.Background()

	require.Error(t, b.Execute(ctx, failing))
	time.Sleep(20 * time.Millisecond)

	require.ErrorIs(t, b.Execute(ctx, failing), errBoom)
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerHonorsContext(t *testing.T) {
	b := New("test", Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := b.Execute(ctx, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
