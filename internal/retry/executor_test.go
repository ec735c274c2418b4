package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = &pgconn.PgError{Code: "08006", Message: "connection failure"}

// flakyOperation fails with err for the first failures invocations.
type flakyOperation struct {
	calls    int
	failures int
	err      error
}

func (f *flakyOperation) run(context.Context) error {
	f.calls++
	if f.calls <= f.failures {
		return f.err
	}
	return nil
}

func fastExecutor(maxAttempts int) *Executor {
	return NewExecutor(
		NewPostgreSQLErrorClassifier(),
		NewExponentialBackoff(maxAttempts, WithInitialDelay(time.Millisecond), WithJitter(0)),
	)
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, NewExponentialBackoff(1)) })
	assert.Panics(t, func() { NewExecutor(NewPostgreSQLErrorClassifier(), nil) })
}

func TestExecutor_SuccessFirstAttempt(t *testing.T) {
	op := &flakyOperation{}
	require.NoError(t, fastExecutor(3).Execute(context.Background(), op.run))
	assert.Equal(t, 1, op.calls)
}

func TestExecutor_SuccessAfterRetries(t *testing.T) {
	op := &flakyOperation{failures: 2, err: errTransient}

	var retries []int
	executor := fastExecutor(5).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		retries = append(retries, attempt)
		assert.ErrorIs(t, err, errTransient)
	})

	require.NoError(t, executor.Execute(context.Background(), op.run))
	assert.Equal(t, 3, op.calls)
	assert.Equal(t, []int{0, 1}, retries)
}

func TestExecutor_ExhaustsAttempts(t *testing.T) {
	op := &flakyOperation{failures: 100, err: errTransient}

	err := fastExecutor(2).Execute(context.Background(), op.run)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, op.calls)
}

func TestExecutor_NoRetriesWhenZero(t *testing.T) {
	op := &flakyOperation{failures: 100, err: errTransient}

	err := fastExecutor(0).Execute(context.Background(), op.run)
	assert.Error(t, err)
	assert.Equal(t, 1, op.calls)
}

func TestExecutor_PermanentErrorStops(t *testing.T) {
	permanent := errors.New("password authentication failed")
	op := &flakyOperation{failures: 100, err: permanent}

	err := fastExecutor(5).Execute(context.Background(), op.run)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, op.calls)
}

func TestExecutor_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	executor := NewExecutor(
		NewPostgreSQLErrorClassifier(),
		NewExponentialBackoff(-1, WithInitialDelay(time.Hour), WithMaxDelay(time.Hour), WithJitter(0)),
	).WithOnRetry(func(int, error, time.Duration) { cancel() })

	op := &flakyOperation{failures: 100, err: errTransient}
	err := executor.Execute(ctx, op.run)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, op.calls)
}

func TestExecutor_WithOnRetryDoesNotMutate(t *testing.T) {
	base := fastExecutor(1)
	withCallback := base.WithOnRetry(func(int, error, time.Duration) {})
	assert.Nil(t, base.onRetry)
	assert.NotNil(t, withCallback.onRetry)
}

func TestDo(t *testing.T) {
	calls := 0
	v, err := Do(context.Background(), fastExecutor(3), func(context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", errTransient
		}
		return "pool", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "pool", v)
	assert.Equal(t, 2, calls)

	_, err = Do(context.Background(), fastExecutor(3), func(context.Context) (int, error) {
		return 0, errors.New("fatal")
	})
	assert.EqualError(t, err, "fatal")
}
