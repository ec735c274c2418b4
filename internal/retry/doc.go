// Package retry re-runs database operations that fail for transient reasons.
//
// An Executor combines an ErrorClassifier, which decides whether a failure is
// worth another attempt, with a BackoffStrategy, which decides how long to wait
// before it:
//
//	executor := retry.NewExecutor(
//	    retry.NewPostgreSQLErrorClassifier(),
//	    retry.NewExponentialBackoff(3),
//	)
//	pool, err := retry.Do(ctx, executor, func(ctx context.Context) (*pgxpool.Pool, error) {
//	    return connect(ctx)
//	})
//
// Only connection establishment is retried. Loader and Summarizer statements
// run once.
package retry
