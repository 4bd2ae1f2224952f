//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-scheduler/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock behind a wrap", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "commit"), want: true},
		{name: "exclusion violation is final", err: &pgconn.PgError{Code: "23P01"}, want: false},
		{name: "cancelled context is final", err: context.Canceled, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}
	for attempt := 0; attempt < p.maxRetries; attempt++ {
		floor := p.base << attempt
		got := p.backoff(attempt)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5)
	}

	assert.Equal(t, time.Duration(0), retryPolicy{}.backoff(2))
}
