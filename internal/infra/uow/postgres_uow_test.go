//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"resort-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock behind a wrap", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "update booking"), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "not a postgres error", err: errors.New("conn reset")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, retryable(tc.err))
		})
	}
}

func TestRetryPolicyWait(t *testing.T) {
	p := RetryPolicy{Retries: 3, Base: 100 * time.Millisecond}

	for attempt, floor := range []time.Duration{100, 200, 400} {
		got := p.wait(attempt)
		floor *= time.Millisecond
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+1)
	}
}
