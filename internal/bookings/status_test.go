package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPaymentPending, StatusConfirmed, true},
		{StatusPaymentPending, StatusPaymentFailed, true},
		{StatusPaymentPending, StatusCancelled, true},
		{StatusPaymentPending, StatusCheckedIn, false},

		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCheckedIn, true},
		{StatusConfirmed, StatusPaymentPending, false},
		{StatusConfirmed, StatusPaymentFailed, false},

		{StatusCancelled, StatusConfirmed, false},
		{StatusCheckedIn, StatusCancelled, false},
		{StatusPaymentFailed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPaymentPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCheckedIn.IsTerminal())
	assert.True(t, StatusPaymentFailed.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range []Status{
		StatusPaymentPending, StatusConfirmed, StatusCancelled, StatusCheckedIn, StatusPaymentFailed,
	} {
		assert.True(t, status.IsValid(), string(status))
	}
	assert.False(t, Status("REFUNDED").IsValid())
	assert.False(t, Status("").IsValid())
}
