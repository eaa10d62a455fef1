package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"APPROVED", StatusApproved, false},
		{"  disapproved ", StatusDisapproved, false},
		{"Cancelled", StatusCancelled, false},
		{"", "", true},
		{"confirmed", "", true},
		{"deleted", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownStatus, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusApproved, StatusDisapproved, StatusCancelled}
	legal := map[[2]Status]bool{
		{StatusPending, StatusApproved}:    true,
		{StatusPending, StatusDisapproved}: true,
		{StatusApproved, StatusCancelled}:  true,
	}
	for _, from := range all {
		for _, to := range all {
			want := legal[[2]Status{from, to}]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatesAdmitNoTransitions(t *testing.T) {
	for _, from := range []Status{StatusDisapproved, StatusCancelled} {
		require.True(t, from.Terminal())
		for _, to := range []Status{StatusPending, StatusApproved, StatusDisapproved, StatusCancelled} {
			_, err := ValidateTransition(from, to, "")
			assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", from, to)
		}
	}
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		reason  string
		want    string
		wantErr error
	}{
		{name: "approve without reason", from: StatusPending, to: StatusApproved},
		{name: "decline with reason", from: StatusPending, to: StatusDisapproved, reason: "Unit under renovation", want: "Unit under renovation"},
		{name: "decline trims reason", from: StatusPending, to: StatusDisapproved, reason: "  too many applicants  ", want: "too many applicants"},
		{name: "decline without reason", from: StatusPending, to: StatusDisapproved, wantErr: ErrReasonRequired},
		{name: "decline with whitespace reason", from: StatusPending, to: StatusDisapproved, reason: "   \t ", wantErr: ErrReasonRequired},
		{name: "approve with reason rejected", from: StatusPending, to: StatusApproved, reason: "why not", wantErr: ErrReasonNotAllowed},
		{name: "cancel approved visit", from: StatusApproved, to: StatusCancelled},
		{name: "cancel with reason rejected", from: StatusApproved, to: StatusCancelled, reason: "oops", wantErr: ErrReasonNotAllowed},
		{name: "approved back to pending", from: StatusApproved, to: StatusPending, wantErr: ErrIllegalTransition},
		{name: "pending straight to cancelled", from: StatusPending, to: StatusCancelled, wantErr: ErrIllegalTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTransition(tt.from, tt.to, tt.reason)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
