package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusRejected, StatusDraft, true},

		{StatusDraft, StatusApproved, false},
		{StatusDraft, StatusRejected, false},
		{StatusPending, StatusDraft, false},
		{StatusApproved, StatusDraft, false},
		{StatusApproved, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{"bogus", StatusPending, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestApprovedIsTerminal(t *testing.T) {
	for _, to := range []string{StatusDraft, StatusPending, StatusApproved, StatusRejected} {
		require.False(t, CanTransition(StatusApproved, to))
	}
}
