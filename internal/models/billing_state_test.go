package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestParticipant_BillingState(t *testing.T) {
	tests := []struct {
		name        string
		accountRef  *string
		billResult  *string
		wantKind    BillingStateKind
		wantRef     string
		wantHasRef  bool
		wantMessage string
	}{
		{
			name:     "never billed",
			wantKind: StateUnbilled,
		},
		{
			name:       "linked but never attempted",
			accountRef: strPtr("acct_A"),
			wantKind:   StateLinkedGood,
			wantRef:    "acct_A",
			wantHasRef: true,
		},
		{
			name:       "good standing",
			accountRef: strPtr("acct_A"),
			billResult: strPtr(""),
			wantKind:   StateLinkedGood,
			wantRef:    "acct_A",
			wantHasRef: true,
		},
		{
			name:        "last attempt failed",
			accountRef:  strPtr("acct_A"),
			billResult:  strPtr("Your card was declined."),
			wantKind:    StateLinkedError,
			wantRef:     "acct_A",
			wantHasRef:  true,
			wantMessage: "Your card was declined.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Participant{
				ID:                "alice",
				BillingAccountRef: tt.accountRef,
				LastBillResult:    tt.billResult,
			}

			state := p.BillingState()
			assert.Equal(t, tt.wantKind, state.Kind())

			ref, ok := state.AccountRef()
			assert.Equal(t, tt.wantHasRef, ok)
			assert.Equal(t, tt.wantRef, ref)
			assert.Equal(t, tt.wantMessage, state.Message())
		})
	}
}
