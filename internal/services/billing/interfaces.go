package billing

import (
	"context"

	"tippool/internal/gateway"
	"tippool/internal/models"
)

// Service defines the billing-association operations for a participant.
type Service interface {
	// Resolve finds or creates the participant's gateway account. With a
	// nil reference it looks the account up by identity email, creates
	// one on absence, and persists the resolved reference immediately;
	// with a non-nil reference it fetches directly and an unresolvable
	// reference is fatal.
	Resolve(ctx context.Context, participantID string, accountRef *string) (*gateway.Account, error)

	// Associate resolves the account and attaches the tokenized card to
	// it. The returned string is the outcome message: "" on success, the
	// gateway's diagnostic on a declined card. Either way the outcome is
	// persisted as the participant's last bill result.
	Associate(ctx context.Context, participantID string, accountRef *string, cardToken string) (string, error)

	// Clear invalidates every currently-valid card on the account, then
	// resets the participant's billing columns to the never-billed state.
	Clear(ctx context.Context, participantID, accountRef string) error

	// CardView projects the account's most recent card into display
	// fields. A nil reference yields an empty projection without any
	// gateway call.
	CardView(ctx context.Context, accountRef *string) (models.CardSummary, error)
}

// ProjectionCache caches card-view projections keyed by account
// reference. The service treats it as best effort and runs without one.
type ProjectionCache interface {
	GetCardSummary(ctx context.Context, accountRef string) (*models.CardSummary, error)
	SetCardSummary(ctx context.Context, accountRef string, summary *models.CardSummary) error
	InvalidateAccount(ctx context.Context, accountRef string) error
}
