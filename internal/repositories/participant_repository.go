package repositories

import (
	"context"
	"errors"

	"tippool/internal/models"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
)

// ParticipantRepository owns the billing columns of the participant row.
// Every write is an unconditional parameterized update keyed by id;
// concurrent writers are last-writer-wins (callers serialize if they
// need more).
type ParticipantRepository interface {
	GetByID(ctx context.Context, id string) (*models.Participant, error)
	Create(ctx context.Context, participant *models.Participant) error

	// SetBillingAccountRef records the gateway account reference.
	SetBillingAccountRef(ctx context.Context, id, ref string) error
	// SetLastBillResult records the outcome of the latest card
	// association; "" means good standing.
	SetLastBillResult(ctx context.Context, id, result string) error
	// ClearBilling nulls both billing columns, returning the participant
	// to the never-billed state.
	ClearBilling(ctx context.Context, id string) error
}
