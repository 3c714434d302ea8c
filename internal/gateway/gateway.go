// Package gateway defines the payment gateway boundary used by the
// billing service and its Stripe-backed implementation.
package gateway

import (
	"context"
	"errors"
	"time"
)

// ErrAccountNotFound is returned by FindAccountByEmail when no account
// carries the given identity email. It is an expected condition that
// triggers account creation, not a fault.
var ErrAccountNotFound = errors.New("gateway account not found")

// DeclinedError is a structured business failure reported by the gateway
// when a card association is rejected. Its message is suitable for
// recording and for display to the participant.
type DeclinedError struct {
	Message string
}

func (e *DeclinedError) Error() string {
	return e.Message
}

// Account is the gateway's representation of a payer, held locally only
// as an opaque reference plus the identity email it was tagged with.
type Account struct {
	Ref   string
	Email string
}

// Card is a card held on a gateway account. Expiry parts are strings so
// an absent part is representable as "".
type Card struct {
	ID         string
	AccountRef string
	Valid      bool
	LastFour   string
	ExpMonth   string
	ExpYear    string
	Created    time.Time
}

// Gateway abstracts the payment gateway operations the billing service
// depends on.
type Gateway interface {
	// FindAccountByEmail locates the account tagged with the identity
	// email, returning ErrAccountNotFound when none exists.
	FindAccountByEmail(ctx context.Context, email string) (*Account, error)
	// CreateAccount creates a new account tagged with the identity email
	// and the participant id it was derived from.
	CreateAccount(ctx context.Context, email, participantID string) (*Account, error)
	// FindAccount fetches an account by its opaque reference. A reference
	// that does not resolve is an error, never a nil result.
	FindAccount(ctx context.Context, ref string) (*Account, error)
	// AttachCard associates a tokenized card with the account. A
	// gateway-side rejection comes back as *DeclinedError; transport and
	// auth failures come back as ordinary errors.
	AttachCard(ctx context.Context, account *Account, cardToken string) error
	// ListCards returns all cards on the account, newest first.
	ListCards(ctx context.Context, account *Account) ([]Card, error)
	// SaveCard persists a card's state back to the gateway. It is used to
	// persist invalidation.
	SaveCard(ctx context.Context, card *Card) error
}
