package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v72"
	stripecard "github.com/stripe/stripe-go/v72/card"
	"github.com/stripe/stripe-go/v72/customer"
)

// StripeGateway implements Gateway on top of the Stripe customer and
// card APIs. Accounts map to customers, card invalidation maps to
// deleting the card source.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe SDK with the given secret key
// and returns a gateway backed by it.
func NewStripeGateway(apiKey string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{}
}

func (g *StripeGateway) FindAccountByEmail(ctx context.Context, email string) (*Account, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := customer.List(params)
	if iter.Next() {
		c := iter.Customer()
		return &Account{Ref: c.ID, Email: c.Email}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return nil, ErrAccountNotFound
}

func (g *StripeGateway) CreateAccount(ctx context.Context, email, participantID string) (*Account, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.Context = ctx
	params.AddMetadata("participant_id", participantID)
	params.SetIdempotencyKey(uuid.NewString())

	c, err := customer.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &Account{Ref: c.ID, Email: c.Email}, nil
}

func (g *StripeGateway) FindAccount(ctx context.Context, ref string) (*Account, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	c, err := customer.Get(ref, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer %s: %w", ref, err)
	}
	return &Account{Ref: c.ID, Email: c.Email}, nil
}

func (g *StripeGateway) AttachCard(ctx context.Context, account *Account, cardToken string) error {
	params := &stripe.CardParams{
		Customer: stripe.String(account.Ref),
		Token:    stripe.String(cardToken),
	}
	params.Context = ctx

	if _, err := stripecard.New(params); err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.Type == stripe.ErrorTypeCard {
			return &DeclinedError{Message: stripeErr.Msg}
		}
		return fmt.Errorf("failed to attach card: %w", err)
	}
	return nil
}

func (g *StripeGateway) ListCards(ctx context.Context, account *Account) ([]Card, error) {
	params := &stripe.CardListParams{Customer: stripe.String(account.Ref)}
	params.Context = ctx

	var cards []Card
	now := time.Now()
	iter := stripecard.List(params)
	for iter.Next() {
		// Stripe lists sources newest first and carries no creation
		// timestamp on cards; synthesize descending times to keep that
		// ordering.
		created := now.Add(-time.Duration(len(cards)) * time.Second)
		cards = append(cards, cardFromStripe(iter.Card(), account.Ref, created))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cards for %s: %w", account.Ref, err)
	}
	return cards, nil
}

// cardFromStripe maps a Stripe card onto the gateway card type. Expiry
// parts become strings so absence stays representable as "".
func cardFromStripe(c *stripe.Card, accountRef string, created time.Time) Card {
	return Card{
		ID:         c.ID,
		AccountRef: accountRef,
		Valid:      !c.Deleted,
		LastFour:   c.Last4,
		ExpMonth:   strconv.FormatUint(uint64(c.ExpMonth), 10),
		ExpYear:    strconv.FormatUint(uint64(c.ExpYear), 10),
		Created:    created,
	}
}

func (g *StripeGateway) SaveCard(ctx context.Context, card *Card) error {
	// Stripe has no validity flag on cards; the only state this subsystem
	// writes back is invalidation, which maps to deleting the source.
	if card.Valid {
		return nil
	}

	params := &stripe.CardParams{Customer: stripe.String(card.AccountRef)}
	params.Context = ctx

	if _, err := stripecard.Del(card.ID, params); err != nil {
		return fmt.Errorf("failed to invalidate card %s: %w", card.ID, err)
	}
	return nil
}
