package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"tippool/internal/gateway"
	"tippool/internal/models"
	"tippool/internal/repositories"
	"tippool/internal/validation"
)

type service struct {
	repo    repositories.ParticipantRepository
	gateway gateway.Gateway
	cache   ProjectionCache
	config  Config
	metrics MetricsCollector
}

// NewService creates a new billing service. The cache is optional;
// metrics default to a no-op collector.
func NewService(
	repo repositories.ParticipantRepository,
	gw gateway.Gateway,
	cache ProjectionCache,
	config Config,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if gw == nil {
		panic("gateway is required")
	}

	if config.EmailDomain == "" {
		config.EmailDomain = DefaultEmailDomain
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		gateway: gw,
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

func (s *service) Resolve(ctx context.Context, participantID string, accountRef *string) (*gateway.Account, error) {
	if err := validation.ValidateParticipantID(participantID); err != nil {
		return nil, err
	}
	if err := validation.ValidateOptionalAccountRef(accountRef); err != nil {
		return nil, err
	}
	return s.resolveAccount(ctx, participantID, accountRef)
}

// resolveAccount finds or creates the gateway account for a participant.
// Inputs are validated by the exported callers.
func (s *service) resolveAccount(ctx context.Context, participantID string, accountRef *string) (*gateway.Account, error) {
	if accountRef != nil {
		// A reference we already persisted must resolve; anything else
		// means external data corruption and propagates as-is.
		account, err := s.gateway.FindAccount(ctx, *accountRef)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve billing account %s: %w", *accountRef, err)
		}
		return account, nil
	}

	email := s.identityEmail(participantID)
	account, err := s.gateway.FindAccountByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gateway.ErrAccountNotFound) {
			return nil, fmt.Errorf("failed to look up billing account for %s: %w", participantID, err)
		}
		account, err = s.gateway.CreateAccount(ctx, email, participantID)
		if err != nil {
			return nil, fmt.Errorf("failed to create billing account for %s: %w", participantID, err)
		}
	}

	// The caller held no reference, so whichever account the identity
	// lookup produced (found or freshly created) is recorded before any
	// card work. A later failure cannot leave the record with a bill
	// result but no account link.
	if err := s.repo.SetBillingAccountRef(ctx, participantID, account.Ref); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *service) Associate(ctx context.Context, participantID string, accountRef *string, cardToken string) (string, error) {
	started := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("associate", time.Since(started))
	}()

	if err := validation.ValidateParticipantID(participantID); err != nil {
		return "", err
	}
	if err := validation.ValidateOptionalAccountRef(accountRef); err != nil {
		return "", err
	}
	if err := validation.ValidateCardToken(cardToken); err != nil {
		return "", err
	}

	account, err := s.resolveAccount(ctx, participantID, accountRef)
	if err != nil {
		s.metrics.RecordError("associate", "resolve")
		return "", err
	}

	outcome := ""
	if err := s.gateway.AttachCard(ctx, account, cardToken); err != nil {
		var declined *gateway.DeclinedError
		if !errors.As(err, &declined) {
			s.metrics.RecordError("associate", "gateway")
			return "", fmt.Errorf("failed to attach card: %w", err)
		}
		// A declined card is an outcome, not a fault. The account
		// reference stays put so the bad card can still be fetched to
		// prepopulate the payment form.
		outcome = declined.Message
	}

	if err := s.repo.SetLastBillResult(ctx, participantID, outcome); err != nil {
		return "", err
	}
	s.invalidateProjection(ctx, account.Ref)

	if outcome == "" {
		s.metrics.RecordOperationResult("associate", "success")
	} else {
		s.metrics.RecordOperationResult("associate", "declined")
	}
	return outcome, nil
}

func (s *service) Clear(ctx context.Context, participantID, accountRef string) error {
	started := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("clear", time.Since(started))
	}()

	if err := validation.ValidateParticipantID(participantID); err != nil {
		return err
	}
	if err := validation.ValidateAccountRef(accountRef); err != nil {
		return err
	}

	account, err := s.gateway.FindAccount(ctx, accountRef)
	if err != nil {
		s.metrics.RecordError("clear", "resolve")
		return fmt.Errorf("failed to resolve billing account %s: %w", accountRef, err)
	}

	cards, err := s.gateway.ListCards(ctx, account)
	if err != nil {
		return err
	}

	// The gateway cannot delete accounts; invalidating every valid card
	// restricts future charges instead. One write per card, already
	// invalid ones are skipped.
	for _, card := range cards {
		if !card.Valid {
			continue
		}
		card.Valid = false
		if err := s.gateway.SaveCard(ctx, &card); err != nil {
			s.metrics.RecordError("clear", "gateway")
			return fmt.Errorf("failed to invalidate card %s: %w", card.ID, err)
		}
	}

	// The local reset comes strictly after the card loop: a crash above
	// leaves the record still pointing at the partially invalidated
	// account rather than orphaning it.
	if err := s.repo.ClearBilling(ctx, participantID); err != nil {
		return err
	}
	s.invalidateProjection(ctx, accountRef)
	s.metrics.RecordOperationResult("clear", "success")
	return nil
}

func (s *service) CardView(ctx context.Context, accountRef *string) (models.CardSummary, error) {
	if accountRef == nil {
		return models.CardSummary{}, nil
	}
	if err := validation.ValidateAccountRef(*accountRef); err != nil {
		return models.CardSummary{}, err
	}

	if s.cache != nil {
		if summary, err := s.cache.GetCardSummary(ctx, *accountRef); err == nil {
			s.metrics.RecordCacheHit("card_summary")
			return *summary, nil
		}
		s.metrics.RecordCacheMiss("card_summary")
	}

	account, err := s.gateway.FindAccount(ctx, *accountRef)
	if err != nil {
		return models.CardSummary{}, fmt.Errorf("failed to resolve billing account %s: %w", *accountRef, err)
	}

	cards, err := s.gateway.ListCards(ctx, account)
	if err != nil {
		return models.CardSummary{}, err
	}

	summary := buildCardSummary(account, cards)
	if s.cache != nil {
		if err := s.cache.SetCardSummary(ctx, *accountRef, &summary); err != nil {
			log.Printf("failed to cache card summary for %s: %v", *accountRef, err)
		}
	}
	return summary, nil
}

// buildCardSummary projects the most recently created card into display
// fields. The id comes from the account and survives a cardless account;
// last4 and expiry fall back to "".
func buildCardSummary(account *gateway.Account, cards []gateway.Card) models.CardSummary {
	summary := models.CardSummary{ID: account.Ref}
	if len(cards) == 0 {
		return summary
	}

	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Created.After(cards[j].Created)
	})
	latest := cards[0]

	if latest.LastFour != "" {
		summary.Last4 = maskPrefix + latest.LastFour
	}
	// Never render a partial expiry like "/2025".
	if latest.ExpMonth != "" && latest.ExpYear != "" {
		summary.Expiry = latest.ExpMonth + "/" + latest.ExpYear
	}
	return summary
}

func (s *service) identityEmail(participantID string) string {
	return fmt.Sprintf("%s@%s", participantID, s.config.EmailDomain)
}

func (s *service) invalidateProjection(ctx context.Context, accountRef string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAccount(ctx, accountRef); err != nil {
		log.Printf("failed to invalidate card summary for %s: %v", accountRef, err)
	}
}
