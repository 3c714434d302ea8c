/*
Package billing tracks and mutates the billing-association state of a
participant: whether a gateway account is linked, whether it holds a
valid card, and the outcome of the most recent billing attempt.

The service composes three mutation paths and one read path:

  - Resolve finds or creates the participant's gateway account by a
    deterministic identity email and persists the reference locally.
  - Associate attaches a tokenized card to the resolved account and
    records the outcome ("" for success, the gateway diagnostic for a
    declined card).
  - Clear invalidates every valid card on the account and resets both
    local billing fields to NULL.
  - CardView projects the account's most recent card into id/last4/expiry
    display fields.

Usage:

	svc := billing.NewService(repo, gw, cache, billing.Config{}, nil)

	// Attach a card, creating the gateway account on first use.
	outcome, err := svc.Associate(ctx, participantID, accountRef, cardToken)

	// Tear billing back down.
	err = svc.Clear(ctx, participantID, *accountRef)

	// Render the current card.
	summary, err := svc.CardView(ctx, accountRef)

Error Handling:

A declined card is not an error: Associate completes normally, persists
the diagnostic and returns it. Expected absences (no account for the
identity email, no cards on an account) take alternate paths. Transport
and auth failures, and account references that fail to resolve,
propagate unwrapped in meaning; no local state is written for the
failing step.

Consistency:

Each operation is a synchronous, ordered sequence of gateway calls
followed by at most one local write. A failed card save never erases the
account reference, and Clear only nulls the local fields after every
card invalidation has been attempted. Writes are unconditional; callers
needing stronger guarantees than last-writer-wins must serialize access
per participant themselves.
*/
package billing
