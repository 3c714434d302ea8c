package models

// BillingStateKind discriminates the billing states a participant can be in.
type BillingStateKind int

const (
	// StateUnbilled means the participant has never been linked to a
	// gateway account.
	StateUnbilled BillingStateKind = iota
	// StateLinkedGood means the last card association succeeded.
	StateLinkedGood
	// StateLinkedError means the last card association failed; the
	// diagnostic message is retained alongside the account reference.
	StateLinkedError
)

// BillingState is a tagged view over the participant's billing columns.
// A diagnostic message cannot exist without an account reference, which
// makes the retention invariant structural rather than conventional.
type BillingState struct {
	kind       BillingStateKind
	accountRef string
	message    string
}

func Unbilled() BillingState {
	return BillingState{kind: StateUnbilled}
}

func LinkedGood(accountRef string) BillingState {
	return BillingState{kind: StateLinkedGood, accountRef: accountRef}
}

func LinkedError(accountRef, message string) BillingState {
	return BillingState{kind: StateLinkedError, accountRef: accountRef, message: message}
}

func (s BillingState) Kind() BillingStateKind { return s.kind }

// AccountRef returns the gateway account reference and whether one exists.
func (s BillingState) AccountRef() (string, bool) {
	if s.kind == StateUnbilled {
		return "", false
	}
	return s.accountRef, true
}

// Message returns the diagnostic from the last failed association, or ""
// for any other state.
func (s BillingState) Message() string {
	if s.kind != StateLinkedError {
		return ""
	}
	return s.message
}
