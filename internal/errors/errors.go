package errors

// DomainError is a coded error surfaced to callers of the billing
// subsystem. Code is stable; Message is human-readable.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
