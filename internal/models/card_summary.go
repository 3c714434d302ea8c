package models

// CardSummary is the read projection of a gateway account's most recent
// card, intended for direct embedding into a display surface.
//
// ID is the account's own reference and survives a cardless account;
// Last4 and Expiry fall back to "" when no card data is available.
type CardSummary struct {
	ID     string `json:"id"`
	Last4  string `json:"last4"`
	Expiry string `json:"expiry"`
}
