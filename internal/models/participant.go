package models

import "time"

// Participant is the subset of the platform's participant entity owned
// by the billing subsystem. Both billing columns are nullable:
//
//	BillingAccountRef  NULL - never billed.
//	                   <ref> - linked to a gateway account.
//	LastBillResult     NULL - never attempted a card association.
//	                   '' - last attempt succeeded, good standing.
//	                   <message> - last attempt failed with this diagnostic.
type Participant struct {
	ID                string  `gorm:"primarykey"`
	Username          string  `gorm:"uniqueIndex;not null"`
	BillingAccountRef *string `gorm:"default:null"`
	LastBillResult    *string `gorm:"default:null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BillingState decodes the nullable billing columns into a tagged state.
func (p *Participant) BillingState() BillingState {
	if p.BillingAccountRef == nil {
		return Unbilled()
	}
	if p.LastBillResult == nil || *p.LastBillResult == "" {
		return LinkedGood(*p.BillingAccountRef)
	}
	return LinkedError(*p.BillingAccountRef, *p.LastBillResult)
}
