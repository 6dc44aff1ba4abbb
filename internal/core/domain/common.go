package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Clock returns the current time. Entities take one so tests can pin timestamps.
type Clock func() time.Time

func newAuditFields(now time.Time) AuditFields {
	return AuditFields{CreatedAt: now, LastUpdatedAt: now}
}

func (a *AuditFields) touch(now time.Time) {
	a.LastUpdatedAt = now
}
