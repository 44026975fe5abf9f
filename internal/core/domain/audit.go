package domain

import "time"

// AuditFields holds common audit metadata embedded in persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     int64     `json:"createdBy"` // personnel ID of the creator
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy int64     `json:"lastUpdatedBy"`
}

// TouchCreate initializes the audit fields for a newly created entity.
func (a *AuditFields) TouchCreate(userID int64, now time.Time) {
	a.CreatedAt = now
	a.CreatedBy = userID
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// TouchUpdate refreshes the update audit fields.
func (a *AuditFields) TouchUpdate(userID int64, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}
