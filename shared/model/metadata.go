package model

import (
	"gymhub/shared/timezone"
	"time"
)

// Metadata is the audit and soft-delete block shared by every table.
type Metadata struct {
	Deleted    bool      `db:"deleted"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// NewMetadata stamps a fresh row created by actor.
func NewMetadata(actor string) Metadata {
	now := timezone.Now()

	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}
