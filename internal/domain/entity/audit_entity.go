package entity

import "time"

// Audit is embedded by every backend resource.
type Audit struct {
	CreatedByID *int64     `json:"createdById,omitempty"`
	UpdatedByID *int64     `json:"updatedById,omitempty"`
	DeletedByID *int64     `json:"deletedById,omitempty"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
