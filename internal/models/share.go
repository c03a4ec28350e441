package models

import (
	"time"
)

// Share grants one recipient visibility of one review. Re-sharing the same
// review with the same recipient is a no-op, enforced by the unique index.
type Share struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ReviewID    uint      `gorm:"not null;uniqueIndex:idx_shares_review_recipient" json:"review_id"`
	RecipientID uint      `gorm:"not null;uniqueIndex:idx_shares_review_recipient" json:"recipient_id"`
	CreatedAt   time.Time `json:"created_at"`

	Review    Review `json:"review"`
	Recipient User   `gorm:"foreignKey:RecipientID" json:"recipient"`
}
