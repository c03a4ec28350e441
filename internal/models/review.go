package models

import (
	"time"
)

// Review identity is (user, song), not the submission event: a second
// submission for the same pair updates the existing row in place.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1-5
	Comment   string    `gorm:"type:text" json:"comment"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_song" json:"user_id"`
	SongID    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_song" json:"song_id"`
	CreatedAt time.Time `json:"created_at"` // refreshed when the review is updated

	User User `json:"user"`
	Song Song `json:"song"`
}
