package models

import (
	"time"
)

// Song is the deduplicated catalog entry. The (title, artist) pair is the
// identity of a song, enforced by the composite unique index.
type Song struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:100;not null;uniqueIndex:idx_songs_title_artist" json:"title"`
	Artist       string    `gorm:"size:100;not null;uniqueIndex:idx_songs_title_artist" json:"artist"`
	ExternalLink string    `gorm:"size:255" json:"external_link"` // optional, first write wins
	CreatedAt    time.Time `json:"created_at"`
}
