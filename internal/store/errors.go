// Package store implements the application's data components over gorm:
// credentials, the song catalog, reviews and the share ledger. Expected
// business conditions (duplicates, bad credentials, ownership violations)
// are returned as the sentinel errors below so handlers can map them to
// user-facing messages; anything else is a real failure.
package store

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSongExists         = errors.New("song already exists")
	ErrSongNotFound       = errors.New("song not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrNotOwner           = errors.New("review belongs to another user")
)
