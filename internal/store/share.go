package store

import (
	"errors"
	"tund/internal/models"

	"gorm.io/gorm"
)

// ShareOutcome distinguishes a fresh share from an idempotent repeat.
type ShareOutcome int

const (
	ShareSent ShareOutcome = iota
	ShareDuplicate
)

// BatchResult summarizes a best-effort multi-share.
type BatchResult struct {
	Sent       int
	Duplicates int
	Skipped    int // ids that were missing or not owned by the caller
}

type ShareLedger struct {
	db *gorm.DB
}

func NewShareLedger(db *gorm.DB) *ShareLedger {
	return &ShareLedger{db: db}
}

// Share grants recipientUsername visibility of a review. The ownership check
// lives here, not only in the request layer: the ledger is the last line of
// defense against sharing someone else's review. Sharing the same review
// with the same recipient twice reports ShareDuplicate and inserts nothing.
func (s *ShareLedger) Share(reviewID, ownerID uint, recipientUsername string) (ShareOutcome, error) {
	outcome := ShareSent
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}
		if review.UserID != ownerID {
			return ErrNotOwner
		}

		var recipient models.User
		if err := tx.Where("username = ?", recipientUsername).First(&recipient).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipientNotFound
			}
			return err
		}

		var existing models.Share
		err := tx.Where("review_id = ? AND recipient_id = ?", reviewID, recipient.ID).First(&existing).Error
		if err == nil {
			outcome = ShareDuplicate
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&models.Share{ReviewID: reviewID, RecipientID: recipient.ID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ShareDuplicate, nil
	}
	if err != nil {
		return outcome, err
	}
	return outcome, nil
}

// ShareMany applies Share once per id. One bad id (missing, or not the
// caller's review) does not abort the batch; an unknown recipient fails all
// of it since every share would fail the same way.
func (s *ShareLedger) ShareMany(reviewIDs []uint, ownerID uint, recipientUsername string) (BatchResult, error) {
	var res BatchResult
	for _, id := range reviewIDs {
		outcome, err := s.Share(id, ownerID, recipientUsername)
		switch {
		case errors.Is(err, ErrRecipientNotFound):
			return res, err
		case err != nil:
			res.Skipped++
		case outcome == ShareDuplicate:
			res.Duplicates++
		default:
			res.Sent++
		}
	}
	return res, nil
}

// SharedWith returns every share addressed to the recipient, newest first,
// joined with the review, its song and the sender.
func (s *ShareLedger) SharedWith(recipientID uint) ([]models.Share, error) {
	var shares []models.Share
	err := s.db.
		Preload("Review").
		Preload("Review.Song").
		Preload("Review.User").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// CountForRecipient backs the nav badge.
func (s *ShareLedger) CountForRecipient(recipientID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Share{}).Where("recipient_id = ?", recipientID).Count(&count).Error
	return count, err
}
