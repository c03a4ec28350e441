package store

import (
	"testing"
	"tund/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shareFixture(t *testing.T) (*ShareLedger, *models.User, *models.User, *models.Review) {
	t.Helper()
	db := testDB(t)
	alice := mustUser(t, db, "alice")
	bob := mustUser(t, db, "bob")
	song := mustSong(t, db, "Imagine", "John Lennon")

	review, _, err := NewReviewStore(db).Upsert(alice.ID, song.ID, 5, "great")
	require.NoError(t, err)
	return NewShareLedger(db), alice, bob, review
}

func TestShareIsIdempotent(t *testing.T) {
	ledger, alice, bob, review := shareFixture(t)

	outcome, err := ledger.Share(review.ID, alice.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, ShareSent, outcome)

	outcome, err = ledger.Share(review.ID, alice.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, ShareDuplicate, outcome)

	shares, err := ledger.SharedWith(bob.ID)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, review.ID, shares[0].ReviewID)
}

func TestShareRejectsForeignReview(t *testing.T) {
	ledger, _, bob, review := shareFixture(t)

	// bob does not own alice's review
	_, err := ledger.Share(review.ID, bob.ID, "alice")
	assert.ErrorIs(t, err, ErrNotOwner)

	shares, err := ledger.SharedWith(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestShareUnknownRecipient(t *testing.T) {
	ledger, alice, _, review := shareFixture(t)

	_, err := ledger.Share(review.ID, alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestShareUnknownReview(t *testing.T) {
	ledger, alice, _, _ := shareFixture(t)

	_, err := ledger.Share(999, alice.ID, "bob")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestShareManyIsBestEffort(t *testing.T) {
	db := testDB(t)
	ledger := NewShareLedger(db)
	reviews := NewReviewStore(db)
	alice := mustUser(t, db, "alice")
	bob := mustUser(t, db, "bob")
	carol := mustUser(t, db, "carol")

	s1 := mustSong(t, db, "Imagine", "John Lennon")
	s2 := mustSong(t, db, "Hey Jude", "The Beatles")
	s3 := mustSong(t, db, "Yesterday", "The Beatles")

	r1, _, err := reviews.Upsert(alice.ID, s1.ID, 5, "")
	require.NoError(t, err)
	r2, _, err := reviews.Upsert(alice.ID, s2.ID, 4, "")
	require.NoError(t, err)
	foreign, _, err := reviews.Upsert(carol.ID, s3.ID, 3, "")
	require.NoError(t, err)

	// One already shared, one missing, one not owned: the valid ids still land
	_, err = ledger.Share(r1.ID, alice.ID, "bob")
	require.NoError(t, err)

	res, err := ledger.ShareMany([]uint{r1.ID, r2.ID, 999, foreign.ID}, alice.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Duplicates)
	assert.Equal(t, 2, res.Skipped)

	shares, err := ledger.SharedWith(bob.ID)
	require.NoError(t, err)
	assert.Len(t, shares, 2)
}

func TestShareManyUnknownRecipientFailsBatch(t *testing.T) {
	ledger, alice, _, review := shareFixture(t)

	_, err := ledger.ShareMany([]uint{review.ID}, alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestSharedWithJoinsReviewSongAndSender(t *testing.T) {
	ledger, alice, bob, review := shareFixture(t)

	_, err := ledger.Share(review.ID, alice.ID, "bob")
	require.NoError(t, err)

	shares, err := ledger.SharedWith(bob.ID)
	require.NoError(t, err)
	require.Len(t, shares, 1)

	got := shares[0]
	assert.Equal(t, "alice", got.Review.User.Username)
	assert.Equal(t, "Imagine", got.Review.Song.Title)
	assert.Equal(t, 5, got.Review.Rating)
	assert.Equal(t, "great", got.Review.Comment)

	count, err := ledger.CountForRecipient(bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
