package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"tund/internal/db"
	"tund/internal/store"
	"tund/internal/utils"

	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	reviews *store.ReviewStore
	shares  *store.ShareLedger
}

func NewShareHandler() *ShareHandler {
	return &ShareHandler{
		reviews: store.NewReviewStore(db.DB),
		shares:  store.NewShareLedger(db.DB),
	}
}

// ShowShare - GET /share
func (h *ShareHandler) ShowShare(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	reviews, err := h.reviews.ListByAuthor(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load your reviews")
		return
	}

	Render(c, http.StatusOK, "share/form.html", gin.H{
		"Title":   "Share Reviews - TUN'D",
		"Reviews": reviews,
	})
}

// Create - POST /share
// Multi-select: every selected review is shared best-effort; one bad id
// does not abort the rest.
func (h *ShareHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	recipient := strings.TrimSpace(c.PostForm("recipient_username"))
	rawIDs := c.PostFormArray("review")

	reviews, err := h.reviews.ListByAuthor(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load your reviews")
		return
	}

	if recipient == "" || len(rawIDs) == 0 {
		Render(c, http.StatusBadRequest, "share/form.html", gin.H{
			"Title":     "Share Reviews - TUN'D",
			"Error":     "Pick at least one review and enter a recipient username",
			"Reviews":   reviews,
			"Recipient": recipient,
		})
		return
	}

	ids := make([]uint, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if id := utils.StringToInt(raw); id > 0 {
			ids = append(ids, uint(id))
		}
	}

	res, err := h.shares.ShareMany(ids, user.ID, recipient)
	if errors.Is(err, store.ErrRecipientNotFound) {
		Render(c, http.StatusNotFound, "share/form.html", gin.H{
			"Title":     "Share Reviews - TUN'D",
			"Error":     fmt.Sprintf("No user named %q", recipient),
			"Reviews":   reviews,
			"Recipient": recipient,
		})
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Sharing is unavailable right now, please try again")
		return
	}

	Render(c, http.StatusOK, "share/form.html", gin.H{
		"Title":   "Share Reviews - TUN'D",
		"Success": batchMessage(res, recipient),
		"Reviews": reviews,
	})
}

// batchMessage summarizes a best-effort batch for the flash line.
func batchMessage(res store.BatchResult, recipient string) string {
	switch {
	case res.Sent > 0 && res.Duplicates == 0 && res.Skipped == 0:
		return "Review shared successfully"
	case res.Sent > 0:
		return fmt.Sprintf("Review shared successfully (%d sent, %d already shared, %d skipped)",
			res.Sent, res.Duplicates, res.Skipped)
	case res.Duplicates > 0:
		return fmt.Sprintf("Already shared with %s", recipient)
	default:
		return "Nothing was shared"
	}
}

// SharedWithMe - GET /shared-reviews
func (h *ShareHandler) SharedWithMe(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	shares, err := h.shares.SharedWith(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load shared reviews")
		return
	}

	Render(c, http.StatusOK, "share/list.html", gin.H{
		"Title":  "Shared Reviews - TUN'D",
		"Shares": shares,
	})
}
