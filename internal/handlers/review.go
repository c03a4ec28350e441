package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"
	"tund/internal/db"
	"tund/internal/models"
	"tund/internal/store"
	"tund/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	catalog *store.Catalog
	reviews *store.ReviewStore
}

func NewReviewHandler() *ReviewHandler {
	return &ReviewHandler{
		catalog: store.NewCatalog(db.DB),
		reviews: store.NewReviewStore(db.DB),
	}
}

// songReview carries a review plus its comment rendered as sanitized HTML.
type songReview struct {
	models.Review
	CommentHTML template.HTML
}

// Show - GET /review/:id
func (h *ReviewHandler) Show(c *gin.Context) {
	songID := uint(utils.StringToInt(c.Param("id")))

	song, err := h.catalog.Get(songID)
	if errors.Is(err, store.ErrSongNotFound) {
		RenderError(c, http.StatusNotFound, "That song is not in the catalog")
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the song")
		return
	}

	all, err := h.reviews.ListForSong(songID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load reviews")
		return
	}
	rendered := make([]songReview, 0, len(all))
	for _, r := range all {
		rendered = append(rendered, songReview{Review: r, CommentHTML: utils.RenderMarkdown(r.Comment)})
	}

	// Prefill the form with the caller's existing review, if any
	var own *models.Review
	if user := currentUser(c); user != nil {
		if existing, err := h.reviews.ForAuthorAndSong(user.ID, songID); err == nil {
			own = existing
		}
	}

	Render(c, http.StatusOK, "review/form.html", gin.H{
		"Title":     song.Title + " - TUN'D",
		"Song":      song,
		"Reviews":   rendered,
		"OwnReview": own,
	})
}

// Create - POST /review/:id
// A second review for the same song by the same user updates the first one.
func (h *ReviewHandler) Create(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	songID := uint(utils.StringToInt(c.Param("id")))
	rating := utils.StringToInt(c.PostForm("rating"))
	comment := strings.TrimSpace(c.PostForm("comment"))

	_, outcome, err := h.reviews.Upsert(user.ID, songID, rating, comment)
	if errors.Is(err, store.ErrInvalidRating) {
		song, gerr := h.catalog.Get(songID)
		if gerr != nil {
			RenderError(c, http.StatusNotFound, "That song is not in the catalog")
			return
		}
		Render(c, http.StatusBadRequest, "review/form.html", gin.H{
			"Title": song.Title + " - TUN'D",
			"Song":  song,
			"Error": "Please pick a rating between 1 and 5 stars",
		})
		return
	}
	if errors.Is(err, store.ErrSongNotFound) {
		RenderError(c, http.StatusNotFound, "That song is not in the catalog")
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save your review, please try again")
		return
	}

	if outcome == store.ReviewUpdated {
		setFlash(c, "Review updated")
	} else {
		setFlash(c, "Review added")
	}
	c.Redirect(http.StatusFound, "/my-reviews")
}

// MyReviews - GET /my-reviews
func (h *ReviewHandler) MyReviews(c *gin.Context) {
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

	Render(c, http.StatusOK, "review/list.html", gin.H{
		"Title":   "My Reviews - TUN'D",
		"Reviews": reviews,
		"Success": takeFlash(c),
	})
}

// TopRated - GET /top-rated
// The chart aggregates over the whole review table, so it is served from the
// page cache for a minute.
func (h *ReviewHandler) TopRated(c *gin.Context) {
	const cacheKey = "chart:top"

	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if ratings, ok := cached.([]store.SongRating); ok {
			Render(c, http.StatusOK, "review/top.html", gin.H{
				"Title":   "Top Rated - TUN'D",
				"Ratings": ratings,
			})
			return
		}
	}

	ratings, err := h.reviews.TopRated(20)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load the chart")
		return
	}
	utils.GetCache().Set(cacheKey, ratings, 1*time.Minute)

	Render(c, http.StatusOK, "review/top.html", gin.H{
		"Title":   "Top Rated - TUN'D",
		"Ratings": ratings,
	})
}
