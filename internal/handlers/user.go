package handlers

import (
	"net/http"
	"tund/internal/db"
	"tund/internal/store"
	"tund/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	reviews *store.ReviewStore
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		reviews: store.NewReviewStore(db.DB),
	}
}

// Home - GET /
func (h *UserHandler) Home(c *gin.Context) {
	if currentUser(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// Dashboard - GET /dashboard
func (h *UserHandler) Dashboard(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	stats, err := h.reviews.Statistics(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load your statistics")
		return
	}

	recent, err := h.reviews.ListByAuthor(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load your activity")
		return
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}

	Render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":           "Dashboard - TUN'D",
		"User":            user,
		"TotalReviews":    stats.TotalReviews,
		"DistinctSongs":   stats.DistinctSongs,
		"DistinctArtists": stats.DistinctArtists,
		"DaysSince":       utils.DaysSinceJoined(user.CreatedAt),
		"Recent":          recent,
	})
}
