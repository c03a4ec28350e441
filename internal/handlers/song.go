package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"tund/internal/db"
	"tund/internal/models"
	"tund/internal/store"

	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	catalog *store.Catalog
}

func NewSongHandler() *SongHandler {
	return &SongHandler{
		catalog: store.NewCatalog(db.DB),
	}
}

// Search - GET /search?query=
// When nothing matches, the page offers the add-song form prefilled with the
// query so the user can add and review in one flow.
func (h *SongHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))

	var songs []models.Song
	if query != "" {
		var err error
		songs, err = h.catalog.Search(query)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Search is unavailable right now")
			return
		}
	}

	Render(c, http.StatusOK, "song/search.html", gin.H{
		"Title":    "Search Music - TUN'D",
		"Query":    query,
		"Songs":    songs,
		"Searched": query != "",
	})
}

// Create - POST /songs
// The explicit add action is strict: a duplicate (title, artist) pair is
// surfaced as a conflict rather than silently reusing the existing song.
func (h *SongHandler) Create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	artist := strings.TrimSpace(c.PostForm("artist"))
	link := strings.TrimSpace(c.PostForm("external_link"))

	if title == "" || artist == "" {
		Render(c, http.StatusBadRequest, "song/search.html", gin.H{
			"Title":    "Search Music - TUN'D",
			"Error":    "Title and artist are required",
			"Query":    title,
			"Searched": true,
		})
		return
	}

	song, err := h.catalog.AddNew(title, artist, link)
	if errors.Is(err, store.ErrSongExists) {
		Render(c, http.StatusConflict, "song/search.html", gin.H{
			"Title":    "Search Music - TUN'D",
			"Error":    fmt.Sprintf("%q by %s is already in the catalog", title, artist),
			"Query":    title,
			"Searched": true,
		})
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not add the song, please try again")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/review/%d", song.ID))
}
