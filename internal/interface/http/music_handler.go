package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/internal/application"
	"github.com/oksasatya/go-diary-api/pkg/response"
)

type MusicHandler struct {
	Svc    *application.MusicService
	Logger *logrus.Logger
}

func NewMusicHandler(svc *application.MusicService, logger *logrus.Logger) *MusicHandler {
	return &MusicHandler{Svc: svc, Logger: logger}
}

// Search GET /api/music/search?q=&limit=
func (h *MusicHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	tracks, err := h.Svc.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		writeError(c, h.Logger, err, "Music search failed")
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"tracks": tracks})
}

// Track GET /api/music/track/:id
func (h *MusicHandler) Track(c *gin.Context) {
	t, err := h.Svc.Track(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err, "Failed to get track details")
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"track": t})
}
