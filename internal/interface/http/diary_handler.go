package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/internal/application"
	"github.com/oksasatya/go-diary-api/pkg/response"
)

type DiaryHandler struct {
	Svc    *application.DiaryService
	Logger *logrus.Logger
}

func NewDiaryHandler(svc *application.DiaryService, logger *logrus.Logger) *DiaryHandler {
	return &DiaryHandler{Svc: svc, Logger: logger}
}

// List GET /api/diary
func (h *DiaryHandler) List(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	entries, err := h.Svc.List(c.Request.Context(), uid)
	if err != nil {
		writeError(c, h.Logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"entries": entries})
}

// Search GET /api/diary/search?q=
func (h *DiaryHandler) Search(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	entries, err := h.Svc.Search(c.Request.Context(), uid, c.Query("q"))
	if err != nil {
		writeError(c, h.Logger, err, "Diary search failed")
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"entries": entries})
}

// Get GET /api/diary/:id
func (h *DiaryHandler) Get(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	e, err := h.Svc.Get(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"entry": e})
}

// Create POST /api/diary
func (h *DiaryHandler) Create(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req application.EntryInput
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), uid, req)
	if err != nil {
		writeError(c, h.Logger, err, "")
		return
	}
	response.Success(c, http.StatusCreated, "Entry created successfully", gin.H{"entry": e})
}

// Update PUT /api/diary/:id
func (h *DiaryHandler) Update(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req application.EntryInput
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), req)
	if err != nil {
		writeError(c, h.Logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, "Entry updated successfully", gin.H{"entry": e})
}

// Delete DELETE /api/diary/:id
func (h *DiaryHandler) Delete(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		writeError(c, h.Logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, "Entry deleted successfully", nil)
}
