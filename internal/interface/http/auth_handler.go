package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-diary-api/internal/application"
	"github.com/oksasatya/go-diary-api/internal/interface/middleware"
	"github.com/oksasatya/go-diary-api/pkg/response"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req application.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err, "")
		return
	}
	response.Success(c, http.StatusCreated, "User created successfully", gin.H{
		"token": res.Token,
		"user":  res.User,
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req application.LoginInput
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": res.Token,
		"user":  res.User,
	})
}

// UpdateTheme PATCH /api/auth/theme
func (h *AuthHandler) UpdateTheme(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}
	var req themeRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.Svc.UpdateTheme(c.Request.Context(), uid, req.Theme)
	if err != nil {
		writeError(c, h.Logger, err, "")
		return
	}
	response.Success(c, http.StatusOK, "Theme updated successfully", gin.H{"user": u.Public()})
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Access token required", nil)
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"user": u})
}
