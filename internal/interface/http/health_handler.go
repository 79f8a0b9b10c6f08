package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-diary-api/pkg/response"
)

// Health GET /api/health
func Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "Diary App API is running!", nil)
}
