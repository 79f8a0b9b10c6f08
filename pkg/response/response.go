package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes a flat JSON body: message and request_id next to fields.
func Success(ctx *gin.Context, status int, message string, fields gin.H) {
	if status == 0 {
		status = http.StatusOK
	}
	body := gin.H{}
	for k, v := range fields {
		body[k] = v
	}
	if message != "" {
		body["message"] = message
	}
	body["request_id"] = ctx.GetString("request_id")
	ctx.JSON(status, body)
}

// Error writes an error body and aborts the handler chain. details is only
// included when non-nil and must never carry internal error text.
func Error(ctx *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	body := gin.H{
		"message":    message,
		"request_id": ctx.GetString("request_id"),
	}
	if details != nil {
		body["error"] = details
	}
	ctx.AbortWithStatusJSON(status, body)
}
