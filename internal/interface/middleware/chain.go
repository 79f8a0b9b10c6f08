package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-diary-api/pkg/response"
)

// Interceptor inspects a request before the route handler runs. It returns the
// context to carry forward, or an error to stop the chain.
type Interceptor func(ctx context.Context, r *http.Request) (context.Context, error)

// Rejection is an interceptor error with the status and message sent to the client.
type Rejection struct {
	Status  int
	Message string
	Err     error
}

func (r *Rejection) Error() string {
	if r.Err != nil {
		return r.Message + ": " + r.Err.Error()
	}
	return r.Message
}

func (r *Rejection) Unwrap() error { return r.Err }

// Chain runs interceptors in order. The first error aborts the request; later
// interceptors and the handler never run.
func Chain(interceptors ...Interceptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		for _, ic := range interceptors {
			next, err := ic(ctx, c.Request.WithContext(ctx))
			if err != nil {
				reject(c, err)
				return
			}
			if next != nil {
				ctx = next
			}
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func reject(c *gin.Context, err error) {
	var rej *Rejection
	if errors.As(err, &rej) {
		response.Error(c, rej.Status, rej.Message, nil)
		return
	}
	response.Error(c, http.StatusInternalServerError, "Server error", nil)
}
