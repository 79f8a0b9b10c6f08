package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-diary-api/internal/interface/http"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Authn   gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, authn gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Authn: authn}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	g.POST("/register", m.Handler.Register)
	g.POST("/login", m.Handler.Login)

	protected := g.Group("")
	protected.Use(m.Authn)
	{
		protected.PATCH("/theme", m.Handler.UpdateTheme)
		protected.GET("/me", m.Handler.Me)
	}
}
