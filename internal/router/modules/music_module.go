package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-diary-api/internal/interface/http"
)

type MusicModule struct {
	Handler *handlers.MusicHandler
	Authn   gin.HandlerFunc
}

func NewMusicModule(h *handlers.MusicHandler, authn gin.HandlerFunc) *MusicModule {
	return &MusicModule{Handler: h, Authn: authn}
}

func (m *MusicModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/music", m.Authn)
	g.GET("/search", m.Handler.Search)
	g.GET("/track/:id", m.Handler.Track)
}
