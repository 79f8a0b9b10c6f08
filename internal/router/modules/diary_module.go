package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-diary-api/internal/interface/http"
)

type DiaryModule struct {
	Handler *handlers.DiaryHandler
	Authn   gin.HandlerFunc
}

func NewDiaryModule(h *handlers.DiaryHandler, authn gin.HandlerFunc) *DiaryModule {
	return &DiaryModule{Handler: h, Authn: authn}
}

func (m *DiaryModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/diary", m.Authn)
	g.GET("", m.Handler.List)
	g.GET("/search", m.Handler.Search)
	g.GET("/:id", m.Handler.Get)
	g.POST("", m.Handler.Create)
	g.PUT("/:id", m.Handler.Update)
	g.DELETE("/:id", m.Handler.Delete)
}
