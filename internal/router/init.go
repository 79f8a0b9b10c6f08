package router

import (
	"github.com/oksasatya/go-diary-api/internal/container"
	handlers "github.com/oksasatya/go-diary-api/internal/interface/http"
	"github.com/oksasatya/go-diary-api/internal/interface/middleware"
	"github.com/oksasatya/go-diary-api/internal/router/modules"
)

// InitModules builds the handlers from c and registers every module.
func InitModules(r *Registry, c *container.Container) {
	authn := middleware.Chain(middleware.Authenticate(c.JWT, c.Auth))

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(c.Auth, c.Logger), authn))
	r.Add(modules.NewDiaryModule(handlers.NewDiaryHandler(c.Diary, c.Logger), authn))
	r.Add(modules.NewMusicModule(handlers.NewMusicHandler(c.Music, c.Logger), authn))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
