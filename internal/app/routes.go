package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/roar-media/core/internal/middleware"
	"github.com/roar-media/core/internal/modules/auth"
	"github.com/roar-media/core/internal/modules/content/article"
	"github.com/roar-media/core/internal/modules/content/episode"
	"github.com/roar-media/core/internal/modules/content/issue"
	"github.com/roar-media/core/internal/modules/storage/file"
	pkgredis "github.com/roar-media/core/internal/pkg/redis"
	"github.com/roar-media/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) error {
	r := a.router
	db := a.db

	authMW := middleware.Auth()
	composerMW := middleware.RequireComposer()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	storage, err := file.NewStorage(a.cfg)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	// Root-level endpoints: static uploads for locally stored files.
	root := r.Group("")

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.RateLimit(rc.Raw()))

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)

	articleSvc := article.NewService(db, rc)
	article.NewHandler(articleSvc, storage, a.logger).RegisterRoutes(api, authMW, composerMW)

	episode.NewHandler(episode.NewService(db), storage).RegisterRoutes(api, authMW, composerMW)
	issue.NewHandler(issue.NewService(db), storage).RegisterRoutes(api, authMW, composerMW)

	file.NewHandler(storage, a.cfg.Paths.Uploads).RegisterRoutes(api, root, authMW, composerMW)

	return nil
}
