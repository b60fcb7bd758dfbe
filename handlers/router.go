package handlers

import (
	"net/http"

	"cms-api/logger"
	"cms-api/metrics"
	"cms-api/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Article *ArticleHandler
	Author  *AuthorHandler
	Tag     *TagHandler
}

// NewRouter mounts the API routes behind the shared middleware chain.
func NewRouter(log *logger.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		metrics.Handler(),
		middleware.Recovery(log),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
			ExposeHeaders:   []string{middleware.HeaderRequestID},
		}),
	)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", metrics.Exposer())

	api := router.Group("/api")
	{
		api.POST("/article/create", h.Article.Create)
		api.GET("/articles/fetch", h.Article.Fetch)
		api.GET("/article/fetch/:id", h.Article.FetchByID)
		api.PUT("/article/update/:id", h.Article.Update)
		api.DELETE("/article/delete/:id", h.Article.Delete)

		api.POST("/author/create", h.Author.Create)
		api.GET("/author/fetch", h.Author.Fetch)
		api.GET("/author/fetch/:id", h.Author.FetchByID)
		api.PUT("/author/update/:id", h.Author.Update)
		api.DELETE("/author/delete/:id", h.Author.Delete)

		api.POST("/tag/create", h.Tag.Create)
		api.GET("/tag/fetch", h.Tag.Fetch)
		api.GET("/tag/fetch/:id", h.Tag.FetchByID)
		api.PUT("/tag/update/:id", h.Tag.Update)
		api.DELETE("/tag/delete/:id", h.Tag.Delete)
	}

	return router
}
