package routes

import (
	"github.com/gin-gonic/gin"

	"go-tweetlab/analysis"
	"go-tweetlab/handlers"
)

// Dependencies are the collaborators the handlers are built from.
type Dependencies struct {
	Pipeline handlers.TextProcessor
	Bluesky  handlers.FeedSource
	Labeler  *analysis.SourceLabeler
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()
	r.Use(handlers.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Tweetlab!",
		})
	})

	// api routes
	api := r.Group("/api/tweetlab")
	{
		api.POST("/process", func(c *gin.Context) {
			handlers.ProcessText(c, deps.Pipeline)
		})
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeText(c, deps.Labeler)
		})
		api.GET("/bluesky/:actor", func(c *gin.Context) {
			handlers.FetchBlueskyHandler(c, deps.Bluesky, deps.Pipeline, deps.Labeler)
		})
	}

	return r
}
