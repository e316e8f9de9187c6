package api

import (
	"net/http"

	"github.com/Data-collector-ADIA/Front-end/internal/api/static"
	"github.com/Data-collector-ADIA/Front-end/internal/api/task"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all routes
func SetupRouter(r *gin.Engine, tasks *task.Handler, assets *static.Handler) {
	// Match paths exactly. Dashboard URLs are fixed and the API is
	// consumed by scripts, so redirecting near misses helps nobody.
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	// CORS middleware
	r.Use(CORSMiddleware())

	// Dashboard
	r.GET("/", assets.Index)
	r.GET("/index.html", assets.Index)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Task API
	r.GET("/tasks", tasks.ListTasks)
	r.POST("/tasks/start", tasks.StartTask)
	r.GET("/tasks/:task_id", tasks.GetTask)
	r.GET("/tasks/:task_id/history", tasks.TaskHistory)
	r.GET("/tasks/:task_id/status", tasks.TaskStatus)

	// Unmatched GETs may still name a dashboard asset. Everything else
	// is a plain 404.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && assets.TryServe(c) {
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
}

// CORSMiddleware provides CORS support
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
