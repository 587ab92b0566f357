package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskflow/internal/config"
	"taskflow/internal/handlers"
	"taskflow/internal/middleware"
)

// NewRouter wires the JSON API under /api, Prometheus metrics under
// /metrics, and the front end for every other path.
func NewRouter(h *handlers.Handler, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID(), middleware.Metrics())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		api.GET("/tasks", h.ListTasks)
		api.POST("/tasks", h.CreateTask)
		api.GET("/tasks/:id", h.GetTask)
		api.PUT("/tasks/:id", h.UpdateTask)
		api.DELETE("/tasks/:id", h.DeleteTask)
		api.PATCH("/tasks/toggle/:id", h.ToggleTask)

		api.GET("/categories", h.ListCategories)
		api.POST("/categories", h.CreateCategory)
		api.PUT("/categories/:id", h.UpdateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		api.GET("/stats", h.GetStats)
		api.GET("/reminders/due", h.DueReminders)

		api.GET("/settings/:user_id", h.GetSettings)
		api.PUT("/settings/:user_id", h.UpdateSettings)

		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)
		api.POST("/login", h.Login)
	}

	r.NoRoute(gzip.Gzip(gzip.DefaultCompression), handlers.Frontend(cfg.StaticDir))
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderXRequestID)
	cfg.ExposeHeaders = []string{"Content-Length", middleware.HeaderXRequestID}
	cfg.MaxAge = 12 * time.Hour

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
