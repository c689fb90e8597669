package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/postkit/postkit/auth"
	"github.com/postkit/postkit/config"
	"github.com/postkit/postkit/controllers"
	"github.com/postkit/postkit/repository"
	"github.com/postkit/postkit/storage"
	"github.com/postkit/postkit/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if utils.Logger != nil {
		r.Use(ginzap.Ginzap(utils.Logger, time.RFC3339, true))
		r.Use(ginzap.RecoveryWithZap(utils.Logger, true))
	} else {
		r.Use(gin.Recovery())
	}

	// Reflect the request origin so the admin front end can run anywhere
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", cfg.UploadDir)
	r.Static("/static", "./static")

	r.GET("/", func(ctx *gin.Context) {
		ctx.File("./static/index.html")
	})
	r.GET("/admin", func(ctx *gin.Context) {
		ctx.File("./static/admin.html")
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	postController := controllers.NewPostController(
		repository.NewPostRepository(db),
		storage.NewImageStore(cfg.UploadDir),
		auth.NewGate(cfg.AdminPassword),
		cfg.CleanupRejectedUploads,
	)

	api := r.Group("/api")
	api.GET("/posts", postController.ListPosts)
	api.POST("/posts", postController.CreatePost)
	api.PUT("/posts/:id", postController.UpdatePost)
	api.DELETE("/posts/:id", postController.DeletePost)

	r.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, "api route not found")
			return
		}
		if strings.HasPrefix(path, "/uploads/") || strings.HasPrefix(path, "/static/") {
			ctx.Status(http.StatusNotFound)
			return
		}
		// Anything else falls back to the front-end entry page
		ctx.Status(http.StatusOK)
		ctx.File("./static/index.html")
	})

	return r
}
