// Package router wires every endpoint: public browsing routes carry optional
// auth so the viewer's reaction state can be resolved, mutating routes
// require a valid token, and everything that touches the database sits
// behind the availability check.
package router

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	redisv9 "github.com/redis/go-redis/v9"

	"streamzone/cmd/api/handlers/auth"
	"streamzone/cmd/api/handlers/comment"
	"streamzone/cmd/api/handlers/user"
	"streamzone/cmd/api/handlers/video"
	"streamzone/pkg/database"
	"streamzone/pkg/jwt"
)

type Deps struct {
	Auth  *jwt.Auth
	DB    *database.Database
	Redis *redisv9.Client

	AuthHandler    *auth.Handler
	UserHandler    *user.Handler
	VideoHandler   *video.Handler
	CommentHandler *comment.Handler
}

func Register(h *server.Hertz, deps *Deps) {
	h.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Range"},
		ExposeHeaders: []string{"Content-Length", "Content-Range", "Accept-Ranges"},
		MaxAge:        12 * time.Hour,
	}))

	h.GET("/", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, utils.H{
			"name":    "streamzone",
			"message": "video sharing API",
		})
	})
	h.GET("/health", deps.health)

	h.StaticFS("/uploads", &app.FS{
		Root:        "./uploads",
		PathRewrite: app.NewPathSlashesStripper(1),
	})

	api := h.Group("/api", RequireDatabase(deps.DB))

	authGroup := api.Group("/auth")
	authGroup.POST("/register", deps.AuthHandler.Register)
	authGroup.POST("/login", deps.AuthHandler.Login)

	authed := authGroup.Group("", deps.Auth.MiddlewareFunc())
	authed.GET("/me", deps.AuthHandler.Me)
	authed.PUT("/profile", deps.AuthHandler.UpdateProfile)
	authed.POST("/avatar", deps.AuthHandler.UpdateAvatar)

	users := api.Group("/users", deps.Auth.MiddlewareFunc())
	users.POST("/:id/subscribe", deps.UserHandler.Subscribe)
	users.DELETE("/:id/subscribe", deps.UserHandler.Unsubscribe)

	videos := api.Group("/videos")

	browse := videos.Group("", deps.Auth.OptionalMiddlewareFunc())
	browse.GET("", deps.VideoHandler.Feed)
	browse.GET("/:id", deps.VideoHandler.Detail)
	browse.GET("/stream/:id", deps.VideoHandler.Stream)

	protected := videos.Group("", deps.Auth.MiddlewareFunc())
	protected.POST("/upload", deps.VideoHandler.Upload)
	protected.POST("/youtube", deps.VideoHandler.AddLink)
	protected.GET("/user/videos", deps.VideoHandler.MyVideos)
	protected.DELETE("/:id", deps.VideoHandler.Delete)
	protected.POST("/:id/like", deps.VideoHandler.Like)
	protected.POST("/:id/dislike", deps.VideoHandler.Dislike)

	comments := api.Group("/comments")
	comments.GET("/video/:videoId", deps.Auth.OptionalMiddlewareFunc(), deps.CommentHandler.List)

	commentsAuthed := comments.Group("", deps.Auth.MiddlewareFunc())
	commentsAuthed.POST("", deps.CommentHandler.Create)
	commentsAuthed.PUT("/:id", deps.CommentHandler.Update)
	commentsAuthed.DELETE("/:id", deps.CommentHandler.Delete)
	commentsAuthed.POST("/:id/like", deps.CommentHandler.Like)
	commentsAuthed.POST("/:id/dislike", deps.CommentHandler.Dislike)
}

var startedAt = time.Now()

func (d *Deps) health(ctx context.Context, c *app.RequestContext) {
	dbStatus := "ok"
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := d.DB.Ping(pingCtx); err != nil {
		dbStatus = "unavailable"
	}

	redisStatus := "ok"
	if d.Redis == nil {
		redisStatus = "disabled"
	} else if err := d.Redis.Ping(pingCtx).Err(); err != nil {
		redisStatus = "unavailable"
	}

	c.JSON(consts.StatusOK, utils.H{
		"status": "up",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
		"mysql":  dbStatus,
		"redis":  redisStatus,
	})
}
