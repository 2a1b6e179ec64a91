package main

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"streamzone/cmd/api/handlers/auth"
	"streamzone/cmd/api/handlers/comment"
	"streamzone/cmd/api/handlers/user"
	"streamzone/cmd/api/handlers/video"
	"streamzone/cmd/api/router"
	interdb "streamzone/cmd/interaction/dal/db"
	interredis "streamzone/cmd/interaction/infras/redis"
	userdb "streamzone/cmd/user/dal/db"
	videodb "streamzone/cmd/video/dal/db"
	"streamzone/config"
	"streamzone/pkg/database"
	"streamzone/pkg/jwt"
	"streamzone/pkg/storage"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	config.Init()

	// A failed connect keeps the process alive; data routes answer 503
	// until the database comes back and the service is restarted.
	dbc, err := database.New()
	if err != nil {
		logrus.Errorf("mysql connect failed, data routes disabled: %v", err)
		dbc = database.NewWithDB(nil)
	} else if err := dbc.AutoMigrate(); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	var rdb *redisv9.Client
	if config.ConfigInfo.Redis.Addr != "" {
		rdb = redisv9.NewClient(&redisv9.Options{
			Addr:     config.ConfigInfo.Redis.Addr,
			Password: config.ConfigInfo.Redis.Password,
		})
	} else {
		logrus.Warn("redis.addr not set, comment rate limiting disabled")
	}

	st, err := storage.New(
		config.ConfigInfo.Storage.VideosDir,
		config.ConfigInfo.Storage.ImagesDir,
		config.ConfigInfo.Storage.ServeLocal,
		config.ConfigInfo.Upload.MaxVideoSizeMB,
		config.ConfigInfo.Upload.MaxImageSizeMB,
	)
	if err != nil {
		logrus.Fatalf("storage init failed: %v", err)
	}

	secret := config.ConfigInfo.JWT.Secret
	if secret == "" {
		logrus.Warn("jwt.secret not set, using an insecure development secret")
		secret = "streamzone-dev-secret"
	}
	authMW, err := jwt.New(secret, time.Duration(config.ConfigInfo.JWT.ExpireHours)*time.Hour)
	if err != nil {
		logrus.Fatalf("jwt init failed: %v", err)
	}

	users := userdb.NewUserRepo(dbc)
	subs := userdb.NewSubscriptionRepo(dbc)
	history := userdb.NewWatchHistoryRepo(dbc)
	videos := videodb.NewVideoRepo(dbc)
	comments := interdb.NewCommentRepo(dbc)
	reactions := interdb.NewReactionRepo(dbc)
	guard := interredis.NewGuard(rdb)

	h := server.Default(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithMaxRequestBodySize(int((config.ConfigInfo.Upload.MaxVideoSizeMB+16)<<20)),
	)
	router.Register(h, &router.Deps{
		Auth:           authMW,
		DB:             dbc,
		Redis:          rdb,
		AuthHandler:    auth.New(authMW, users, subs, videos, st),
		UserHandler:    user.New(users, subs),
		VideoHandler:   video.New(videos, users, subs, history, comments, reactions, st),
		CommentHandler: comment.New(comments, reactions, videos, users, guard),
	})

	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		if err := dbc.Close(); err != nil {
			logrus.Errorf("closing mysql failed: %v", err)
		}
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				logrus.Errorf("closing redis failed: %v", err)
			}
		}
	})

	logrus.Infof("listening on %s", config.ConfigInfo.Server.Addr)
	h.Spin()
}
