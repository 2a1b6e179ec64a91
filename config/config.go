package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	for _, path := range []string{"./config", "../config", "."} {
		viper.AddConfigPath(path)
	}

	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("jwt.expire_hours", 168)
	viper.SetDefault("storage.videos_dir", "uploads/videos")
	viper.SetDefault("storage.images_dir", "uploads/images")
	viper.SetDefault("storage.serve_local", true)
	viper.SetDefault("upload.max_video_size_mb", 500)
	viper.SetDefault("upload.max_image_size_mb", 5)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("using config file: %s", viper.ConfigFileUsed())
	}

	ConfigInfo.Server.Addr = viper.GetString("server.addr")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")

	ConfigInfo.JWT.Secret = viper.GetString("jwt.secret")
	ConfigInfo.JWT.ExpireHours = viper.GetInt("jwt.expire_hours")

	ConfigInfo.Storage.VideosDir = viper.GetString("storage.videos_dir")
	ConfigInfo.Storage.ImagesDir = viper.GetString("storage.images_dir")
	ConfigInfo.Storage.ServeLocal = viper.GetBool("storage.serve_local")

	ConfigInfo.Upload.MaxVideoSizeMB = viper.GetInt64("upload.max_video_size_mb")
	ConfigInfo.Upload.MaxImageSizeMB = viper.GetInt64("upload.max_image_size_mb")

	logrus.Infof("config loaded - mysql: %s@%s/%s, redis: %s, serve_local: %v",
		ConfigInfo.Mysql.Username, ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database,
		ConfigInfo.Redis.Addr, ConfigInfo.Storage.ServeLocal)
}
