package config

type config struct {
	Server  server  `yaml:"server" mapstructure:"server"`
	Mysql   mysql   `yaml:"mysql" mapstructure:"mysql"`
	Redis   redis   `yaml:"redis" mapstructure:"redis"`
	JWT     jwtConf `yaml:"jwt" mapstructure:"jwt"`
	Storage storage `yaml:"storage" mapstructure:"storage"`
	Upload  upload  `yaml:"upload" mapstructure:"upload"`
}

type server struct {
	Addr string `yaml:"addr"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type jwtConf struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

type storage struct {
	VideosDir string `yaml:"videos_dir"`
	ImagesDir string `yaml:"images_dir"`
	// ServeLocal gates byte-range playback of uploaded files. Stateless
	// deployments keep it off and only external videos remain playable.
	ServeLocal bool `yaml:"serve_local"`
}

type upload struct {
	MaxVideoSizeMB int64 `yaml:"max_video_size_mb"`
	MaxImageSizeMB int64 `yaml:"max_image_size_mb"`
}
