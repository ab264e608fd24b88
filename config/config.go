package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Upload UploadConfig `mapstructure:"upload"`
	Admin  AdminConfig  `mapstructure:"admin"`
	Site   SiteConfig   `mapstructure:"site"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type UploadConfig struct {
	Dir        string `mapstructure:"dir"`
	MaxSizeMB  int64  `mapstructure:"max_size_mb"`
	PublicPath string `mapstructure:"public_path"`
}

type AdminConfig struct {
	SeedEmail    string `mapstructure:"seed_email"`
	SeedPassword string `mapstructure:"seed_password"`
}

type SiteConfig struct {
	// BaseURL is used to build absolute URLs in the sitemap.
	BaseURL string `mapstructure:"base_url"`
}

// Load reads config.yaml from the given path (optional) with env overrides
// (XAYMART_SERVER_ADDR etc.) and built-in defaults.
func Load(path string) (*Config, error) {
	viper.SetDefault("server.addr", ":3000")
	viper.SetDefault("db.path", "database.db")
	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("upload.max_size_mb", 5)
	viper.SetDefault("upload.public_path", "/uploads")
	viper.SetDefault("admin.seed_email", "admin@xaymart.vn")
	viper.SetDefault("admin.seed_password", "changeme")
	viper.SetDefault("site.base_url", "http://localhost:3000")

	viper.SetEnvPrefix("xaymart")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("No config file found, using defaults and environment")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
