package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string `envconfig:"PORT"              default:"8080"`
	Env             string `envconfig:"ENV"               default:"dev"`
	LogLevel        string `envconfig:"LOG_LEVEL"         default:"info"`
	DBHost          string `envconfig:"DB_HOST"`
	DBUser          string `envconfig:"DB_USER"`
	DBPassword      string `envconfig:"DB_PASSWORD"`
	DBName          string `envconfig:"DB_NAME"`
	DBPort          string `envconfig:"DB_PORT"`
	SecretKey       string `envconfig:"SECRET_KEY"        default:"dev-secret-key"`
	TokenTTLMinutes int    `envconfig:"TOKEN_TTL_MINUTES" default:"30"`
	AutoMigrate     bool   `envconfig:"AUTO_MIGRATE"`
}

// Load 環境変数から設定を読み込む（infra.Initializeで.envを読み込んだ後に呼ぶこと）
// 設定はプロセス起動時に一度だけ読み込み、実行中に再読み込みしない
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
