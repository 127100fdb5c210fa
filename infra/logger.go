package infra

import (
	"github.com/sirupsen/logrus"

	"grocery-api/config"
)

// SetupLogger 設定のログレベルでプロセス共通のロガーを構築する
// 不明なレベルの場合はinfoにフォールバックする
func SetupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
	}
	logger.SetLevel(level)

	return logger
}
