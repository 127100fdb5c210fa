package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize .envがあれば環境変数として読み込む（config.Loadより先に呼ぶこと）
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file, relying on environment variables")
	}
}
