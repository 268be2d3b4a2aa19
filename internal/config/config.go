// Package config は環境変数からブログAPIの設定を読み込む。
// .env.local ファイルが存在する場合はそこからも読み込む。
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config はブログAPIの設定を保持する。
type Config struct {
	// Port はHTTPサーバーのリッスンポート。
	Port string
	// DatabasePath はSQLiteデータベースファイルのパス。
	DatabasePath string
	// JWTSecret はJWT署名用の秘密鍵。
	JWTSecret string
	// FrontendURL はCORSで許可するフロントエンドのオリジン。
	FrontendURL string
}

// Load は環境変数から設定を読み込む。
// .env.local が存在しない場合は環境変数のみを使用する。
func Load() *Config {
	// 開発用の設定ファイル。存在しなければ無視する。
	_ = godotenv.Load(".env.local")

	return &Config{
		Port:         getEnvOr("PORT", "8080"),
		DatabasePath: getEnvOr("DATABASE_PATH", "/data/blog.db"),
		JWTSecret:    getEnvOr("JWT_SECRET", "dev-secret-key"),
		FrontendURL:  getEnvOr("FRONTEND_URL", "http://localhost:3000"),
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
