package config

import "testing"

// TestLoad は設定の読み込みを検証する。
// 環境変数を操作するためt.Parallel()は使用しない。
func TestLoad(t *testing.T) {
	t.Run("環境変数が未設定の場合はデフォルト値が使われること", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("DATABASE_PATH", "")
		t.Setenv("JWT_SECRET", "")
		t.Setenv("FRONTEND_URL", "")

		cfg := Load()

		if cfg.Port != "8080" {
			t.Errorf("Port = %q, want %q", cfg.Port, "8080")
		}
		if cfg.DatabasePath != "/data/blog.db" {
			t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/blog.db")
		}
		if cfg.JWTSecret != "dev-secret-key" {
			t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "dev-secret-key")
		}
		if cfg.FrontendURL != "http://localhost:3000" {
			t.Errorf("FrontendURL = %q, want %q", cfg.FrontendURL, "http://localhost:3000")
		}
	})

	t.Run("環境変数が設定されている場合はその値が使われること", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DATABASE_PATH", "/tmp/test.db")
		t.Setenv("JWT_SECRET", "super-secret")
		t.Setenv("FRONTEND_URL", "https://blog.example.com")

		cfg := Load()

		if cfg.Port != "9090" {
			t.Errorf("Port = %q, want %q", cfg.Port, "9090")
		}
		if cfg.DatabasePath != "/tmp/test.db" {
			t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/tmp/test.db")
		}
		if cfg.JWTSecret != "super-secret" {
			t.Errorf("JWTSecret = %q, want %q", cfg.JWTSecret, "super-secret")
		}
		if cfg.FrontendURL != "https://blog.example.com" {
			t.Errorf("FrontendURL = %q, want %q", cfg.FrontendURL, "https://blog.example.com")
		}
	})
}
