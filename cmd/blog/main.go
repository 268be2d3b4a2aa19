// ブログAPIサービスのエントリポイント。
// ユーザーのsignup/signin/signoutと記事のCRUDを提供する。
package main

import (
	"log"

	"github.com/Sanskar157/carpe-diem/internal/blog"
	"github.com/Sanskar157/carpe-diem/internal/config"
)

func main() {
	cfg := config.Load()

	server, err := blog.NewServer(cfg)
	if err != nil {
		log.Fatalf("ブログサーバーの初期化に失敗: %v", err)
	}

	log.Printf("ブログサービスを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("ブログサービスの起動に失敗: %v", err)
	}
}
