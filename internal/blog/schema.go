package blog

import (
	"database/sql"
	"embed"

	"github.com/Sanskar157/carpe-diem/pkg/migration"
)

// migrationsFS はembedされたマイグレーションファイル。
// db/blog/schema.sql と同期すること。
//
//go:embed migrations/*.up.sql
var migrationsFS embed.FS

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	return migration.Run(db, migrationsFS, "migrations")
}
