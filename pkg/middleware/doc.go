// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// JWTトークンの発行・検証による認証ゲート、パニックリカバリ、
// CORS設定など、ブログAPI全体で使用するミドルウェアを含む。
package middleware
