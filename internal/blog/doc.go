// Package blog はブログAPIサービスの内部実装を提供する。
//
// ユーザーのsignup/signin/signoutとJWT発行、および記事のCRUDを担当する。
// 記事の更新は未公開のものに限り、削除は著者本人に限る。
// 認証はpkg/middlewareのJWT認証ゲートに委譲する。
package blog
