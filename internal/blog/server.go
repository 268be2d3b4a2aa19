package blog

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Sanskar157/carpe-diem/internal/config"
	blogdb "github.com/Sanskar157/carpe-diem/internal/blog/db"
	"github.com/Sanskar157/carpe-diem/pkg/middleware"
)

// Server はブログAPIサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *blogdb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
}

// NewServer は新しいブログサーバーを生成する。
// SQLiteデータベースの初期化とマイグレーション適用を行う。
func NewServer(cfg *config.Config) (*Server, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.DatabasePath)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{cfg.FrontendURL}))

	s := &Server{
		router:    router,
		port:      cfg.Port,
		queries:   blogdb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: cfg.JWTSecret,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")

	// ユーザー認証エンドポイント（認証不要）
	user := api.Group("/user")
	{
		user.POST("/signup", s.handleSignup())
		user.POST("/signin", s.handleSignin())
		user.POST("/signout", s.handleSignout())
	}

	// 記事詳細の取得のみ認証不要で公開する
	api.GET("/blog/:id", s.handleGetPost())

	// 認証必須の記事エンドポイント
	blog := api.Group("/blog")
	blog.Use(middleware.JWTAuth(s.jwtSecret))
	{
		// 記事作成
		blog.POST("", s.handleCreatePost())
		// 記事更新（未公開のもののみ）
		blog.PUT("", s.handleUpdatePost())
		// 記事公開。公開は一方向の遷移で取り消せない。
		blog.PUT("/publish", s.handlePublishPost())
		// 記事一覧（ページネーション付き）
		blog.GET("/bulk", s.handleListPosts())
		// 自分の記事一覧
		blog.GET("/me", s.handleMyPosts())
		// 記事削除（著者本人のみ）
		blog.DELETE("/:id", s.handleDeletePost())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "blog"})
	})
}

// signupRequest はユーザー登録リクエストのJSON構造。
type signupRequest struct {
	// Username はログイン用ユーザー名。
	Username string `json:"username"`
	// Password はパスワード。
	Password string `json:"password"`
	// Name は表示名。
	Name string `json:"name"`
}

// signinRequest はサインインリクエストのJSON構造。
type signinRequest struct {
	// Username はログイン用ユーザー名。
	Username string `json:"username"`
	// Password はパスワード。
	Password string `json:"password"`
}

// createPostRequest は記事作成リクエストのJSON構造。
type createPostRequest struct {
	Data struct {
		// Title はタイトル。
		Title string `json:"title"`
		// Content は本文。
		Content string `json:"content"`
		// Genre はジャンル。
		Genre string `json:"genre"`
	} `json:"data"`
}

// updatePostRequest は記事更新リクエストのJSON構造。
type updatePostRequest struct {
	Data struct {
		// ID は更新対象の記事ID。
		ID string `json:"id"`
		// Title はタイトル。
		Title string `json:"title"`
		// Content は本文。
		Content string `json:"content"`
	} `json:"data"`
}

// publishPostRequest は記事公開リクエストのJSON構造。
type publishPostRequest struct {
	Data struct {
		// ID は公開対象の記事ID。
		ID string `json:"id"`
	} `json:"data"`
}

// myPostsRequest は自分の記事一覧リクエストのJSON構造。ボディは省略可能。
type myPostsRequest struct {
	Data struct {
		// Published は公開状態での絞り込み。nilの場合は絞り込まない。
		Published *bool `json:"published"`
	} `json:"data"`
}

// authorResponse は記事レスポンスに含める著者情報。
type authorResponse struct {
	// Name は著者の表示名。
	Name string `json:"name"`
}

// bulkPostResponse は記事一覧のJSONレスポンス構造。
type bulkPostResponse struct {
	// ID は記事の一意識別子。
	ID string `json:"id"`
	// Title はタイトル。
	Title string `json:"title"`
	// Content は本文。
	Content string `json:"content"`
	// Author は著者情報。
	Author authorResponse `json:"author"`
}

// myPostResponse は自分の記事一覧のJSONレスポンス構造。
type myPostResponse struct {
	// ID は記事の一意識別子。
	ID string `json:"id"`
	// Title はタイトル。
	Title string `json:"title"`
	// Content は本文。
	Content string `json:"content"`
	// Published は公開済みフラグ。
	Published bool `json:"published"`
	// Author は著者情報。
	Author authorResponse `json:"author"`
}

// postDetailResponse は記事詳細のJSONレスポンス構造。
type postDetailResponse struct {
	// ID は記事の一意識別子。
	ID string `json:"id"`
	// Title はタイトル。
	Title string `json:"title"`
	// Content は本文。
	Content string `json:"content"`
	// Genre はジャンル。
	Genre string `json:"genre"`
	// Published は公開済みフラグ。
	Published bool `json:"published"`
	// Author は著者情報。
	Author authorResponse `json:"author"`
}

// handleSignup はユーザー登録を処理するハンドラを返す。
// 登録成功時はJWTトークンをテキストとして返す。
// ユーザー名の重複を含むあらゆる失敗は区別せず400 "Invalid" を返す。
func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid")
			return
		}

		userID := uuid.New().String()
		if err := s.queries.CreateUser(c.Request.Context(), blogdb.CreateUserParams{
			ID:       userID,
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
		}); err != nil {
			log.Printf("ユーザー作成エラー: %v", err)
			c.String(http.StatusBadRequest, "Invalid")
			return
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, userID)
		if err != nil {
			log.Printf("JWT生成エラー: %v", err)
			c.String(http.StatusBadRequest, "Invalid")
			return
		}

		c.String(http.StatusOK, token)
	}
}

// handleSignin はサインインを処理するハンドラを返す。
// ユーザー名とパスワードの完全一致でユーザーを検索し、成功時はJWTトークンを返す。
func (s *Server) handleSignin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid")
			return
		}

		user, err := s.queries.GetUserByCredentials(c.Request.Context(), blogdb.GetUserByCredentialsParams{
			Username: req.Username,
			Password: req.Password,
		})
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Incorrect creds"})
			return
		}
		if err != nil {
			log.Printf("ユーザー検索エラー: %v", err)
			c.String(http.StatusLengthRequired, "Invalid")
			return
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, user.ID)
		if err != nil {
			log.Printf("JWT生成エラー: %v", err)
			c.String(http.StatusLengthRequired, "Invalid")
			return
		}

		c.String(http.StatusOK, token)
	}
}

// handleSignout はサインアウトを処理するハンドラを返す。
// Authorizationヘッダーの形式のみを確認し、トークンの署名は検証しない。
// サーバー側の状態は変更せず、クライアントにトークン破棄を促す応答を返すだけ。
// 発行済みトークンは有効期限まで使用できる。
func (s *Server) handleSignout() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Authorization header with Bearer token is required",
			})
			return
		}
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Successfully signed out"})
	}
}

// handleCreatePost は記事作成を処理するハンドラを返す。
// 著者IDは認証済みユーザーのIDから導出し、クライアントの指定は受け付けない。
func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized. Please log in."})
			return
		}

		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}

		postID := uuid.New().String()
		if err := s.queries.CreatePost(c.Request.Context(), blogdb.CreatePostParams{
			ID:       postID,
			Title:    req.Data.Title,
			Content:  req.Data.Content,
			Genre:    req.Data.Genre,
			AuthorID: userID,
		}); err != nil {
			log.Printf("記事作成エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the blog."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": postID})
	}
}

// handleUpdatePost は記事更新を処理するハンドラを返す。
// 公開済みの記事は更新できない。
func (s *Server) handleUpdatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
			return
		}

		post, err := s.queries.GetPostByID(c.Request.Context(), req.Data.ID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		if err != nil {
			log.Printf("記事取得エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while updating the blog."})
			return
		}

		if post.Published {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot update published post"})
			return
		}

		if err := s.queries.UpdatePost(c.Request.Context(), blogdb.UpdatePostParams{
			Title:   req.Data.Title,
			Content: req.Data.Content,
			ID:      req.Data.ID,
		}); err != nil {
			log.Printf("記事更新エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while updating the blog."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": post.ID})
	}
}

// handlePublishPost は記事公開を処理するハンドラを返す。
// 指定IDの記事を無条件に公開済みにする。既に公開済みの場合も成功を返す。
func (s *Server) handlePublishPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req publishPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}

		if err := s.queries.PublishPost(c.Request.Context(), req.Data.ID); err != nil {
			log.Printf("記事公開エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while publishing the blog."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Blog published successfully."})
	}
}

// handleListPosts は記事一覧取得を処理するハンドラを返す。
// page/limitが両方とも未指定の場合は全件を返す。どちらかが指定された場合は
// オフセット/リミットで切り出す。totalは常にストアの総件数を反映する。
func (s *Server) handleListPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		pageStr := c.Query("page")
		limitStr := c.Query("limit")

		page, limit := 1, 10
		if pageStr != "" {
			v, err := strconv.Atoi(pageStr)
			if err != nil || v < 1 {
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "Invalid pagination parameters. Page and limit must be greater than 0.",
				})
				return
			}
			page = v
		}
		if limitStr != "" {
			v, err := strconv.Atoi(limitStr)
			if err != nil || v < 1 {
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "Invalid pagination parameters. Page and limit must be greater than 0.",
				})
				return
			}
			limit = v
		}

		total, err := s.queries.CountPosts(c.Request.Context())
		if err != nil {
			log.Printf("記事件数取得エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching posts."})
			return
		}

		posts := make([]bulkPostResponse, 0)
		if pageStr == "" && limitStr == "" {
			rows, err := s.queries.ListPosts(c.Request.Context())
			if err != nil {
				log.Printf("記事一覧取得エラー: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching posts."})
				return
			}
			for _, r := range rows {
				posts = append(posts, bulkPostResponse{
					ID:      r.ID,
					Title:   r.Title,
					Content: r.Content,
					Author:  authorResponse{Name: r.AuthorName},
				})
			}
		} else {
			offset := (page - 1) * limit
			rows, err := s.queries.ListPostsPaged(c.Request.Context(), blogdb.ListPostsPagedParams{
				Limit:  int64(limit),
				Offset: int64(offset),
			})
			if err != nil {
				log.Printf("記事一覧取得エラー: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching posts."})
				return
			}
			for _, r := range rows {
				posts = append(posts, bulkPostResponse{
					ID:      r.ID,
					Title:   r.Title,
					Content: r.Content,
					Author:  authorResponse{Name: r.AuthorName},
				})
			}
		}

		totalPages := (total + int64(limit) - 1) / int64(limit)
		c.JSON(http.StatusOK, gin.H{
			"posts": posts,
			"pagination": gin.H{
				"total":      total,
				"page":       page,
				"limit":      limit,
				"totalPages": totalPages,
			},
		})
	}
}

// handleMyPosts は認証済みユーザー自身の記事一覧取得を処理するハンドラを返す。
// ボディで公開状態の絞り込みを指定できる。ボディは省略可能。
func (s *Server) handleMyPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized. Please log in."})
			return
		}

		// ボディが無い・読めない場合は絞り込みなしとして扱う
		var req myPostsRequest
		_ = c.ShouldBindJSON(&req)

		posts := make([]myPostResponse, 0)
		if req.Data.Published != nil {
			rows, err := s.queries.ListPostsByAuthorAndPublished(c.Request.Context(), blogdb.ListPostsByAuthorAndPublishedParams{
				AuthorID:  userID,
				Published: *req.Data.Published,
			})
			if err != nil {
				log.Printf("自分の記事一覧取得エラー: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching blogs."})
				return
			}
			for _, r := range rows {
				posts = append(posts, myPostResponse{
					ID:        r.ID,
					Title:     r.Title,
					Content:   r.Content,
					Published: r.Published,
					Author:    authorResponse{Name: r.AuthorName},
				})
			}
		} else {
			rows, err := s.queries.ListPostsByAuthor(c.Request.Context(), userID)
			if err != nil {
				log.Printf("自分の記事一覧取得エラー: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching blogs."})
				return
			}
			for _, r := range rows {
				posts = append(posts, myPostResponse{
					ID:        r.ID,
					Title:     r.Title,
					Content:   r.Content,
					Published: r.Published,
					Author:    authorResponse{Name: r.AuthorName},
				})
			}
		}

		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}

// handleGetPost は記事詳細取得を処理するハンドラを返す。認証不要。
// 不正なIDも存在しないIDも区別せず404を返す。
func (s *Server) handleGetPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("id")

		row, err := s.queries.GetPostWithAuthor(c.Request.Context(), postID)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				log.Printf("記事取得エラー: %v", err)
			}
			c.JSON(http.StatusNotFound, gin.H{"message": "Error while fetching post"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"post": postDetailResponse{
			ID:        row.ID,
			Title:     row.Title,
			Content:   row.Content,
			Genre:     row.Genre,
			Published: row.Published,
			Author:    authorResponse{Name: row.AuthorName},
		}})
	}
}

// handleDeletePost は記事削除を処理するハンドラを返す。
// 著者本人のみが削除できる。
func (s *Server) handleDeletePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)

		postID := c.Param("id")
		if err := uuid.Validate(postID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post ID."})
			return
		}

		post, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found."})
			return
		}
		if err != nil {
			log.Printf("記事取得エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while deleting the blog."})
			return
		}

		if post.AuthorID != userID {
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to delete this post."})
			return
		}

		if err := s.queries.DeletePost(c.Request.Context(), postID); err != nil {
			log.Printf("記事削除エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while deleting the blog."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully."})
	}
}
