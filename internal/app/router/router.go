// Package router は Gin エンジンを生成し、全ルートを登録します。
package router

import (
	"github.com/gin-gonic/gin"

	userhandler "user_backend/internal/feature/user/transport/handler"
	platformhandler "user_backend/internal/platform/http/handler"
	"user_backend/internal/platform/http/middleware"
	jwtmw "user_backend/internal/platform/jwt"
)

// NewRouter はヘルスチェックとユーザーAPIを提供するエンジンを返します。
// /users 配下は jwtSecret で署名された Bearer トークンが必要です。
func NewRouter(users *userhandler.UserHandler, db platformhandler.Pinger, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	// 認証不要
	// 導通確認用
	health := platformhandler.Health(db)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	// 認証必須のルート
	auth := r.Group("/users")
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired(jwtSecret))
	{
		auth.GET("", users.List)
		auth.POST("", users.Create)
		auth.GET("/:id", users.Get)
		auth.DELETE("/:id", users.Delete)
	}

	return r
}
