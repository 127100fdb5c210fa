package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"grocery-api/services"
)

// AuthMiddleware Authorizationヘッダーのベアラートークンから現在のユーザーを解決する
// 失敗時はハンドラー本体を実行せずに401でリクエストを打ち切る
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			abortUnauthenticated(ctx)
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthenticated(ctx)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			abortUnauthenticated(ctx)
			return
		}

		ctx.Set("user", user)

		ctx.Next()
	}
}

func abortUnauthenticated(ctx *gin.Context) {
	ctx.Header("WWW-Authenticate", "Bearer")
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
}
