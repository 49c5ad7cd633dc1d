package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikmusmade/bookmart/pkg/jwt"
)

// newOptionalAuthRouter 挂载OptionalAuth的测试路由
// 处理函数回显Context中的用户信息，便于断言注入结果
func newOptionalAuthRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/browse", m.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetUserID(c),
			"username": GetUsername(c),
			"is_admin": IsAdmin(c),
		})
	})
	return r
}

type browseEcho struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// TestOptionalAuth 浏览接口的可选登录
// 匿名与无效Token都按匿名放行，有效Token注入用户信息
func TestOptionalAuth(t *testing.T) {
	manager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
	// OptionalAuth不查黑名单，SessionStore留空
	router := newOptionalAuthRouter(NewAuthMiddleware(manager, nil))

	doGet := func(t *testing.T, authHeader string) (int, browseEcho) {
		t.Helper()

		req := httptest.NewRequest(http.MethodGet, "/browse", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var echo browseEcho
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &echo))
		return w.Code, echo
	}

	t.Run("匿名访问放行", func(t *testing.T) {
		status, echo := doGet(t, "")
		assert.Equal(t, http.StatusOK, status)
		assert.Zero(t, echo.UserID, "匿名请求不应有用户信息")
		assert.Empty(t, echo.Username)
	})

	t.Run("有效Token注入用户信息", func(t *testing.T) {
		pair, err := manager.GenerateToken(42, "alice", false, true)
		require.NoError(t, err)

		status, echo := doGet(t, "Bearer "+pair.AccessToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, uint(42), echo.UserID)
		assert.Equal(t, "alice", echo.Username)
		assert.False(t, echo.IsAdmin)
	})

	t.Run("无效Token按匿名处理", func(t *testing.T) {
		status, echo := doGet(t, "Bearer not.a.token")
		assert.Equal(t, http.StatusOK, status, "无效Token不应阻断浏览")
		assert.Zero(t, echo.UserID)
	})

	t.Run("非Bearer格式按匿名处理", func(t *testing.T) {
		status, echo := doGet(t, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusOK, status)
		assert.Zero(t, echo.UserID)
	})
}
