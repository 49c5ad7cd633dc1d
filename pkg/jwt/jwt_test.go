package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

const testSecret = "test-secret-key-for-unit-tests"

func newTestManager() *Manager {
	return NewManager(testSecret, 2*time.Hour, 7*24*time.Hour)
}

// TestGenerateAndParse 测试Token生成与解析的往返一致性
func TestGenerateAndParse(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateToken(42, "alice", true, false)
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.False(t, claims.IsSeller)
	assert.Equal(t, "bookmart", claims.Issuer)
}

// TestParseToken_Invalid 测试非法Token的拒绝
func TestParseToken_Invalid(t *testing.T) {
	m := newTestManager()

	t.Run("随意字符串", func(t *testing.T) {
		_, err := m.ParseToken("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("another-secret", 2*time.Hour, 7*24*time.Hour)
		pair, err := other.GenerateToken(1, "bob", false, false)
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("已过期", func(t *testing.T) {
		expired := NewManager(testSecret, -time.Minute, 7*24*time.Hour)
		pair, err := expired.GenerateToken(1, "bob", false, false)
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})
}

// TestRefreshAccessToken 测试Token刷新
func TestRefreshAccessToken(t *testing.T) {
	m := newTestManager()

	pair, err := m.GenerateToken(42, "alice", false, true)
	require.NoError(t, err)

	t.Run("用Refresh Token换新Access Token", func(t *testing.T) {
		newToken, err := m.RefreshAccessToken(pair.RefreshToken)
		require.NoError(t, err)

		claims, err := m.ParseToken(newToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
	})

	t.Run("非法Refresh Token被拒绝", func(t *testing.T) {
		_, err := m.RefreshAccessToken("garbage")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

// TestExpireGetters 有效期透出给会话TTL与黑名单TTL使用
func TestExpireGetters(t *testing.T) {
	m := newTestManager()
	assert.Equal(t, 2*time.Hour, m.AccessTokenExpire())
	assert.Equal(t, 7*24*time.Hour, m.RefreshTokenExpire())
}
