package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserRegister 测试用户注册
func TestUserRegister(t *testing.T) {
	t.Run("正常注册", func(t *testing.T) {
		username := GenerateTestUsername("normal")
		registerReq := map[string]string{
			"username":   username,
			"email":      username + "@test.com",
			"password":   "Test1234",
			"first_name": "测试",
			"last_name":  "用户",
		}

		resp := PostJSON(t, BaseURL+"/register", registerReq, "")
		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data UserData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID)
		assert.Equal(t, username, data.Username)
		assert.False(t, data.IsSeller, "新用户默认不是卖家")
	})

	t.Run("重复用户名注册应失败", func(t *testing.T) {
		username := GenerateTestUsername("dup")
		registerReq := map[string]string{
			"username": username,
			"email":    username + "@test.com",
			"password": "Test1234",
		}

		resp1 := PostJSON(t, BaseURL+"/register", registerReq, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		resp2 := PostJSON(t, BaseURL+"/register", registerReq, "")
		assert.NotEqual(t, 0, resp2.Code, "重复用户名注册应该失败")
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		// 邮箱与用户名各有唯一索引
		email := GenerateTestUsername("shared") + "@test.com"

		resp1 := PostJSON(t, BaseURL+"/register", map[string]string{
			"username": GenerateTestUsername("email_a"),
			"email":    email,
			"password": "Test1234",
		}, "")
		require.Equal(t, 0, resp1.Code)

		resp2 := PostJSON(t, BaseURL+"/register", map[string]string{
			"username": GenerateTestUsername("email_b"),
			"email":    email,
			"password": "Test1234",
		}, "")
		assert.Equal(t, 40003, resp2.Code, "邮箱重复应返回专用错误码")
	})

	t.Run("密码过短应失败", func(t *testing.T) {
		username := GenerateTestUsername("shortpwd")
		resp := PostJSON(t, BaseURL+"/register", map[string]string{
			"username": username,
			"email":    username + "@test.com",
			"password": "123",
		}, "")
		assert.NotEqual(t, 0, resp.Code, "密码过短应该失败")
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/register", map[string]string{
			"username": GenerateTestUsername("bademail"),
			"email":    "invalid-email",
			"password": "Test1234",
		}, "")
		assert.NotEqual(t, 0, resp.Code, "邮箱格式错误应该失败")
	})
}

// TestUserLogin 测试用户登录
func TestUserLogin(t *testing.T) {
	username := GenerateTestUsername("login")
	registerReq := map[string]string{
		"username": username,
		"email":    username + "@test.com",
		"password": "Test1234",
	}
	registerResp := PostJSON(t, BaseURL+"/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "准备测试数据：注册用户")

	t.Run("正常登录", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/login", map[string]string{
			"username": username,
			"password": "Test1234",
		}, "")
		assert.Equal(t, 0, resp.Code, "登录应该成功")

		var data LoginData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotEmpty(t, data.AccessToken)
		assert.NotEmpty(t, data.RefreshToken)
		assert.Equal(t, username, data.User.Username)
	})

	t.Run("密码错误应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/login", map[string]string{
			"username": username,
			"password": "WrongPass1",
		}, "")
		assert.NotEqual(t, 0, resp.Code, "密码错误应该失败")
	})

	t.Run("用户不存在时返回相同错误", func(t *testing.T) {
		respWrongPwd := PostJSON(t, BaseURL+"/login", map[string]string{
			"username": username,
			"password": "WrongPass1",
		}, "")
		respNoUser := PostJSON(t, BaseURL+"/login", map[string]string{
			"username": "nonexistent_user_xyz",
			"password": "Test1234",
		}, "")

		// 防止枚举用户名：两种失败返回同一个错误码和消息
		assert.Equal(t, respWrongPwd.Code, respNoUser.Code)
		assert.Equal(t, respWrongPwd.Message, respNoUser.Message)
	})

	t.Run("无效Token访问受保护接口应被拒绝", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "invalid.jwt.token")
		assert.NotEqual(t, 0, resp.Code, "无效Token应该被拒绝")
	})
}

// TestSetSeller 测试开通卖家身份的幂等性
func TestSetSeller(t *testing.T) {
	_, token := RegisterTestUser(t, "setseller")

	resp1 := PostJSON(t, BaseURL+"/set-seller", nil, token)
	require.Equal(t, 0, resp1.Code, "首次开通应该成功: %s", resp1.Message)

	var data1 UserData
	require.NoError(t, json.Unmarshal(resp1.Data, &data1))
	assert.True(t, data1.IsSeller)

	// 重复开通应幂等成功，结果一致
	resp2 := PostJSON(t, BaseURL+"/set-seller", nil, token)
	assert.Equal(t, 0, resp2.Code, "重复开通不应报错")

	var data2 UserData
	require.NoError(t, json.Unmarshal(resp2.Data, &data2))
	assert.True(t, data2.IsSeller)
	assert.Equal(t, data1.ID, data2.ID)
}

// TestLogout 测试登出后Token失效
func TestLogout(t *testing.T) {
	_, token := RegisterTestUser(t, "logout")

	// 登出前可以访问
	before := GetJSON(t, BaseURL+"/books", token)
	require.Equal(t, 0, before.Code, "登出前Token应有效")

	logoutResp := PostJSON(t, BaseURL+"/logout", nil, token)
	require.Equal(t, 0, logoutResp.Code, "登出失败: %s", logoutResp.Message)

	// 登出后Token进入黑名单
	after := GetJSON(t, BaseURL+"/books", token)
	assert.NotEqual(t, 0, after.Code, "登出后Token应失效")
}

// TestUserAdminGuard 普通用户访问用户管理接口应被拒绝
func TestUserAdminGuard(t *testing.T) {
	_, token := RegisterTestUser(t, "notadmin")

	resp := GetJSON(t, BaseURL+"/users", token)
	assert.NotEqual(t, 0, resp.Code, "非管理员应被拒绝")
}
