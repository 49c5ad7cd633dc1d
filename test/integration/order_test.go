package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newOrderFixture 准备下单环境：用户、店铺、图书
func newOrderFixture(t *testing.T, prefix string) (token string, bookID uint) {
	t.Helper()

	_, token = RegisterTestUser(t, prefix)
	sellerID := CreateTestSeller(t, token, prefix+"书店")
	published := PublishTestBook(t, token, sellerID, "订单测试图书", "某作者", 5)
	return token, published.Book.ID
}

// TestCreateOrder 测试下单
func TestCreateOrder(t *testing.T) {
	token, bookID := newOrderFixture(t, "order")

	t.Run("正常下单", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"book_id":      bookID,
			"total_amount": 5900,
		}, token)
		require.Equal(t, 0, resp.Code, "下单失败: %s", resp.Message)

		var data OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &data))

		assert.NotZero(t, data.ID)
		assert.Equal(t, bookID, data.BookID)
		assert.Equal(t, "pending", data.Status, "缺省状态应为pending")
	})

	t.Run("金额为0应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"book_id":      bookID,
			"total_amount": 0,
		}, token)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("金额为负应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"book_id":      bookID,
			"total_amount": -100,
		}, token)
		assert.Equal(t, 40010, resp.Code, "金额非法应返回专用错误码")
	})

	t.Run("图书不存在应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"book_id":      99999999,
			"total_amount": 100,
		}, token)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("状态取值非法应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"book_id":      bookID,
			"total_amount": 100,
			"status":       "shipped-today",
		}, token)
		assert.Equal(t, 40002, resp.Code, "状态非法应返回专用错误码")
	})
}

// TestOrderStatusFlow 测试订单状态修改
// 状态集合固定但不限制流转方向
func TestOrderStatusFlow(t *testing.T) {
	token, bookID := newOrderFixture(t, "status")

	createResp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
		"book_id":      bookID,
		"total_amount": 5900,
	}, token)
	require.Equal(t, 0, createResp.Code)

	var created OrderData
	require.NoError(t, json.Unmarshal(createResp.Data, &created))
	statusURL := fmt.Sprintf("%s/orders/%d/status", BaseURL, created.ID)

	t.Run("正向流转", func(t *testing.T) {
		resp := PatchJSON(t, statusURL, map[string]string{"status": "shipped"}, token)
		require.Equal(t, 0, resp.Code)

		var data OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "shipped", data.Status)
	})

	t.Run("允许回退", func(t *testing.T) {
		resp := PatchJSON(t, statusURL, map[string]string{"status": "pending"}, token)
		require.Equal(t, 0, resp.Code, "shipped改回pending应被允许")
	})

	t.Run("非法状态被拒绝", func(t *testing.T) {
		resp := PatchJSON(t, statusURL, map[string]string{"status": "refunded"}, token)
		assert.Equal(t, 40002, resp.Code)
	})
}

// TestListOrders 测试订单列表过滤与分页
func TestListOrders(t *testing.T) {
	token, bookID := newOrderFixture(t, "orderlist")

	for i := 0; i < 3; i++ {
		resp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
			"book_id":      bookID,
			"total_amount": 100 * (i + 1),
		}, token)
		require.Equal(t, 0, resp.Code)
	}

	t.Run("按图书过滤", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/orders?book_id=%d", BaseURL, bookID), token)
		require.Equal(t, 0, resp.Code)

		var page PageData
		require.NoError(t, json.Unmarshal(resp.Data, &page))
		assert.Equal(t, int64(3), page.Total, "只应统计该图书的订单")
	})

	t.Run("按状态过滤", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/orders?status=pending&page=1&page_size=2", token)
		require.Equal(t, 0, resp.Code)

		var page PageData
		require.NoError(t, json.Unmarshal(resp.Data, &page))
		assert.GreaterOrEqual(t, page.Total, int64(3))
		assert.Equal(t, 2, page.PageSize)

		var orders []OrderData
		require.NoError(t, json.Unmarshal(page.List, &orders))
		assert.Len(t, orders, 2, "分页大小应生效")
	})
}

// TestUpdateOrder 测试订单通用更新
func TestUpdateOrder(t *testing.T) {
	token, bookID := newOrderFixture(t, "orderup")

	createResp := PostJSON(t, BaseURL+"/orders", map[string]interface{}{
		"book_id":      bookID,
		"total_amount": 5900,
	}, token)
	require.Equal(t, 0, createResp.Code)

	var created OrderData
	require.NoError(t, json.Unmarshal(createResp.Data, &created))
	orderURL := fmt.Sprintf("%s/orders/%d", BaseURL, created.ID)

	t.Run("修改金额", func(t *testing.T) {
		resp := PutJSON(t, orderURL, map[string]interface{}{"total_amount": 6900}, token)
		require.Equal(t, 0, resp.Code)

		var data OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, int64(6900), data.TotalAmount)
	})

	t.Run("更新后的金额仍需为正", func(t *testing.T) {
		resp := PutJSON(t, orderURL, map[string]interface{}{"total_amount": -1}, token)
		assert.Equal(t, 40010, resp.Code)
	})

	t.Run("删除订单", func(t *testing.T) {
		resp := DeleteJSON(t, orderURL, token)
		require.Equal(t, 0, resp.Code)

		assert.Equal(t, 40403, GetJSON(t, orderURL, token).Code)
	})
}
