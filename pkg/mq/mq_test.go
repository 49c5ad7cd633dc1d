package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrderCreatedEvent_JSON 测试事件序列化格式
// 事件体是对外契约，字段名变更会破坏下游消费者
func TestOrderCreatedEvent_JSON(t *testing.T) {
	event := OrderCreatedEvent{
		OrderID:     123,
		UserID:      456,
		BookID:      789,
		TotalAmount: 59900,
		Status:      "pending",
		CreatedAt:   1700000000,
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, float64(123), decoded["order_id"])
	assert.Equal(t, float64(456), decoded["user_id"])
	assert.Equal(t, float64(59900), decoded["total_amount"])
	assert.Equal(t, "pending", decoded["status"])
}

// TestBookRestockedEvent_JSON 测试补货事件字段
func TestBookRestockedEvent_JSON(t *testing.T) {
	event := BookRestockedEvent{
		BookID:   1,
		SellerID: 2,
		Added:    3,
		Quantity: 5,
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, float64(3), decoded["added"])
	assert.Equal(t, float64(5), decoded["quantity"])
}

// TestNoopPublisher 空发布者不应报错
func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()

	err := p.Publish(context.Background(), RoutingKeyOrderCreated, OrderCreatedEvent{OrderID: 1})
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}

// TestRoutingKeys 路由键是对外契约，固定值不可变
func TestRoutingKeys(t *testing.T) {
	assert.Equal(t, "order.created", RoutingKeyOrderCreated)
	assert.Equal(t, "request.created", RoutingKeyBookRequested)
	assert.Equal(t, "book.restocked", RoutingKeyBookRestocked)
}
