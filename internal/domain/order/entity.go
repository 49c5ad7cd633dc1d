package order

import (
	"time"
)

// Status 订单状态
// 状态集合固定为pending/shipped/delivered/cancelled，
// 但不限制状态之间的流转方向（允许delivered改回pending等回退操作）
type Status string

const (
	StatusPending   Status = "pending"   // 待处理
	StatusShipped   Status = "shipped"   // 已发货
	StatusDelivered Status = "delivered" // 已送达
	StatusCancelled Status = "cancelled" // 已取消
)

// IsValid 检查状态取值是否合法
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order 订单实体（聚合根）
// 设计说明：
// 1. 一个订单对应一本图书（与购物车多条目模型不同）
// 2. 买家为下单时的登录用户（UserID），不可由请求体指定
// 3. 金额使用int64存储"分"，必须为正数
// 4. 状态只做取值校验，不做流转约束
type Order struct {
	ID          uint
	UserID      uint   // 买家用户ID
	BookID      uint   // 购买的图书ID
	TotalAmount int64  // 订单金额(分)，必须大于0
	Status      Status // 订单状态
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrder 创建新订单（工厂方法）
// 初始状态为pending
func NewOrder(userID, bookID uint, totalAmount int64) *Order {
	now := time.Now()
	return &Order{
		UserID:      userID,
		BookID:      bookID,
		TotalAmount: totalAmount,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ChangeStatus 修改订单状态（领域行为）
// 只校验目标状态取值，不校验流转合法性
func (o *Order) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

// IsPlacedBy 检查订单是否由指定用户下单
func (o *Order) IsPlacedBy(userID uint) bool {
	return o.UserID == userID
}
