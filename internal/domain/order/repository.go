package order

import (
	"context"
)

// ListParams 订单列表查询参数
type ListParams struct {
	UserID   uint   // 按买家过滤（0表示不过滤）
	BookID   uint   // 按图书过滤（0表示不过滤）
	Status   Status // 按状态过滤（空表示不过滤）
	Page     int
	PageSize int
}

// Repository 订单仓储接口（依赖倒置原则）
type Repository interface {
	// Create 创建订单
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单
	// 如果不存在，返回ErrOrderNotFound
	FindByID(ctx context.Context, id uint) (*Order, error)

	// List 分页查询订单列表
	List(ctx context.Context, params ListParams) ([]*Order, int64, error)

	// Update 更新订单
	Update(ctx context.Context, order *Order) error

	// Delete 删除订单
	Delete(ctx context.Context, id uint) error

	// DeleteByBook 删除某图书的全部订单（级联删除时使用）
	DeleteByBook(ctx context.Context, bookID uint) error
}
