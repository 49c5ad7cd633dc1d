package request

import (
	"context"
)

// Repository 求书单仓储接口（依赖倒置原则）
type Repository interface {
	// Create 创建求书单
	Create(ctx context.Context, request *Request) error

	// FindByID 根据ID查找求书单
	// 如果不存在，返回ErrRequestNotFound
	FindByID(ctx context.Context, id uint) (*Request, error)

	// List 查询全部求书单
	List(ctx context.Context) ([]*Request, error)

	// ListByUser 查询某用户发起的全部求书单
	ListByUser(ctx context.Context, userID uint) ([]*Request, error)

	// Update 更新求书单
	Update(ctx context.Context, request *Request) error

	// Delete 删除求书单
	Delete(ctx context.Context, id uint) error
}
