package review

import (
	"context"
)

// Repository 评价仓储接口（依赖倒置原则）
type Repository interface {
	// Create 创建评价
	Create(ctx context.Context, review *Review) error

	// FindByID 根据ID查找评价
	// 如果不存在，返回ErrReviewNotFound
	FindByID(ctx context.Context, id uint) (*Review, error)

	// List 查询全部评价
	List(ctx context.Context) ([]*Review, error)

	// ListByBook 查询某图书的全部评价
	ListByBook(ctx context.Context, bookID uint) ([]*Review, error)

	// Update 更新评价
	Update(ctx context.Context, review *Review) error

	// Delete 删除评价
	Delete(ctx context.Context, id uint) error

	// DeleteByBook 删除某图书的全部评价（级联删除时使用）
	DeleteByBook(ctx context.Context, bookID uint) error
}
