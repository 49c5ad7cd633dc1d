package seller

import (
	"context"
)

// Repository 卖家仓储接口（依赖倒置原则）
// 由domain层定义接口，infrastructure层实现
type Repository interface {
	// Create 创建卖家
	// GSTIN重复时返回ErrGSTINDuplicate（数据库UNIQUE索引兜底）
	Create(ctx context.Context, seller *Seller) error

	// FindByID 根据ID查找卖家
	// 如果不存在，返回ErrSellerNotFound
	FindByID(ctx context.Context, id uint) (*Seller, error)

	// FindByUser 查询某用户拥有的全部卖家店铺
	// 无记录时返回空切片（是否视为NotFound由调用方决定）
	FindByUser(ctx context.Context, userID uint) ([]*Seller, error)

	// ExistsByGSTIN 检查GSTIN是否已被使用
	ExistsByGSTIN(ctx context.Context, gstin string) (bool, error)

	// List 查询全部卖家
	List(ctx context.Context) ([]*Seller, error)

	// Update 更新卖家信息
	Update(ctx context.Context, seller *Seller) error

	// Delete 删除卖家
	Delete(ctx context.Context, id uint) error
}
