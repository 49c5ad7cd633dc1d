package book

import (
	"context"
)

// ListParams 图书列表查询参数
type ListParams struct {
	Keyword   string    // 按书名/作者模糊搜索
	Category  string    // 按分类过滤
	SellerID  uint      // 按卖家过滤（0表示不过滤）
	Condition Condition // 按品相过滤（空表示不过滤）
	Page      int
	PageSize  int
}

// Repository 图书仓储接口（依赖倒置原则）
// 由domain层定义接口，infrastructure层实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// 如果不存在，返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindBySellerTitleAuthor 按(卖家,书名,作者)查找已有记录
	// 上架合并逻辑的查询入口；存在多条时返回最早创建的一条，
	// 不存在时返回ErrBookNotFound
	FindBySellerTitleAuthor(ctx context.Context, sellerID uint, title, author string) (*Book, error)

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListBySeller 查询某卖家的全部图书
	ListBySeller(ctx context.Context, sellerID uint) ([]*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// UpdateQuantity 只更新库存数量（补货合并时使用，其它字段不落库）
	UpdateQuantity(ctx context.Context, id uint, quantity uint) error

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error

	// DeleteBySeller 删除某卖家的全部图书（级联删除时使用）
	DeleteBySeller(ctx context.Context, sellerID uint) error
}
