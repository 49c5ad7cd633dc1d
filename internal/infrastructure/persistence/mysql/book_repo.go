package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// bookRepository 图书仓储实现（MySQL）
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. FindBySellerTitleAuthor是上架合并逻辑的查询入口，走idx_catalog复合索引
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		SellerID:           b.SellerID,
		Title:              b.Title,
		Author:             b.Author,
		Category:           b.Category,
		Price:              b.Price,
		AvailabilityStatus: b.AvailabilityStatus,
		RentalOption:       b.RentalOption,
		Condition:          string(b.Condition),
		Quantity:           b.Quantity,
		ImageURL:           b.ImageURL,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindBySellerTitleAuthor 按(卖家,书名,作者)查找已有记录
// 存在多条时取最早创建的一条（按主键升序First）
func (r *bookRepository) FindBySellerTitleAuthor(ctx context.Context, sellerID uint, title, author string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Where("seller_id = ? AND title = ? AND author = ?", sellerID, title, author).
		Order("id ASC").
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// List 分页查询图书列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})

	// 关键词搜索（搜索书名、作者）
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR author LIKE ?", keyword, keyword)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.SellerID != 0 {
		query = query.Where("seller_id = ?", params.SellerID)
	}
	if params.Condition != "" {
		query = query.Where("`condition` = ?", string(params.Condition))
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 分页，按创建时间降序
	offset := (params.Page - 1) * params.PageSize
	query = query.Order("created_at DESC").Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// ListBySeller 查询某卖家的全部图书
func (r *bookRepository) ListBySeller(ctx context.Context, sellerID uint) ([]*book.Book, error) {
	var models []BookModel
	err := getDB(ctx, r.db).Where("seller_id = ?", sellerID).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询卖家图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		ID:                 b.ID,
		SellerID:           b.SellerID,
		Title:              b.Title,
		Author:             b.Author,
		Category:           b.Category,
		Price:              b.Price,
		AvailabilityStatus: b.AvailabilityStatus,
		RentalOption:       b.RentalOption,
		Condition:          string(b.Condition),
		Quantity:           b.Quantity,
		ImageURL:           b.ImageURL,
		CreatedAt:          b.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdateQuantity 只更新库存数量
// 补货合并路径专用：UPDATE语句只落quantity一个字段，
// 其它字段保持数据库原值不被覆盖
func (r *bookRepository) UpdateQuantity(ctx context.Context, id uint, quantity uint) error {
	result := getDB(ctx, r.db).Model(&BookModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// DeleteBySeller 删除某卖家的全部图书
// 级联删除路径，必须在TxManager事务内调用
func (r *bookRepository) DeleteBySeller(ctx context.Context, sellerID uint) error {
	err := getDB(ctx, r.db).Where("seller_id = ?", sellerID).Delete(&BookModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除卖家图书失败")
	}
	return nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:                 model.ID,
		SellerID:           model.SellerID,
		Title:              model.Title,
		Author:             model.Author,
		Category:           model.Category,
		Price:              model.Price,
		AvailabilityStatus: model.AvailabilityStatus,
		RentalOption:       model.RentalOption,
		Condition:          book.Condition(model.Condition),
		Quantity:           model.Quantity,
		ImageURL:           model.ImageURL,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}
