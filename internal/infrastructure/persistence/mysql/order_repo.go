package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pratikmusmade/bookmart/internal/domain/order"
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// orderRepository 订单仓储实现（MySQL）
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		UserID:      o.UserID,
		BookID:      o.BookID,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找订单
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}

	return toOrderEntity(&model), nil
}

// List 分页查询订单列表
func (r *orderRepository) List(ctx context.Context, params order.ListParams) ([]*order.Order, int64, error) {
	var models []OrderModel
	var total int64

	query := getDB(ctx, r.db).Model(&OrderModel{})

	if params.UserID != 0 {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.BookID != 0 {
		query = query.Where("book_id = ?", params.BookID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", string(params.Status))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	offset := (params.Page - 1) * params.PageSize
	query = query.Order("created_at DESC").Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}

	return orders, total, nil
}

// Update 更新订单
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		ID:          o.ID,
		UserID:      o.UserID,
		BookID:      o.BookID,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新订单失败")
	}

	o.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除订单
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&OrderModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除订单失败")
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// DeleteByBook 删除某图书的全部订单
// 级联删除路径，必须在TxManager事务内调用
func (r *orderRepository) DeleteByBook(ctx context.Context, bookID uint) error {
	err := getDB(ctx, r.db).Where("book_id = ?", bookID).Delete(&OrderModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除图书订单失败")
	}
	return nil
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	return &order.Order{
		ID:          model.ID,
		UserID:      model.UserID,
		BookID:      model.BookID,
		TotalAmount: model.TotalAmount,
		Status:      order.Status(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
