package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pratikmusmade/bookmart/internal/domain/request"
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// requestRepository 求书单仓储实现（MySQL）
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository 创建求书单仓储
func NewRequestRepository(db *gorm.DB) request.Repository {
	return &requestRepository{db: db}
}

// Create 创建求书单
func (r *requestRepository) Create(ctx context.Context, req *request.Request) error {
	model := &RequestModel{
		UserID:           req.UserID,
		BookTitle:        req.BookTitle,
		Author:           req.Author,
		Status:           string(req.Status),
		RequestStatus:    string(req.RequestStatus),
		AcceptedSellerID: req.AcceptedSellerID,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建求书单失败")
	}

	req.ID = model.ID
	req.CreatedAt = model.CreatedAt
	req.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找求书单
func (r *requestRepository) FindByID(ctx context.Context, id uint) (*request.Request, error) {
	var model RequestModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, request.ErrRequestNotFound
		}
		return nil, apperrors.Wrap(err, "查询求书单失败")
	}

	return toRequestEntity(&model), nil
}

// List 查询全部求书单
func (r *requestRepository) List(ctx context.Context) ([]*request.Request, error) {
	var models []RequestModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询求书单列表失败")
	}

	requests := make([]*request.Request, len(models))
	for i := range models {
		requests[i] = toRequestEntity(&models[i])
	}
	return requests, nil
}

// ListByUser 查询某用户发起的全部求书单
func (r *requestRepository) ListByUser(ctx context.Context, userID uint) ([]*request.Request, error) {
	var models []RequestModel
	err := getDB(ctx, r.db).Where("user_id = ?", userID).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询用户求书单失败")
	}

	requests := make([]*request.Request, len(models))
	for i := range models {
		requests[i] = toRequestEntity(&models[i])
	}
	return requests, nil
}

// Update 更新求书单
func (r *requestRepository) Update(ctx context.Context, req *request.Request) error {
	model := &RequestModel{
		ID:               req.ID,
		UserID:           req.UserID,
		BookTitle:        req.BookTitle,
		Author:           req.Author,
		Status:           string(req.Status),
		RequestStatus:    string(req.RequestStatus),
		AcceptedSellerID: req.AcceptedSellerID,
		CreatedAt:        req.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新求书单失败")
	}

	req.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除求书单
func (r *requestRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&RequestModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除求书单失败")
	}

	if result.RowsAffected == 0 {
		return request.ErrRequestNotFound
	}

	return nil
}

// toRequestEntity GORM模型 → 领域实体
func toRequestEntity(model *RequestModel) *request.Request {
	return &request.Request{
		ID:               model.ID,
		UserID:           model.UserID,
		BookTitle:        model.BookTitle,
		Author:           model.Author,
		Status:           request.Status(model.Status),
		RequestStatus:    request.WorkflowStatus(model.RequestStatus),
		AcceptedSellerID: model.AcceptedSellerID,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}
