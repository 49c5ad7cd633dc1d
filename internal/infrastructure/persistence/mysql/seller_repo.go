package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pratikmusmade/bookmart/internal/domain/seller"
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// sellerRepository 卖家仓储实现（MySQL）
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository 创建卖家仓储
func NewSellerRepository(db *gorm.DB) seller.Repository {
	return &sellerRepository{db: db}
}

// Create 创建卖家
// GSTIN唯一性由数据库UNIQUE索引兜底（Service层先查询后插入存在并发窗口）
func (r *sellerRepository) Create(ctx context.Context, s *seller.Seller) error {
	model := &SellerModel{
		UserID:         s.UserID,
		ShopName:       s.ShopName,
		GSTIN:          s.GSTIN,
		ApprovedStatus: s.ApprovedStatus,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return seller.ErrGSTINDuplicate
		}
		return apperrors.Wrap(err, "创建卖家失败")
	}

	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	s.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找卖家
func (r *sellerRepository) FindByID(ctx context.Context, id uint) (*seller.Seller, error) {
	var model SellerModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, seller.ErrSellerNotFound
		}
		return nil, apperrors.Wrap(err, "查询卖家失败")
	}

	return toSellerEntity(&model), nil
}

// FindByUser 查询某用户拥有的全部卖家店铺
// 无记录时返回空切片
func (r *sellerRepository) FindByUser(ctx context.Context, userID uint) ([]*seller.Seller, error) {
	var models []SellerModel
	err := getDB(ctx, r.db).Where("user_id = ?", userID).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询卖家失败")
	}

	sellers := make([]*seller.Seller, len(models))
	for i := range models {
		sellers[i] = toSellerEntity(&models[i])
	}
	return sellers, nil
}

// ExistsByGSTIN 检查GSTIN是否已被使用
func (r *sellerRepository) ExistsByGSTIN(ctx context.Context, gstin string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&SellerModel{}).Where("gstin = ?", gstin).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询GSTIN失败")
	}
	return count > 0, nil
}

// List 查询全部卖家
func (r *sellerRepository) List(ctx context.Context) ([]*seller.Seller, error) {
	var models []SellerModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询卖家列表失败")
	}

	sellers := make([]*seller.Seller, len(models))
	for i := range models {
		sellers[i] = toSellerEntity(&models[i])
	}
	return sellers, nil
}

// Update 更新卖家信息
func (r *sellerRepository) Update(ctx context.Context, s *seller.Seller) error {
	model := &SellerModel{
		ID:             s.ID,
		UserID:         s.UserID,
		ShopName:       s.ShopName,
		GSTIN:          s.GSTIN,
		ApprovedStatus: s.ApprovedStatus,
		CreatedAt:      s.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新卖家失败")
	}

	s.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除卖家
func (r *sellerRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&SellerModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除卖家失败")
	}

	if result.RowsAffected == 0 {
		return seller.ErrSellerNotFound
	}

	return nil
}

// toSellerEntity GORM模型 → 领域实体
func toSellerEntity(model *SellerModel) *seller.Seller {
	return &seller.Seller{
		ID:             model.ID,
		UserID:         model.UserID,
		ShopName:       model.ShopName,
		GSTIN:          model.GSTIN,
		ApprovedStatus: model.ApprovedStatus,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
