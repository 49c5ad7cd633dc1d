package seller

import (
	"context"
	"regexp"
)

// Service 卖家领域服务接口
type Service interface {
	// CreateSeller 创建卖家店铺
	// 业务规则：
	// - 店铺名称非空
	// - GSTIN为15位字母数字，全局唯一（先查询后插入，数据库UNIQUE索引兜底）
	// - userID为当前登录用户（由调用方从认证上下文传入）
	CreateSeller(ctx context.Context, userID uint, shopName, gstin string) (*Seller, error)

	// GetByID 根据ID查询卖家
	GetByID(ctx context.Context, id uint) (*Seller, error)

	// ListByUser 查询某用户的全部卖家店铺
	// 无记录时返回ErrSellerNotFound
	ListByUser(ctx context.Context, userID uint) ([]*Seller, error)

	// List 查询全部卖家
	List(ctx context.Context) ([]*Seller, error)

	// Update 更新卖家信息（仅店铺名称与审核状态）
	Update(ctx context.Context, id uint, shopName string, approvedStatus *bool) (*Seller, error)
}

type service struct {
	repo Repository
}

// NewService 创建卖家领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// gstinPattern GSTIN格式：15位大写字母或数字
// 简化实现：不校验州编码和校验位
var gstinPattern = regexp.MustCompile(`^[0-9A-Z]{15}$`)

// CreateSeller 创建卖家店铺
func (s *service) CreateSeller(ctx context.Context, userID uint, shopName, gstin string) (*Seller, error) {
	// 1. 店铺名称校验
	if shopName == "" {
		return nil, ErrInvalidShopName
	}

	// 2. GSTIN格式校验
	if !gstinPattern.MatchString(gstin) {
		return nil, ErrInvalidGSTIN
	}

	// 3. GSTIN唯一性检查
	// 注意：先查询后插入存在并发窗口，数据库UNIQUE索引是最终保证
	exists, err := s.repo.ExistsByGSTIN(ctx, gstin)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrGSTINDuplicate
	}

	// 4. 创建实体并持久化
	seller := NewSeller(userID, shopName, gstin)
	if err := s.repo.Create(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}

// GetByID 根据ID查询卖家
func (s *service) GetByID(ctx context.Context, id uint) (*Seller, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByUser 查询某用户的全部卖家店铺
// 业务规则：该用户没有任何店铺时返回ErrSellerNotFound
func (s *service) ListByUser(ctx context.Context, userID uint) ([]*Seller, error) {
	sellers, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(sellers) == 0 {
		return nil, ErrSellerNotFound
	}
	return sellers, nil
}

// List 查询全部卖家
func (s *service) List(ctx context.Context) ([]*Seller, error) {
	return s.repo.List(ctx)
}

// Update 更新卖家信息
// 只有店铺名称与审核状态可修改；GSTIN创建后不可变
func (s *service) Update(ctx context.Context, id uint, shopName string, approvedStatus *bool) (*Seller, error) {
	seller, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	seller.UpdateInfo(shopName, approvedStatus)
	if err := s.repo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return seller, nil
}
