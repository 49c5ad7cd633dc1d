package request

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/seller"
)

// Service 求书单领域服务接口
type Service interface {
	// CreateRequest 创建求书单
	// 业务规则：
	// - 求购书名非空
	// - 发起人为当前登录用户（由调用方从认证上下文传入）
	CreateRequest(ctx context.Context, userID uint, bookTitle, author string) (*Request, error)

	// GetByID 根据ID查询求书单
	GetByID(ctx context.Context, id uint) (*Request, error)

	// List 查询全部求书单
	List(ctx context.Context) ([]*Request, error)

	// ListByUser 查询某用户发起的全部求书单
	ListByUser(ctx context.Context, userID uint) ([]*Request, error)

	// Update 修改求书单
	// 指定接单卖家时校验卖家存在性；两套状态字段独立校验
	Update(ctx context.Context, id uint, params UpdateParams) (*Request, error)
}

type service struct {
	repo       Repository
	sellerRepo seller.Repository
}

// NewService 创建求书单领域服务
func NewService(repo Repository, sellerRepo seller.Repository) Service {
	return &service{
		repo:       repo,
		sellerRepo: sellerRepo,
	}
}

// CreateRequest 创建求书单
func (s *service) CreateRequest(ctx context.Context, userID uint, bookTitle, author string) (*Request, error) {
	if bookTitle == "" {
		return nil, ErrEmptyBookTitle
	}

	r := NewRequest(userID, bookTitle, author)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// GetByID 根据ID查询求书单
func (s *service) GetByID(ctx context.Context, id uint) (*Request, error) {
	return s.repo.FindByID(ctx, id)
}

// List 查询全部求书单
func (s *service) List(ctx context.Context) ([]*Request, error) {
	return s.repo.List(ctx)
}

// ListByUser 查询某用户发起的全部求书单
func (s *service) ListByUser(ctx context.Context, userID uint) ([]*Request, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update 修改求书单
func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*Request, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 指定接单卖家时校验卖家存在性
	if params.AcceptedSellerID != nil {
		if _, err := s.sellerRepo.FindByID(ctx, *params.AcceptedSellerID); err != nil {
			return nil, ErrSellerNotExists
		}
	}

	if err := r.Update(params); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}
