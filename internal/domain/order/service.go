package order

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
)

// CreateParams 创建订单参数
type CreateParams struct {
	UserID      uint  // 买家（从认证上下文取得，不信任请求体）
	BookID      uint  // 购买的图书
	TotalAmount int64 // 订单金额(分)
	Status      Status
}

// Service 订单领域服务接口
type Service interface {
	// CreateOrder 创建订单
	// 业务规则：
	// - 金额必须大于0
	// - 图书必须存在（引用无法解析时按参数错误处理）
	// - 状态缺省为pending，显式传入时必须是合法取值
	CreateOrder(ctx context.Context, params CreateParams) (*Order, error)

	// GetByID 根据ID查询订单
	GetByID(ctx context.Context, id uint) (*Order, error)

	// List 分页查询订单列表
	List(ctx context.Context, params ListParams) ([]*Order, int64, error)

	// UpdateStatus 修改订单状态
	// 不限制流转方向，只校验目标状态取值
	UpdateStatus(ctx context.Context, id uint, status Status) (*Order, error)
}

type service struct {
	repo     Repository
	bookRepo book.Repository
}

// NewService 创建订单领域服务
func NewService(repo Repository, bookRepo book.Repository) Service {
	return &service{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

// CreateOrder 创建订单
func (s *service) CreateOrder(ctx context.Context, params CreateParams) (*Order, error) {
	// 1. 金额校验
	if params.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	// 2. 图书存在性校验
	if _, err := s.bookRepo.FindByID(ctx, params.BookID); err != nil {
		return nil, ErrBookNotExists
	}

	// 3. 创建实体并持久化
	o := NewOrder(params.UserID, params.BookID, params.TotalAmount)
	if params.Status != "" {
		if err := o.ChangeStatus(params.Status); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// GetByID 根据ID查询订单
func (s *service) GetByID(ctx context.Context, id uint) (*Order, error) {
	return s.repo.FindByID(ctx, id)
}

// List 分页查询订单列表
func (s *service) List(ctx context.Context, params ListParams) ([]*Order, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 10
	}
	return s.repo.List(ctx, params)
}

// UpdateStatus 修改订单状态
func (s *service) UpdateStatus(ctx context.Context, id uint, status Status) (*Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.ChangeStatus(status); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}
