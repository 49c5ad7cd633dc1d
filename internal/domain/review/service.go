package review

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
)

// Service 评价领域服务接口
type Service interface {
	// CreateReview 创建评价
	// 业务规则：
	// - 评分必须在1~5之间（含边界）
	// - 图书必须存在
	CreateReview(ctx context.Context, userID, bookID uint, rating int, comment string) (*Review, error)

	// GetByID 根据ID查询评价
	GetByID(ctx context.Context, id uint) (*Review, error)

	// List 查询全部评价
	List(ctx context.Context) ([]*Review, error)

	// ListByBook 查询某图书的全部评价
	ListByBook(ctx context.Context, bookID uint) ([]*Review, error)

	// Update 修改评价
	Update(ctx context.Context, id uint, rating int, comment string) (*Review, error)
}

type service struct {
	repo     Repository
	bookRepo book.Repository
}

// NewService 创建评价领域服务
func NewService(repo Repository, bookRepo book.Repository) Service {
	return &service{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

// CreateReview 创建评价
func (s *service) CreateReview(ctx context.Context, userID, bookID uint, rating int, comment string) (*Review, error) {
	// 1. 评分区间校验
	if !ValidRating(rating) {
		return nil, ErrInvalidRating
	}

	// 2. 图书存在性校验
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, ErrBookNotExists
	}

	// 3. 创建实体并持久化
	r := NewReview(userID, bookID, rating, comment)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// GetByID 根据ID查询评价
func (s *service) GetByID(ctx context.Context, id uint) (*Review, error) {
	return s.repo.FindByID(ctx, id)
}

// List 查询全部评价
func (s *service) List(ctx context.Context) ([]*Review, error) {
	return s.repo.List(ctx)
}

// ListByBook 查询某图书的全部评价
func (s *service) ListByBook(ctx context.Context, bookID uint) ([]*Review, error) {
	return s.repo.ListByBook(ctx, bookID)
}

// Update 修改评价
func (s *service) Update(ctx context.Context, id uint, rating int, comment string) (*Review, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.Update(rating, comment); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}
