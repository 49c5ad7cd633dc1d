package review

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/review"
)

// ReviewUseCase 评价用例（创建、浏览、更新、删除）
// 浏览接口开放访问，写操作需要登录
type ReviewUseCase struct {
	reviewService review.Service
	reviewRepo    review.Repository
}

// NewReviewUseCase 创建评价用例
func NewReviewUseCase(reviewService review.Service, reviewRepo review.Repository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewService: reviewService,
		reviewRepo:    reviewRepo,
	}
}

// CreateReviewRequest 创建评价请求DTO
type CreateReviewRequest struct {
	UserID  uint   // 评价人（从JWT中提取）
	BookID  uint   // 被评价的图书
	Rating  int    // 评分(1-5)
	Comment string // 评价内容
}

// Create 创建评价
// 评分区间与图书存在性校验由领域服务负责
func (uc *ReviewUseCase) Create(ctx context.Context, req CreateReviewRequest) (*ReviewInfo, error) {
	r, err := uc.reviewService.CreateReview(ctx, req.UserID, req.BookID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	info := toReviewInfo(r)
	return &info, nil
}

// List 查询评价列表
// bookID非0时只返回该图书的评价
func (uc *ReviewUseCase) List(ctx context.Context, bookID uint) ([]ReviewInfo, error) {
	var (
		reviews []*review.Review
		err     error
	)
	if bookID != 0 {
		reviews, err = uc.reviewService.ListByBook(ctx, bookID)
	} else {
		reviews, err = uc.reviewService.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	infos := make([]ReviewInfo, len(reviews))
	for i, r := range reviews {
		infos[i] = toReviewInfo(r)
	}
	return infos, nil
}

// Get 根据ID查询评价
func (uc *ReviewUseCase) Get(ctx context.Context, id uint) (*ReviewInfo, error) {
	r, err := uc.reviewService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := toReviewInfo(r)
	return &info, nil
}

// UpdateReviewRequest 评价更新请求DTO
// Rating为0/Comment为空表示不修改
type UpdateReviewRequest struct {
	Rating  int
	Comment string
}

// Update 修改评价
func (uc *ReviewUseCase) Update(ctx context.Context, id uint, req UpdateReviewRequest) (*ReviewInfo, error) {
	r, err := uc.reviewService.Update(ctx, id, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	info := toReviewInfo(r)
	return &info, nil
}

// Delete 删除评价
func (uc *ReviewUseCase) Delete(ctx context.Context, id uint) error {
	return uc.reviewRepo.Delete(ctx, id)
}

// ReviewInfo 评价信息DTO
type ReviewInfo struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	BookID    uint   `json:"book_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// toReviewInfo 领域实体 → DTO
func toReviewInfo(r *review.Review) ReviewInfo {
	return ReviewInfo{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
