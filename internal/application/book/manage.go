package book

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
	"github.com/pratikmusmade/bookmart/internal/domain/order"
	"github.com/pratikmusmade/bookmart/internal/domain/review"
	"github.com/pratikmusmade/bookmart/internal/infrastructure/persistence/mysql"
)

// ManageBooksUseCase 图书管理用例（更新与级联删除）
type ManageBooksUseCase struct {
	bookService book.Service
	bookRepo    book.Repository
	orderRepo   order.Repository
	reviewRepo  review.Repository
	txManager   *mysql.TxManager
}

// NewManageBooksUseCase 创建图书管理用例
func NewManageBooksUseCase(
	bookService book.Service,
	bookRepo book.Repository,
	orderRepo order.Repository,
	reviewRepo review.Repository,
	txManager *mysql.TxManager,
) *ManageBooksUseCase {
	return &ManageBooksUseCase{
		bookService: bookService,
		bookRepo:    bookRepo,
		orderRepo:   orderRepo,
		reviewRepo:  reviewRepo,
		txManager:   txManager,
	}
}

// UpdateBookRequest 图书更新请求DTO
// 指针/空值表示不修改对应字段
type UpdateBookRequest struct {
	Title              string
	Author             string
	Category           string
	Price              *int64
	AvailabilityStatus *bool
	RentalOption       *bool
	Condition          string
	Quantity           *uint
	ImageURL           string
}

// Update 更新图书信息（通用更新，不走上架合并逻辑）
func (uc *ManageBooksUseCase) Update(ctx context.Context, id uint, req UpdateBookRequest) (*BookInfo, error) {
	b, err := uc.bookService.Update(ctx, id, book.UpdateParams{
		Title:              req.Title,
		Author:             req.Author,
		Category:           req.Category,
		Price:              req.Price,
		AvailabilityStatus: req.AvailabilityStatus,
		RentalOption:       req.RentalOption,
		Condition:          book.Condition(req.Condition),
		Quantity:           req.Quantity,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	info := toBookInfo(b)
	return &info, nil
}

// Delete 删除图书（级联删除）
// 图书关联的订单与评价一并删除，整个过程在同一事务内执行
func (uc *ManageBooksUseCase) Delete(ctx context.Context, id uint) error {
	// 先确认图书存在（不存在直接404，不开事务）
	if _, err := uc.bookRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.DeleteByBook(txCtx, id); err != nil {
			return err
		}
		if err := uc.reviewRepo.DeleteByBook(txCtx, id); err != nil {
			return err
		}
		return uc.bookRepo.Delete(txCtx, id)
	})
}
