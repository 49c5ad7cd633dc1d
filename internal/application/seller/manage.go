package seller

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
	"github.com/pratikmusmade/bookmart/internal/domain/order"
	"github.com/pratikmusmade/bookmart/internal/domain/review"
	"github.com/pratikmusmade/bookmart/internal/domain/seller"
	"github.com/pratikmusmade/bookmart/internal/infrastructure/persistence/mysql"
)

// ManageSellersUseCase 卖家管理用例
// 设计说明：
// 1. 列表、查询、更新走领域服务
// 2. 删除是级联操作：店铺下的图书、以及图书关联的订单和评价
//    必须一并删除，整个过程放在一个事务里，要么全成功要么全失败
type ManageSellersUseCase struct {
	sellerService seller.Service
	sellerRepo    seller.Repository
	bookRepo      book.Repository
	orderRepo     order.Repository
	reviewRepo    review.Repository
	txManager     *mysql.TxManager
}

// NewManageSellersUseCase 创建卖家管理用例
func NewManageSellersUseCase(
	sellerService seller.Service,
	sellerRepo seller.Repository,
	bookRepo book.Repository,
	orderRepo order.Repository,
	reviewRepo review.Repository,
	txManager *mysql.TxManager,
) *ManageSellersUseCase {
	return &ManageSellersUseCase{
		sellerService: sellerService,
		sellerRepo:    sellerRepo,
		bookRepo:      bookRepo,
		orderRepo:     orderRepo,
		reviewRepo:    reviewRepo,
		txManager:     txManager,
	}
}

// List 查询全部卖家
func (uc *ManageSellersUseCase) List(ctx context.Context) ([]SellerInfo, error) {
	sellers, err := uc.sellerService.List(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]SellerInfo, len(sellers))
	for i, s := range sellers {
		infos[i] = toSellerInfo(s)
	}
	return infos, nil
}

// Get 根据ID查询卖家
func (uc *ManageSellersUseCase) Get(ctx context.Context, id uint) (*SellerInfo, error) {
	s, err := uc.sellerService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := toSellerInfo(s)
	return &info, nil
}

// ListByUser 查询某用户的全部卖家店铺
// 该用户没有任何店铺时返回ErrSellerNotFound（HTTP层映射为404）
func (uc *ManageSellersUseCase) ListByUser(ctx context.Context, userID uint) ([]SellerInfo, error) {
	sellers, err := uc.sellerService.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]SellerInfo, len(sellers))
	for i, s := range sellers {
		infos[i] = toSellerInfo(s)
	}
	return infos, nil
}

// UpdateSellerRequest 卖家更新请求DTO
// 只有店铺名称与审核状态可修改；GSTIN与归属人创建后不可变
type UpdateSellerRequest struct {
	ShopName       string
	ApprovedStatus *bool
}

// Update 更新卖家信息
func (uc *ManageSellersUseCase) Update(ctx context.Context, id uint, req UpdateSellerRequest) (*SellerInfo, error) {
	s, err := uc.sellerService.Update(ctx, id, req.ShopName, req.ApprovedStatus)
	if err != nil {
		return nil, err
	}

	info := toSellerInfo(s)
	return &info, nil
}

// Delete 删除卖家（级联删除）
// 删除顺序：图书的订单 → 图书的评价 → 图书 → 卖家
// 全部操作在同一事务内执行，任一步失败整体回滚
func (uc *ManageSellersUseCase) Delete(ctx context.Context, id uint) error {
	// 先确认卖家存在（不存在直接404，不开事务）
	if _, err := uc.sellerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 枚举店铺下的图书，逐本清理订单与评价
		books, err := uc.bookRepo.ListBySeller(txCtx, id)
		if err != nil {
			return err
		}
		for _, b := range books {
			if err := uc.orderRepo.DeleteByBook(txCtx, b.ID); err != nil {
				return err
			}
			if err := uc.reviewRepo.DeleteByBook(txCtx, b.ID); err != nil {
				return err
			}
		}

		// 2. 删除店铺下的全部图书
		if err := uc.bookRepo.DeleteBySeller(txCtx, id); err != nil {
			return err
		}

		// 3. 删除卖家本身
		return uc.sellerRepo.Delete(txCtx, id)
	})
}
