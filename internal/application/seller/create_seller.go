package seller

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/seller"
)

// CreateSellerUseCase 创建卖家店铺用例
// 店铺归属人为当前登录用户，不可由请求体指定
type CreateSellerUseCase struct {
	sellerService seller.Service
}

// NewCreateSellerUseCase 创建开店用例
func NewCreateSellerUseCase(sellerService seller.Service) *CreateSellerUseCase {
	return &CreateSellerUseCase{sellerService: sellerService}
}

// CreateSellerRequest 开店请求DTO
type CreateSellerRequest struct {
	UserID   uint   // 当前登录用户ID（从认证中间件获取）
	ShopName string // 店铺名称
	GSTIN    string // GSTIN税号（15位，全局唯一）
}

// Execute 执行开店用例
// 业务规则校验（名称非空、GSTIN格式与唯一性）由领域服务负责
func (uc *CreateSellerUseCase) Execute(ctx context.Context, req CreateSellerRequest) (*SellerInfo, error) {
	s, err := uc.sellerService.CreateSeller(ctx, req.UserID, req.ShopName, req.GSTIN)
	if err != nil {
		return nil, err
	}

	info := toSellerInfo(s)
	return &info, nil
}

// SellerInfo 卖家信息DTO（多个用例共用）
type SellerInfo struct {
	ID             uint   `json:"id"`
	UserID         uint   `json:"user_id"`
	ShopName       string `json:"shop_name"`
	GSTIN          string `json:"gstin"`
	ApprovedStatus bool   `json:"approved_status"`
	CreatedAt      string `json:"created_at"`
}

// toSellerInfo 领域实体 → DTO
func toSellerInfo(s *seller.Seller) SellerInfo {
	return SellerInfo{
		ID:             s.ID,
		UserID:         s.UserID,
		ShopName:       s.ShopName,
		GSTIN:          s.GSTIN,
		ApprovedStatus: s.ApprovedStatus,
		CreatedAt:      s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
