package seller

import (
	"time"
)

// Seller 卖家实体（聚合根）
// 设计说明：
// 1. 一个用户可以拥有多个卖家店铺（UserID非唯一）
// 2. GSTIN是印度商品服务税号，全局唯一（业务标识）
// 3. ApprovedStatus默认false，审核通过由管理员通过更新接口完成
type Seller struct {
	ID             uint
	UserID         uint   // 店铺所属用户ID
	ShopName       string // 店铺名称
	GSTIN          string // 税号（全局唯一，15位）
	ApprovedStatus bool   // 审核状态
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewSeller 创建新卖家（工厂方法）
// 所属用户由调用方从认证上下文传入，不接受请求体指定
func NewSeller(userID uint, shopName, gstin string) *Seller {
	now := time.Now()
	return &Seller{
		UserID:         userID,
		ShopName:       shopName,
		GSTIN:          gstin,
		ApprovedStatus: false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateInfo 更新店铺信息（领域行为）
// 只允许修改店铺名称与审核状态；GSTIN与所属用户创建后不可变
func (s *Seller) UpdateInfo(shopName string, approvedStatus *bool) {
	if shopName != "" {
		s.ShopName = shopName
	}
	if approvedStatus != nil {
		s.ApprovedStatus = *approvedStatus
	}
	s.UpdatedAt = time.Now()
}

// IsOwnedBy 检查店铺是否属于指定用户
func (s *Seller) IsOwnedBy(userID uint) bool {
	return s.UserID == userID
}
