package dto

// CreateSellerRequest HTTP层开店请求
// 归属人不出现在请求体中（取当前登录用户）
type CreateSellerRequest struct {
	ShopName string `json:"shop_name" binding:"required,max=100"`
	GSTIN    string `json:"gstin" binding:"required,len=15"`
}

// UpdateSellerRequest HTTP层卖家更新请求
// 只开放店铺名称与审核状态两个字段；GSTIN创建后不可变
type UpdateSellerRequest struct {
	ShopName       string `json:"shop_name" binding:"omitempty,max=100"`
	ApprovedStatus *bool  `json:"approved_status"`
}
