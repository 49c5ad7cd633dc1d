package dto

// PublishBookRequest HTTP层图书上架请求
// 品相取值校验（new/used）在领域服务完成，保证错误码一致
type PublishBookRequest struct {
	SellerID           uint   `json:"seller_id" binding:"required"`
	Title              string `json:"title" binding:"required,max=200"`
	Author             string `json:"author" binding:"required,max=100"`
	Category           string `json:"category" binding:"omitempty,max=50"`
	Price              int64  `json:"price"`
	AvailabilityStatus *bool  `json:"availability_status"` // 省略时默认可售
	RentalOption       bool   `json:"rental_option"`
	Condition          string `json:"condition" binding:"required"`
	Quantity           uint   `json:"quantity"` // 0取默认值1
	ImageURL           string `json:"image_url" binding:"omitempty,max=500"`
}

// UpdateBookRequest HTTP层图书更新请求
// 省略的字段不修改（通用更新，不走上架合并逻辑）
type UpdateBookRequest struct {
	Title              string `json:"title" binding:"omitempty,max=200"`
	Author             string `json:"author" binding:"omitempty,max=100"`
	Category           string `json:"category" binding:"omitempty,max=50"`
	Price              *int64 `json:"price"`
	AvailabilityStatus *bool  `json:"availability_status"`
	RentalOption       *bool  `json:"rental_option"`
	Condition          string `json:"condition"`
	Quantity           *uint  `json:"quantity"`
	ImageURL           string `json:"image_url" binding:"omitempty,max=500"`
}

// ListBooksQuery HTTP层图书列表查询参数
type ListBooksQuery struct {
	Keyword   string `form:"keyword"`
	Category  string `form:"category"`
	SellerID  uint   `form:"seller_id"`
	Condition string `form:"condition"`
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"page_size,default=10"`
}
