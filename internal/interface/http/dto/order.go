package dto

// CreateOrderRequest HTTP层下单请求
// 买家不出现在请求体中（取当前登录用户）
type CreateOrderRequest struct {
	BookID      uint   `json:"book_id" binding:"required"`
	TotalAmount int64  `json:"total_amount" binding:"required"`
	Status      string `json:"status"` // 可选，缺省pending
}

// UpdateOrderRequest HTTP层订单更新请求
type UpdateOrderRequest struct {
	TotalAmount *int64 `json:"total_amount"`
	Status      string `json:"status"`
}

// UpdateOrderStatusRequest HTTP层订单改状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrdersQuery HTTP层订单列表查询参数
type ListOrdersQuery struct {
	UserID   uint   `form:"user_id"`
	BookID   uint   `form:"book_id"`
	Status   string `form:"status"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=10"`
}
