package dto

// CreateBookRequestRequest HTTP层创建求书单请求
// 发起人不出现在请求体中（取当前登录用户）
type CreateBookRequestRequest struct {
	BookTitle string `json:"book_title" binding:"required,max=200"`
	Author    string `json:"author" binding:"omitempty,max=100"`
}

// UpdateBookRequestRequest HTTP层求书单更新请求
// status与request_status两套状态独立更新，取值校验在领域服务
type UpdateBookRequestRequest struct {
	BookTitle        string `json:"book_title" binding:"omitempty,max=200"`
	Author           string `json:"author" binding:"omitempty,max=100"`
	Status           string `json:"status"`
	RequestStatus    string `json:"request_status"`
	AcceptedSellerID *uint  `json:"accepted_seller_id"`
}
