package dto

// CreateReviewRequest HTTP层创建评价请求
// 评价人不出现在请求体中（取当前登录用户）；
// 评分区间校验在领域服务完成，保证错误码一致
type CreateReviewRequest struct {
	BookID  uint   `json:"book_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// UpdateReviewRequest HTTP层评价更新请求
// Rating为0表示不修改评分
type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
