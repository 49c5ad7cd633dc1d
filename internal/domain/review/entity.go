package review

import (
	"time"
)

// Review 图书评价实体
// 设计说明：
// 1. 评价人为提交时的登录用户（UserID），不可由请求体指定
// 2. 评分为1~5的整数，边界值1和5均合法
// 3. 同一用户可对同一本书多次评价（不做唯一约束）
type Review struct {
	ID        uint
	UserID    uint   // 评价人用户ID
	BookID    uint   // 被评价的图书ID
	Rating    int    // 评分(1-5)
	Comment   string // 评价内容（可为空）
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReview 创建新评价（工厂方法）
func NewReview(userID, bookID uint, rating int, comment string) *Review {
	now := time.Now()
	return &Review{
		UserID:    userID,
		BookID:    bookID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidRating 检查评分是否在合法区间内
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// Update 修改评价内容（领域行为）
// rating为0表示不修改评分
func (r *Review) Update(rating int, comment string) error {
	if rating != 0 {
		if !ValidRating(rating) {
			return ErrInvalidRating
		}
		r.Rating = rating
	}
	if comment != "" {
		r.Comment = comment
	}
	r.UpdatedAt = time.Now()
	return nil
}

// IsWrittenBy 检查评价是否由指定用户提交
func (r *Review) IsWrittenBy(userID uint) bool {
	return r.UserID == userID
}
