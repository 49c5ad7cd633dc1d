package review

import (
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// 评价领域错误定义
var (
	// ErrReviewNotFound 评价不存在
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "评价不存在")

	// ErrInvalidRating 评分超出1~5范围
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidRating, "评分必须在1到5之间")

	// ErrBookNotExists 评价时指定的图书不存在
	ErrBookNotExists = apperrors.New(apperrors.ErrCodeInvalidParams, "指定的图书不存在")
)
