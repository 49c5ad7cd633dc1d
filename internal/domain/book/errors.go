package book

import (
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrInvalidCondition 品相取值非法（只允许new/used）
	ErrInvalidCondition = apperrors.New(apperrors.ErrCodeInvalidCondition, "图书品相只能是new或used")

	// ErrEmptyTitle 书名为空
	ErrEmptyTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrEmptyAuthor 作者为空
	ErrEmptyAuthor = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")

	// ErrSellerNotExists 上架时指定的卖家不存在
	// 属于参数校验错误（引用无法解析），不是404
	ErrSellerNotExists = apperrors.New(apperrors.ErrCodeInvalidParams, "指定的卖家不存在")
)
