package order

import (
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidStatus 订单状态取值非法
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "订单状态只能是pending/shipped/delivered/cancelled")

	// ErrInvalidAmount 订单金额必须为正数
	ErrInvalidAmount = apperrors.New(apperrors.ErrCodeInvalidAmount, "订单金额必须大于0")

	// ErrBookNotExists 下单时指定的图书不存在
	ErrBookNotExists = apperrors.New(apperrors.ErrCodeInvalidParams, "指定的图书不存在")

	// ErrUserNotExists 指定的用户不存在
	ErrUserNotExists = apperrors.New(apperrors.ErrCodeInvalidParams, "指定的用户不存在")
)
