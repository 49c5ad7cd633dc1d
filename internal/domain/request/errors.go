package request

import (
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// 求书单领域错误定义
var (
	// ErrRequestNotFound 求书单不存在
	ErrRequestNotFound = apperrors.New(apperrors.ErrCodeRequestNotFound, "求书单不存在")

	// ErrInvalidStatus 处理结果状态取值非法
	ErrInvalidStatus = apperrors.New(apperrors.ErrCodeInvalidReqStatus, "求书单状态只能是pending/fulfilled/rejected")

	// ErrInvalidWorkflowStatus 工作流状态取值非法
	ErrInvalidWorkflowStatus = apperrors.New(apperrors.ErrCodeInvalidReqStatus, "求书单流转状态只能是open/in_progress/closed")

	// ErrEmptyBookTitle 求购书名为空
	ErrEmptyBookTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "求购书名不能为空")

	// ErrSellerNotExists 指定的接单卖家不存在
	ErrSellerNotExists = apperrors.New(apperrors.ErrCodeInvalidParams, "指定的卖家不存在")
)
