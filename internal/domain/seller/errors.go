package seller

import (
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// 卖家领域错误定义
var (
	// ErrSellerNotFound 卖家不存在
	ErrSellerNotFound = apperrors.New(apperrors.ErrCodeSellerNotFound, "卖家不存在")

	// ErrGSTINDuplicate GSTIN已被其他卖家使用
	ErrGSTINDuplicate = apperrors.New(apperrors.ErrCodeGSTINDuplicate, "该GSTIN已被注册")

	// ErrInvalidGSTIN GSTIN格式不正确
	ErrInvalidGSTIN = apperrors.New(apperrors.ErrCodeInvalidParams, "GSTIN格式不正确（应为15位）")

	// ErrInvalidShopName 店铺名称不合法
	ErrInvalidShopName = apperrors.New(apperrors.ErrCodeInvalidParams, "店铺名称不能为空")
)
