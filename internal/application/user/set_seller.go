package user

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/user"
)

// SetSellerUseCase 开通卖家身份用例
// 幂等操作：已是卖家的用户重复调用返回当前状态，不报错
type SetSellerUseCase struct {
	userService user.Service
}

// NewSetSellerUseCase 创建开通卖家用例
func NewSetSellerUseCase(userService user.Service) *SetSellerUseCase {
	return &SetSellerUseCase{userService: userService}
}

// Execute 执行开通卖家
// userID为当前登录用户（从认证中间件获取），不信任请求体
func (uc *SetSellerUseCase) Execute(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userService.BecomeSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}
