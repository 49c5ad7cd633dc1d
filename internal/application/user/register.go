package user

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. 应用层负责用例编排，协调领域服务完成业务流程
// 2. 输入输出使用DTO（Data Transfer Object），与HTTP层解耦
// 3. 注册接口开放访问，IsAdmin不可通过注册设置
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Username  string
	Email     string
	Password  string // 明文密码（领域服务负责bcrypt加密）
	FirstName string
	LastName  string
}

// Execute 执行注册用例
// 业务规则校验（用户名长度、邮箱格式、密码强度、用户名唯一）由领域服务负责
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	u, err := uc.userService.Register(ctx, req.Username, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}

// UserInfo 用户信息DTO（多个用例共用）
type UserInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsSeller  bool   `json:"is_seller"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

// toUserInfo 领域实体 → DTO
func toUserInfo(u *user.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsSeller:  u.IsSeller,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
