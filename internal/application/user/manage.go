package user

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/user"
)

// ManageUsersUseCase 用户管理用例（管理员接口）
// /users下的列表、查询、更新、删除都经由此用例
type ManageUsersUseCase struct {
	userService user.Service
}

// NewManageUsersUseCase 创建用户管理用例
func NewManageUsersUseCase(userService user.Service) *ManageUsersUseCase {
	return &ManageUsersUseCase{userService: userService}
}

// List 查询全部用户
func (uc *ManageUsersUseCase) List(ctx context.Context) ([]UserInfo, error) {
	users, err := uc.userService.List(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, len(users))
	for i, u := range users {
		infos[i] = toUserInfo(u)
	}
	return infos, nil
}

// Get 根据ID查询用户
func (uc *ManageUsersUseCase) Get(ctx context.Context, id uint) (*UserInfo, error) {
	u, err := uc.userService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}

// UpdateRequest 用户更新请求DTO
type UpdateRequest struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Update 更新用户资料
func (uc *ManageUsersUseCase) Update(ctx context.Context, id uint, req UpdateRequest) (*UserInfo, error) {
	u, err := uc.userService.Update(ctx, id, user.UpdateParams{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}

// Delete 删除用户
func (uc *ManageUsersUseCase) Delete(ctx context.Context, id uint) error {
	return uc.userService.Delete(ctx, id)
}
