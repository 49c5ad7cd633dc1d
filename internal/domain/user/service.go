package user

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（如密码加密、验证）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, username, email, password, firstName, lastName string) (*User, error)

	// Login 用户登录（用户名+密码）
	Login(ctx context.Context, username, password string) (*User, error)

	// GetByID 根据ID查询用户
	GetByID(ctx context.Context, id uint) (*User, error)

	// List 查询全部用户（管理员接口）
	List(ctx context.Context) ([]*User, error)

	// Update 更新用户资料
	// params中空字符串表示不修改；Password非空时重新加密
	Update(ctx context.Context, id uint, params UpdateParams) (*User, error)

	// Delete 删除用户
	Delete(ctx context.Context, id uint) error

	// BecomeSeller 开通卖家身份（幂等）
	BecomeSeller(ctx context.Context, id uint) (*User, error)
}

// UpdateParams 用户更新参数
// 显式命名字段，取代动态字段表（边界处完成类型与取值校验）
type UpdateParams struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string // 明文，非空时重新bcrypt加密
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则：
// 1. 用户名3-50字符
// 2. 邮箱格式校验
// 3. 密码强度校验（8-20位，包含字母和数字）
// 4. 用户名唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, username, email, password, firstName, lastName string) (*User, error) {
	// 1. 用户名校验
	if len(username) < 3 || len(username) > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "用户名长度应为3-50个字符")
	}

	// 2. 邮箱格式校验
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	// 3. 密码强度校验
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// 4. 密码加密（bcrypt自动加盐，cost=12）
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	// 5. 创建用户实体并持久化
	user := NewUser(username, email, string(hashedPassword), firstName, lastName)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return user, nil
}

// Login 用户登录
// 业务规则：
// 1. 用户名必须存在
// 2. 密码必须正确
// 注意：两种失败都返回ErrInvalidPassword，不向调用方暴露用户是否存在
func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "密码验证失败")
	}

	return user, nil
}

// GetByID 根据ID查询用户
func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// List 查询全部用户
func (s *service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Update 更新用户资料
func (s *service) Update(ctx context.Context, id uint, params UpdateParams) (*User, error) {
	// 1. 查询用户
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 邮箱格式校验（仅当修改邮箱时）
	if params.Email != "" && !isValidEmail(params.Email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	// 3. 密码修改时重新加密
	if params.Password != "" {
		if err := validatePasswordStrength(params.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), 12)
		if err != nil {
			return nil, apperrors.Wrap(err, "密码加密失败")
		}
		user.Password = string(hashed)
	}

	// 4. 更新资料字段并持久化
	user.UpdateProfile(params.Username, params.Email, params.FirstName, params.LastName)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete 删除用户
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// BecomeSeller 开通卖家身份
// 幂等：重复调用直接返回当前状态，不报错
func (s *service) BecomeSeller(ctx context.Context, id uint) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !user.BecomeSeller() {
		// 已经是卖家，无需写库
		return user, nil
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// =========================================
// 辅助函数：业务规则校验
// =========================================

// isValidEmail 邮箱格式校验
// 简单的正则校验，生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength 密码强度校验
// 规则：8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return apperrors.ErrWeakPassword
	}

	return nil
}
