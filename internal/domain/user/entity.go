package user

import (
	"time"
)

// User 用户实体（聚合根）
// 设计说明：
// 1. 密码只保存bcrypt哈希值，不提供明文访问方法
// 2. IsSeller标记用户是否开通了卖家身份（开通后不可撤销）
// 3. IsAdmin标记管理员，/users管理接口需要此权限
// 4. 领域实体不依赖GORM tag（infrastructure层的Repository负责映射）
type User struct {
	ID        uint
	Username  string
	Email     string
	Password  string // bcrypt哈希值
	FirstName string
	LastName  string
	IsSeller  bool
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, email, hashedPassword, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		IsSeller:  false,
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BecomeSeller 开通卖家身份（领域行为）
// 幂等：已是卖家时重复调用不产生变化
// 返回值表示本次调用是否发生了状态变更
func (u *User) BecomeSeller() bool {
	if u.IsSeller {
		return false
	}
	u.IsSeller = true
	u.UpdatedAt = time.Now()
	return true
}

// UpdateProfile 更新用户资料（领域行为）
// 空字符串表示不修改对应字段
func (u *User) UpdateProfile(username, email, firstName, lastName string) {
	if username != "" {
		u.Username = username
	}
	if email != "" {
		u.Email = email
	}
	if firstName != "" {
		u.FirstName = firstName
	}
	if lastName != "" {
		u.LastName = lastName
	}
	u.UpdatedAt = time.Now()
}

// FullName 返回姓名全称
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
