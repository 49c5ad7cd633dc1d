package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
)

// fakeRepo 内存版用户仓储
type fakeRepo struct {
	users  map[uint]*User
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[uint]*User), nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	// 模拟数据库的用户名与邮箱UNIQUE索引
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return apperrors.ErrUsernameDuplicate
		}
		if existing.Email == u.Email {
			return apperrors.ErrEmailDuplicate
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepo) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]*User, error) {
	var result []*User
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, nil
}

func (f *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	for _, existing := range f.users {
		if existing.ID == u.ID {
			continue
		}
		if existing.Username == u.Username {
			return apperrors.ErrUsernameDuplicate
		}
		if existing.Email == u.Email {
			return apperrors.ErrEmailDuplicate
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// TestRegister 测试用户注册
func TestRegister(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		u, err := svc.Register(ctx, "alice", "alice@example.com", "Pass1234", "Alice", "Wang")
		require.NoError(t, err)

		assert.NotZero(t, u.ID)
		assert.Equal(t, "alice", u.Username)
		assert.False(t, u.IsSeller)
		assert.False(t, u.IsAdmin)

		// 密码应当是bcrypt哈希而非明文
		assert.NotEqual(t, "Pass1234", u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("Pass1234")))
	})

	t.Run("用户名重复应失败", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "other@example.com", "Pass1234", "", "")
		assert.ErrorIs(t, err, apperrors.ErrUsernameDuplicate)
	})

	t.Run("邮箱重复应失败", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob", "alice@example.com", "Pass1234", "", "")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate, "邮箱与用户名一样有唯一性约束")
	})

	t.Run("用户名过短", func(t *testing.T) {
		_, err := svc.Register(ctx, "ab", "ab@example.com", "Pass1234", "", "")
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
	})

	t.Run("邮箱格式错误", func(t *testing.T) {
		_, err := svc.Register(ctx, "charlie", "not-an-email", "Pass1234", "", "")
		require.Error(t, err)
	})

	t.Run("弱密码被拒绝", func(t *testing.T) {
		_, err := svc.Register(ctx, "dave", "dave@example.com", "12345678", "", "")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "纯数字密码应被拒绝")

		_, err = svc.Register(ctx, "dave", "dave@example.com", "short1", "", "")
		assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "过短密码应被拒绝")
	})
}

// TestLogin 测试登录
// 用户不存在与密码错误返回同一个错误，不暴露用户是否存在
func TestLogin(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "Pass1234", "", "")
	require.NoError(t, err)

	t.Run("正常登录", func(t *testing.T) {
		u, err := svc.Login(ctx, "alice", "Pass1234")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "WrongPass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在时返回相同错误", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "Pass1234")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword, "不应暴露用户是否存在")
	})
}

// TestBecomeSeller 测试开通卖家身份的幂等性
func TestBecomeSeller(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@example.com", "Pass1234", "", "")
	require.NoError(t, err)
	require.False(t, created.IsSeller)

	t.Run("首次开通", func(t *testing.T) {
		u, err := svc.BecomeSeller(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, u.IsSeller)
	})

	t.Run("重复开通不报错", func(t *testing.T) {
		u, err := svc.BecomeSeller(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, u.IsSeller, "幂等操作，结果状态一致")
	})

	t.Run("用户不存在", func(t *testing.T) {
		_, err := svc.BecomeSeller(ctx, 9999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

// TestUpdateUser 测试资料更新
func TestUpdateUser(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@example.com", "Pass1234", "Alice", "Wang")
	require.NoError(t, err)

	t.Run("部分字段更新", func(t *testing.T) {
		u, err := svc.Update(ctx, created.ID, UpdateParams{FirstName: "Alicia"})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", u.FirstName)
		assert.Equal(t, "Wang", u.LastName, "未指定的字段不应改变")
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("修改密码会重新加密", func(t *testing.T) {
		u, err := svc.Update(ctx, created.ID, UpdateParams{Password: "NewPass99"})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("NewPass99")))

		// 新密码可以登录
		_, err = svc.Login(ctx, "alice", "NewPass99")
		assert.NoError(t, err)
	})

	t.Run("新邮箱仍需格式校验", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, UpdateParams{Email: "bad-email"})
		assert.Error(t, err)
	})

	t.Run("改为他人邮箱应失败", func(t *testing.T) {
		other, err := svc.Register(ctx, "bob", "bob@example.com", "Pass1234", "", "")
		require.NoError(t, err)

		_, err = svc.Update(ctx, other.ID, UpdateParams{Email: "alice@example.com"})
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})
}

// TestDeleteUser 测试删除用户
func TestDeleteUser(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@example.com", "Pass1234", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
