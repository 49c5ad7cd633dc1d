package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
)

// fakeOrderRepo 内存版订单仓储
type fakeOrderRepo struct {
	orders map[uint]*Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*Order), nextID: 1}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *Order) error {
	o.ID = f.nextID
	f.nextID++
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uint) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) List(_ context.Context, params ListParams) ([]*Order, int64, error) {
	var result []*Order
	for _, o := range f.orders {
		if params.UserID != 0 && o.UserID != params.UserID {
			continue
		}
		if params.BookID != 0 && o.BookID != params.BookID {
			continue
		}
		if params.Status != "" && o.Status != params.Status {
			continue
		}
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *Order) error {
	if _, ok := f.orders[o.ID]; !ok {
		return ErrOrderNotFound
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) DeleteByBook(_ context.Context, bookID uint) error {
	for id, o := range f.orders {
		if o.BookID == bookID {
			delete(f.orders, id)
		}
	}
	return nil
}

// fakeBookRepo 只实现订单服务用到的FindByID存在性语义
type fakeBookRepo struct {
	ids map[uint]bool
}

func newFakeBookRepo(ids ...uint) *fakeBookRepo {
	f := &fakeBookRepo{ids: make(map[uint]bool)}
	for _, id := range ids {
		f.ids[id] = true
	}
	return f
}

func (f *fakeBookRepo) Create(_ context.Context, _ *book.Book) error { return nil }

func (f *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	if !f.ids[id] {
		return nil, book.ErrBookNotFound
	}
	return &book.Book{ID: id, Title: "沙丘", Author: "赫伯特"}, nil
}

func (f *fakeBookRepo) FindBySellerTitleAuthor(_ context.Context, _ uint, _, _ string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) List(_ context.Context, _ book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) ListBySeller(_ context.Context, _ uint) ([]*book.Book, error) {
	return nil, nil
}

func (f *fakeBookRepo) Update(_ context.Context, _ *book.Book) error { return nil }

func (f *fakeBookRepo) UpdateQuantity(_ context.Context, _ uint, _ uint) error { return nil }

func (f *fakeBookRepo) Delete(_ context.Context, _ uint) error { return nil }

func (f *fakeBookRepo) DeleteBySeller(_ context.Context, _ uint) error { return nil }

// TestCreateOrder 测试下单流程
func TestCreateOrder(t *testing.T) {
	svc := NewService(newFakeOrderRepo(), newFakeBookRepo(10))
	ctx := context.Background()

	t.Run("正常下单", func(t *testing.T) {
		o, err := svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 10, TotalAmount: 5900})
		require.NoError(t, err)

		assert.NotZero(t, o.ID)
		assert.Equal(t, StatusPending, o.Status, "缺省状态应为pending")
		assert.Equal(t, int64(5900), o.TotalAmount)
	})

	t.Run("显式指定合法状态", func(t *testing.T) {
		o, err := svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 10, TotalAmount: 100, Status: StatusShipped})
		require.NoError(t, err)
		assert.Equal(t, StatusShipped, o.Status)
	})

	t.Run("金额为0应失败", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 10, TotalAmount: 0})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("金额为负应失败", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 10, TotalAmount: -100})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("图书不存在应失败", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 999, TotalAmount: 100})
		assert.ErrorIs(t, err, ErrBookNotExists)
	})

	t.Run("状态取值非法应失败", func(t *testing.T) {
		_, err := svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 10, TotalAmount: 100, Status: "shipped-today"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

// TestUpdateStatus 测试状态修改
// 状态集合固定，但不限制流转方向
func TestUpdateStatus(t *testing.T) {
	svc := NewService(newFakeOrderRepo(), newFakeBookRepo(10))
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 10, TotalAmount: 5900})
	require.NoError(t, err)

	t.Run("正向流转", func(t *testing.T) {
		o, err := svc.UpdateStatus(ctx, created.ID, StatusShipped)
		require.NoError(t, err)
		assert.Equal(t, StatusShipped, o.Status)

		o, err = svc.UpdateStatus(ctx, created.ID, StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, o.Status)
	})

	t.Run("允许回退", func(t *testing.T) {
		o, err := svc.UpdateStatus(ctx, created.ID, StatusPending)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status, "delivered改回pending应被允许")
	})

	t.Run("非法取值被拒绝", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, created.ID, "refunded")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("订单不存在", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, 9999, StatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

// TestListByBookFilter 订单列表按图书过滤
func TestListByBookFilter(t *testing.T) {
	svc := NewService(newFakeOrderRepo(), newFakeBookRepo(10, 20))
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 10, TotalAmount: 100})
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, CreateParams{UserID: 1, BookID: 20, TotalAmount: 200})
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, CreateParams{UserID: 2, BookID: 10, TotalAmount: 300})
	require.NoError(t, err)

	t.Run("只返回指定图书的订单", func(t *testing.T) {
		orders, total, err := svc.List(ctx, ListParams{BookID: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, o := range orders {
			assert.Equal(t, uint(10), o.BookID)
		}
	})

	t.Run("图书过滤可与买家过滤叠加", func(t *testing.T) {
		_, total, err := svc.List(ctx, ListParams{UserID: 2, BookID: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

// TestStatusIsValid 状态集合固定为四个取值
func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusShipped.IsValid())
	assert.True(t, StatusDelivered.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("PENDING").IsValid(), "状态区分大小写")
}
