package book

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikmusmade/bookmart/internal/domain/seller"
)

// fakeBookRepo 内存版图书仓储，用于隔离数据库做领域逻辑测试
type fakeBookRepo struct {
	books  map[uint]*Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*Book), nextID: 1}
}

func (f *fakeBookRepo) Create(_ context.Context, b *Book) error {
	b.ID = f.nextID
	f.nextID++
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) FindByID(_ context.Context, id uint) (*Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

// FindBySellerTitleAuthor 与MySQL实现保持一致：多条命中时返回ID最小（最早创建）的一条
func (f *fakeBookRepo) FindBySellerTitleAuthor(_ context.Context, sellerID uint, title, author string) (*Book, error) {
	var ids []uint
	for id, b := range f.books {
		if b.SellerID == sellerID && b.Title == title && b.Author == author {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, ErrBookNotFound
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return f.books[ids[0]], nil
}

func (f *fakeBookRepo) List(_ context.Context, _ ListParams) ([]*Book, int64, error) {
	var result []*Book
	for _, b := range f.books {
		result = append(result, b)
	}
	return result, int64(len(result)), nil
}

func (f *fakeBookRepo) ListBySeller(_ context.Context, sellerID uint) ([]*Book, error) {
	var result []*Book
	for _, b := range f.books {
		if b.SellerID == sellerID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookRepo) Update(_ context.Context, b *Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return ErrBookNotFound
	}
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) UpdateQuantity(_ context.Context, id uint, quantity uint) error {
	b, ok := f.books[id]
	if !ok {
		return ErrBookNotFound
	}
	b.Quantity = quantity
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id uint) error {
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) DeleteBySeller(_ context.Context, sellerID uint) error {
	for id, b := range f.books {
		if b.SellerID == sellerID {
			delete(f.books, id)
		}
	}
	return nil
}

// fakeSellerRepo 内存版卖家仓储，只需要FindByID的存在性语义
type fakeSellerRepo struct {
	sellers map[uint]*seller.Seller
}

func newFakeSellerRepo(ids ...uint) *fakeSellerRepo {
	f := &fakeSellerRepo{sellers: make(map[uint]*seller.Seller)}
	for _, id := range ids {
		f.sellers[id] = &seller.Seller{ID: id, UserID: id, ShopName: "书店", GSTIN: "22AAAAA0000A1Z5"}
	}
	return f
}

func (f *fakeSellerRepo) Create(_ context.Context, s *seller.Seller) error {
	f.sellers[s.ID] = s
	return nil
}

func (f *fakeSellerRepo) FindByID(_ context.Context, id uint) (*seller.Seller, error) {
	s, ok := f.sellers[id]
	if !ok {
		return nil, seller.ErrSellerNotFound
	}
	return s, nil
}

func (f *fakeSellerRepo) FindByUser(_ context.Context, userID uint) ([]*seller.Seller, error) {
	var result []*seller.Seller
	for _, s := range f.sellers {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeSellerRepo) ExistsByGSTIN(_ context.Context, gstin string) (bool, error) {
	for _, s := range f.sellers {
		if s.GSTIN == gstin {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSellerRepo) List(_ context.Context) ([]*seller.Seller, error) {
	var result []*seller.Seller
	for _, s := range f.sellers {
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeSellerRepo) Update(_ context.Context, s *seller.Seller) error {
	f.sellers[s.ID] = s
	return nil
}

func (f *fakeSellerRepo) Delete(_ context.Context, id uint) error {
	delete(f.sellers, id)
	return nil
}

func newTestService(sellerIDs ...uint) (Service, *fakeBookRepo) {
	repo := newFakeBookRepo()
	return NewService(repo, newFakeSellerRepo(sellerIDs...)), repo
}

func publishParams(sellerID uint) PublishParams {
	return PublishParams{
		SellerID:           sellerID,
		Title:              "沙丘",
		Author:             "赫伯特",
		Category:           "科幻",
		Price:              5900,
		AvailabilityStatus: true,
		Condition:          ConditionUsed,
		Quantity:           2,
	}
}

// TestPublish_NewBook 测试首次上架创建新记录
func TestPublish_NewBook(t *testing.T) {
	svc, _ := newTestService(1)
	ctx := context.Background()

	t.Run("正常上架", func(t *testing.T) {
		result, err := svc.Publish(ctx, publishParams(1))
		require.NoError(t, err)

		assert.False(t, result.Restocked, "首次上架不应走合并路径")
		assert.Equal(t, uint(2), result.Added)
		assert.Equal(t, uint(2), result.Book.Quantity)
		assert.NotZero(t, result.Book.ID)
		assert.Equal(t, "沙丘", result.Book.Title)
	})

	t.Run("数量省略时默认为1", func(t *testing.T) {
		params := publishParams(1)
		params.Title = "基地"
		params.Quantity = 0

		result, err := svc.Publish(ctx, params)
		require.NoError(t, err)

		assert.False(t, result.Restocked)
		assert.Equal(t, uint(1), result.Added)
		assert.Equal(t, uint(1), result.Book.Quantity)
	})
}

// TestPublish_RestockMerge 测试同(卖家,书名,作者)重复上架的合并补货
func TestPublish_RestockMerge(t *testing.T) {
	svc, repo := newTestService(1)
	ctx := context.Background()

	first, err := svc.Publish(ctx, publishParams(1))
	require.NoError(t, err)

	t.Run("重复上架只累加库存", func(t *testing.T) {
		again := publishParams(1)
		again.Quantity = 3
		// 本次提交不同的价格与品相，应当被忽略
		again.Price = 9900
		again.Condition = ConditionNew
		again.Category = "经典"

		result, err := svc.Publish(ctx, again)
		require.NoError(t, err)

		assert.True(t, result.Restocked, "应命中已有记录走合并路径")
		assert.Equal(t, first.Book.ID, result.Book.ID, "应复用已有记录，不新建")
		assert.Equal(t, uint(5), result.Book.Quantity, "库存应为2+3")
		assert.Equal(t, uint(3), result.Added)

		// 其它字段保持首次上架的值
		stored, err := repo.FindByID(ctx, first.Book.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(5900), stored.Price, "合并补货不应修改价格")
		assert.Equal(t, ConditionUsed, stored.Condition, "合并补货不应修改品相")
		assert.Equal(t, "科幻", stored.Category, "合并补货不应修改分类")
	})

	t.Run("补货数量省略时按1累加", func(t *testing.T) {
		again := publishParams(1)
		again.Quantity = 0

		result, err := svc.Publish(ctx, again)
		require.NoError(t, err)

		assert.True(t, result.Restocked)
		assert.Equal(t, uint(1), result.Added)
		assert.Equal(t, uint(6), result.Book.Quantity)
	})

	t.Run("仓储中始终只有一条记录", func(t *testing.T) {
		assert.Len(t, repo.books, 1, "多次上架同一本书不应产生重复记录")
	})
}

// TestPublish_NoMergeAcrossKeys 测试合并的匹配维度
// 只有(卖家,书名,作者)三者完全相同才合并
func TestPublish_NoMergeAcrossKeys(t *testing.T) {
	svc, repo := newTestService(1, 2)
	ctx := context.Background()

	_, err := svc.Publish(ctx, publishParams(1))
	require.NoError(t, err)

	t.Run("不同卖家各自建档", func(t *testing.T) {
		result, err := svc.Publish(ctx, publishParams(2))
		require.NoError(t, err)
		assert.False(t, result.Restocked, "不同卖家的同名书不应合并")
	})

	t.Run("不同作者各自建档", func(t *testing.T) {
		params := publishParams(1)
		params.Author = "别的作者"
		result, err := svc.Publish(ctx, params)
		require.NoError(t, err)
		assert.False(t, result.Restocked)
	})

	t.Run("不同书名各自建档", func(t *testing.T) {
		params := publishParams(1)
		params.Title = "沙丘2"
		result, err := svc.Publish(ctx, params)
		require.NoError(t, err)
		assert.False(t, result.Restocked)
	})

	assert.Len(t, repo.books, 4)
}

// TestPublish_MergePicksEarliestRecord 已存在多条重复记录时，补货落在最早创建的一条上
// 查找与写入不在同一事务内，并发上架同一本书可能产生重复记录；
// 目录索引特意不做UNIQUE，后续补货统一落在最早的一条上
func TestPublish_MergePicksEarliestRecord(t *testing.T) {
	svc, repo := newTestService(1)
	ctx := context.Background()

	// 直接在仓储里预置两条重复记录，模拟历史脏数据
	b1 := NewBook(1, "沙丘", "赫伯特", "科幻", 5900, true, false, ConditionUsed, 1, "")
	b2 := NewBook(1, "沙丘", "赫伯特", "科幻", 6900, true, false, ConditionNew, 7, "")
	require.NoError(t, repo.Create(ctx, b1))
	require.NoError(t, repo.Create(ctx, b2))

	params := publishParams(1)
	params.Quantity = 2

	result, err := svc.Publish(ctx, params)
	require.NoError(t, err)

	assert.True(t, result.Restocked)
	assert.Equal(t, b1.ID, result.Book.ID, "应选择最早创建的记录")
	assert.Equal(t, uint(3), result.Book.Quantity)
	assert.Equal(t, uint(7), b2.Quantity, "后创建的记录不应被改动")
}

// TestPublish_Validation 测试上架参数校验
func TestPublish_Validation(t *testing.T) {
	svc, _ := newTestService(1)
	ctx := context.Background()

	t.Run("品相非法", func(t *testing.T) {
		params := publishParams(1)
		params.Condition = "like-new"

		_, err := svc.Publish(ctx, params)
		assert.ErrorIs(t, err, ErrInvalidCondition)
	})

	t.Run("卖家不存在", func(t *testing.T) {
		params := publishParams(999)

		_, err := svc.Publish(ctx, params)
		assert.ErrorIs(t, err, ErrSellerNotExists)
	})

	t.Run("书名为空", func(t *testing.T) {
		params := publishParams(1)
		params.Title = ""

		_, err := svc.Publish(ctx, params)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("作者为空", func(t *testing.T) {
		params := publishParams(1)
		params.Author = ""

		_, err := svc.Publish(ctx, params)
		assert.ErrorIs(t, err, ErrEmptyAuthor)
	})
}

// TestUpdate_Info 测试通用更新接口
// 通用更新直接改字段，不走上架合并逻辑
func TestUpdate_Info(t *testing.T) {
	svc, _ := newTestService(1)
	ctx := context.Background()

	created, err := svc.Publish(ctx, publishParams(1))
	require.NoError(t, err)

	t.Run("部分字段更新", func(t *testing.T) {
		price := int64(7900)
		updated, err := svc.Update(ctx, created.Book.ID, UpdateParams{Price: &price})
		require.NoError(t, err)

		assert.Equal(t, int64(7900), updated.Price)
		assert.Equal(t, "沙丘", updated.Title, "未指定的字段不应改变")
	})

	t.Run("更新品相时仍做取值校验", func(t *testing.T) {
		_, err := svc.Update(ctx, created.Book.ID, UpdateParams{Condition: "damaged"})
		assert.ErrorIs(t, err, ErrInvalidCondition)
	})

	t.Run("更新允许直接覆盖库存", func(t *testing.T) {
		qty := uint(99)
		updated, err := svc.Update(ctx, created.Book.ID, UpdateParams{Quantity: &qty})
		require.NoError(t, err)
		assert.Equal(t, uint(99), updated.Quantity)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, UpdateParams{})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}
