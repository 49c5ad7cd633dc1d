package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
)

// fakeReviewRepo 内存版评价仓储
type fakeReviewRepo struct {
	reviews map[uint]*Review
	nextID  uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uint]*Review), nextID: 1}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *Review) error {
	r.ID = f.nextID
	f.nextID++
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uint) (*Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, ErrReviewNotFound
	}
	return r, nil
}

func (f *fakeReviewRepo) List(_ context.Context) ([]*Review, error) {
	var result []*Review
	for _, r := range f.reviews {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReviewRepo) ListByBook(_ context.Context, bookID uint) ([]*Review, error) {
	var result []*Review
	for _, r := range f.reviews {
		if r.BookID == bookID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, r *Review) error {
	if _, ok := f.reviews[r.ID]; !ok {
		return ErrReviewNotFound
	}
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uint) error {
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) DeleteByBook(_ context.Context, bookID uint) error {
	for id, r := range f.reviews {
		if r.BookID == bookID {
			delete(f.reviews, id)
		}
	}
	return nil
}

// fakeBookRepo 只实现评价服务用到的FindByID存在性语义
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
	return &book.Book{ID: id}, nil
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

// TestCreateReview 测试创建评价
func TestCreateReview(t *testing.T) {
	svc := NewService(newFakeReviewRepo(), newFakeBookRepo(10))
	ctx := context.Background()

	t.Run("正常评价", func(t *testing.T) {
		r, err := svc.CreateReview(ctx, 1, 10, 4, "书的品相不错")
		require.NoError(t, err)

		assert.NotZero(t, r.ID)
		assert.Equal(t, 4, r.Rating)
		assert.Equal(t, "书的品相不错", r.Comment)
	})

	t.Run("评论可以为空", func(t *testing.T) {
		r, err := svc.CreateReview(ctx, 1, 10, 5, "")
		require.NoError(t, err)
		assert.Empty(t, r.Comment)
	})

	t.Run("图书不存在应失败", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, 1, 999, 4, "x")
		assert.ErrorIs(t, err, ErrBookNotExists)
	})
}

// TestCreateReview_RatingBounds 测试评分边界
// 1和5是合法边界值，0和6越界
func TestCreateReview_RatingBounds(t *testing.T) {
	svc := NewService(newFakeReviewRepo(), newFakeBookRepo(10))
	ctx := context.Background()

	cases := []struct {
		rating int
		valid  bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tc := range cases {
		_, err := svc.CreateReview(ctx, 1, 10, tc.rating, "边界测试")
		if tc.valid {
			assert.NoError(t, err, "评分%d应合法", tc.rating)
		} else {
			assert.ErrorIs(t, err, ErrInvalidRating, "评分%d应被拒绝", tc.rating)
		}
	}
}

// TestUpdateReview 测试修改评价
func TestUpdateReview(t *testing.T) {
	svc := NewService(newFakeReviewRepo(), newFakeBookRepo(10))
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, 1, 10, 3, "一般")
	require.NoError(t, err)

	t.Run("修改评分与评论", func(t *testing.T) {
		r, err := svc.Update(ctx, created.ID, 5, "重读之后改观了")
		require.NoError(t, err)
		assert.Equal(t, 5, r.Rating)
		assert.Equal(t, "重读之后改观了", r.Comment)
	})

	t.Run("评分为0表示不修改", func(t *testing.T) {
		r, err := svc.Update(ctx, created.ID, 0, "只改评论")
		require.NoError(t, err)
		assert.Equal(t, 5, r.Rating, "评分应保持不变")
		assert.Equal(t, "只改评论", r.Comment)
	})

	t.Run("评分越界被拒绝", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, 6, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("评价不存在", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, 4, "")
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}

// TestListByBook 测试按图书过滤评价
func TestListByBook(t *testing.T) {
	svc := NewService(newFakeReviewRepo(), newFakeBookRepo(10, 20))
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, 1, 10, 4, "a")
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, 2, 10, 5, "b")
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, 1, 20, 3, "c")
	require.NoError(t, err)

	reviews, err := svc.ListByBook(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
