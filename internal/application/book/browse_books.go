package book

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
)

// BrowseBooksUseCase 图书浏览用例（列表+详情）
type BrowseBooksUseCase struct {
	bookService book.Service
}

// NewBrowseBooksUseCase 创建浏览用例
func NewBrowseBooksUseCase(bookService book.Service) *BrowseBooksUseCase {
	return &BrowseBooksUseCase{bookService: bookService}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Keyword   string // 书名/作者模糊搜索
	Category  string // 分类过滤
	SellerID  uint   // 卖家过滤
	Condition string // 品相过滤
	Page      int
	PageSize  int
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	Books    []BookInfo `json:"books"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// List 分页查询图书列表
func (uc *BrowseBooksUseCase) List(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	params := book.ListParams{
		Keyword:   req.Keyword,
		Category:  req.Category,
		SellerID:  req.SellerID,
		Condition: book.Condition(req.Condition),
		Page:      req.Page,
		PageSize:  req.PageSize,
	}

	books, total, err := uc.bookService.List(ctx, params)
	if err != nil {
		return nil, err
	}

	infos := make([]BookInfo, len(books))
	for i, b := range books {
		infos[i] = toBookInfo(b)
	}

	return &ListBooksResponse{
		Books:    infos,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

// Get 根据ID查询图书详情
func (uc *BrowseBooksUseCase) Get(ctx context.Context, id uint) (*BookInfo, error) {
	b, err := uc.bookService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := toBookInfo(b)
	return &info, nil
}
