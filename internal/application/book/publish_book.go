package book

import (
	"context"
	"log"

	"github.com/pratikmusmade/bookmart/internal/domain/book"
	"github.com/pratikmusmade/bookmart/pkg/metrics"
	"github.com/pratikmusmade/bookmart/pkg/mq"
)

// PublishBookUseCase 图书上架用例
// 设计说明:
// 1. 上架走目录合并逻辑：同(卖家,书名,作者)已有记录时只累加库存
// 2. 合并补货时发布book.restocked事件（通知订阅了该书的买家等场景）
// 3. 事件发布失败不影响主流程，只记录日志
type PublishBookUseCase struct {
	bookService book.Service
	publisher   mq.EventPublisher
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service, publisher mq.EventPublisher) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
		publisher:   publisher,
	}
}

// PublishBookRequest 上架请求DTO
type PublishBookRequest struct {
	SellerID           uint   // 卖家店铺ID
	Title              string // 书名
	Author             string // 作者
	Category           string // 分类
	Price              int64  // 价格(分)
	AvailabilityStatus bool   // 是否可售
	RentalOption       bool   // 是否支持租借
	Condition          string // 品相(new/used)
	Quantity           uint   // 数量(0取默认值1)
	ImageURL           string // 封面图片URL
}

// PublishBookResponse 上架响应DTO
// Restocked标记本次是合并补货还是新建记录
type PublishBookResponse struct {
	Book      BookInfo `json:"book"`
	Restocked bool     `json:"restocked"`
}

// Execute 执行上架用例
// 业务规则校验（卖家存在、书名作者非空、品相合法）由领域服务负责
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*PublishBookResponse, error) {
	result, err := uc.bookService.Publish(ctx, book.PublishParams{
		SellerID:           req.SellerID,
		Title:              req.Title,
		Author:             req.Author,
		Category:           req.Category,
		Price:              req.Price,
		AvailabilityStatus: req.AvailabilityStatus,
		RentalOption:       req.RentalOption,
		Condition:          book.Condition(req.Condition),
		Quantity:           req.Quantity,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	if result.Restocked {
		metrics.IncCounter(metrics.BooksRestockedTotal)

		// 补货事件，发布失败不影响主流程
		event := mq.BookRestockedEvent{
			BookID:   result.Book.ID,
			SellerID: result.Book.SellerID,
			Added:    result.Added,
			Quantity: result.Book.Quantity,
		}
		if err := uc.publisher.Publish(ctx, mq.RoutingKeyBookRestocked, event); err != nil {
			log.Printf("[book] 发布补货事件失败: %v", err)
		}
	} else {
		metrics.IncCounter(metrics.BooksPublishedTotal)
	}

	return &PublishBookResponse{
		Book:      toBookInfo(result.Book),
		Restocked: result.Restocked,
	}, nil
}

// BookInfo 图书信息DTO（多个用例共用）
type BookInfo struct {
	ID                 uint   `json:"id"`
	SellerID           uint   `json:"seller_id"`
	Title              string `json:"title"`
	Author             string `json:"author"`
	Category           string `json:"category"`
	Price              int64  `json:"price"` // 价格(分)
	AvailabilityStatus bool   `json:"availability_status"`
	RentalOption       bool   `json:"rental_option"`
	Condition          string `json:"condition"`
	Quantity           uint   `json:"quantity"`
	ImageURL           string `json:"image_url"`
	CreatedAt          string `json:"created_at"`
}

// toBookInfo 领域实体 → DTO
func toBookInfo(b *book.Book) BookInfo {
	return BookInfo{
		ID:                 b.ID,
		SellerID:           b.SellerID,
		Title:              b.Title,
		Author:             b.Author,
		Category:           b.Category,
		Price:              b.Price,
		AvailabilityStatus: b.AvailabilityStatus,
		RentalOption:       b.RentalOption,
		Condition:          string(b.Condition),
		Quantity:           b.Quantity,
		ImageURL:           b.ImageURL,
		CreatedAt:          b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
