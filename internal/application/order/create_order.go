package order

import (
	"context"
	"log"

	"github.com/pratikmusmade/bookmart/internal/domain/order"
	"github.com/pratikmusmade/bookmart/pkg/metrics"
	"github.com/pratikmusmade/bookmart/pkg/mq"
)

// CreateOrderUseCase 创建订单用例
// 设计说明:
// 1. 买家为当前登录用户，不可由请求体指定
// 2. 金额与图书存在性校验由领域服务负责
// 3. 下单成功后发布order.created事件（通知、统计等场景订阅）
type CreateOrderUseCase struct {
	orderService order.Service
	publisher    mq.EventPublisher
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(orderService order.Service, publisher mq.EventPublisher) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderService: orderService,
		publisher:    publisher,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	UserID      uint   // 买家用户ID（从JWT中提取）
	BookID      uint   // 购买的图书ID
	TotalAmount int64  // 订单金额(分)
	Status      string // 订单状态（可选，缺省pending）
}

// Execute 执行下单用例
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderInfo, error) {
	o, err := uc.orderService.CreateOrder(ctx, order.CreateParams{
		UserID:      req.UserID,
		BookID:      req.BookID,
		TotalAmount: req.TotalAmount,
		Status:      order.Status(req.Status),
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.OrdersCreatedTotal)

	// 订单创建事件，发布失败不影响主流程
	event := mq.OrderCreatedEvent{
		OrderID:     o.ID,
		UserID:      o.UserID,
		BookID:      o.BookID,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.Unix(),
	}
	if err := uc.publisher.Publish(ctx, mq.RoutingKeyOrderCreated, event); err != nil {
		log.Printf("[order] 发布订单创建事件失败: %v", err)
	}

	info := toOrderInfo(o)
	return &info, nil
}

// OrderInfo 订单信息DTO（多个用例共用）
type OrderInfo struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	BookID      uint   `json:"book_id"`
	TotalAmount int64  `json:"total_amount"` // 金额(分)
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// toOrderInfo 领域实体 → DTO
func toOrderInfo(o *order.Order) OrderInfo {
	return OrderInfo{
		ID:          o.ID,
		UserID:      o.UserID,
		BookID:      o.BookID,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
