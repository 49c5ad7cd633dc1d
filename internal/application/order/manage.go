package order

import (
	"context"

	"github.com/pratikmusmade/bookmart/internal/domain/order"
)

// ManageOrdersUseCase 订单管理用例（列表、查询、更新、改状态、删除）
type ManageOrdersUseCase struct {
	orderService order.Service
	orderRepo    order.Repository
}

// NewManageOrdersUseCase 创建订单管理用例
func NewManageOrdersUseCase(orderService order.Service, orderRepo order.Repository) *ManageOrdersUseCase {
	return &ManageOrdersUseCase{
		orderService: orderService,
		orderRepo:    orderRepo,
	}
}

// ListOrdersRequest 订单列表查询请求DTO
type ListOrdersRequest struct {
	UserID   uint   // 买家过滤（0表示不过滤）
	BookID   uint   // 图书过滤（0表示不过滤）
	Status   string // 状态过滤（空表示不过滤）
	Page     int
	PageSize int
}

// ListOrdersResponse 订单列表查询响应DTO
type ListOrdersResponse struct {
	Orders   []OrderInfo `json:"orders"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// List 分页查询订单列表
func (uc *ManageOrdersUseCase) List(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 10
	}

	orders, total, err := uc.orderService.List(ctx, order.ListParams{
		UserID:   req.UserID,
		BookID:   req.BookID,
		Status:   order.Status(req.Status),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	infos := make([]OrderInfo, len(orders))
	for i, o := range orders {
		infos[i] = toOrderInfo(o)
	}

	return &ListOrdersResponse{
		Orders:   infos,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// Get 根据ID查询订单
func (uc *ManageOrdersUseCase) Get(ctx context.Context, id uint) (*OrderInfo, error) {
	o, err := uc.orderService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := toOrderInfo(o)
	return &info, nil
}

// UpdateOrderRequest 订单更新请求DTO
// nil/空表示不修改对应字段
type UpdateOrderRequest struct {
	TotalAmount *int64
	Status      string
}

// Update 更新订单（金额与状态）
// 金额修改后仍需满足大于0的约束
func (uc *ManageOrdersUseCase) Update(ctx context.Context, id uint, req UpdateOrderRequest) (*OrderInfo, error) {
	o, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TotalAmount != nil {
		if *req.TotalAmount <= 0 {
			return nil, order.ErrInvalidAmount
		}
		o.TotalAmount = *req.TotalAmount
	}
	if req.Status != "" {
		if err := o.ChangeStatus(order.Status(req.Status)); err != nil {
			return nil, err
		}
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	info := toOrderInfo(o)
	return &info, nil
}

// UpdateStatus 修改订单状态
// 不限制流转方向，只校验目标状态取值
func (uc *ManageOrdersUseCase) UpdateStatus(ctx context.Context, id uint, status string) (*OrderInfo, error) {
	o, err := uc.orderService.UpdateStatus(ctx, id, order.Status(status))
	if err != nil {
		return nil, err
	}

	info := toOrderInfo(o)
	return &info, nil
}

// Delete 删除订单
func (uc *ManageOrdersUseCase) Delete(ctx context.Context, id uint) error {
	return uc.orderRepo.Delete(ctx, id)
}
