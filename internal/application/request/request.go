package request

import (
	"context"
	"log"

	"github.com/pratikmusmade/bookmart/internal/domain/request"
	"github.com/pratikmusmade/bookmart/pkg/mq"
)

// RequestUseCase 求书单用例（创建、浏览、更新、删除）
// 浏览接口开放访问，写操作需要登录
type RequestUseCase struct {
	requestService request.Service
	requestRepo    request.Repository
	publisher      mq.EventPublisher
}

// NewRequestUseCase 创建求书单用例
func NewRequestUseCase(
	requestService request.Service,
	requestRepo request.Repository,
	publisher mq.EventPublisher,
) *RequestUseCase {
	return &RequestUseCase{
		requestService: requestService,
		requestRepo:    requestRepo,
		publisher:      publisher,
	}
}

// CreateRequestRequest 创建求书单请求DTO
type CreateRequestRequest struct {
	UserID    uint   // 发起人（从JWT中提取）
	BookTitle string // 求购书名
	Author    string // 作者（可选）
}

// Create 创建求书单
// 创建成功后发布request.created事件（卖家侧订阅，寻书撮合场景）
func (uc *RequestUseCase) Create(ctx context.Context, req CreateRequestRequest) (*RequestInfo, error) {
	r, err := uc.requestService.CreateRequest(ctx, req.UserID, req.BookTitle, req.Author)
	if err != nil {
		return nil, err
	}

	// 事件发布失败不影响主流程
	event := mq.BookRequestedEvent{
		RequestID: r.ID,
		UserID:    r.UserID,
		BookTitle: r.BookTitle,
		Author:    r.Author,
	}
	if err := uc.publisher.Publish(ctx, mq.RoutingKeyBookRequested, event); err != nil {
		log.Printf("[request] 发布求书事件失败: %v", err)
	}

	info := toRequestInfo(r)
	return &info, nil
}

// List 查询求书单列表
// userID非0时只返回该用户发起的求书单
func (uc *RequestUseCase) List(ctx context.Context, userID uint) ([]RequestInfo, error) {
	var (
		requests []*request.Request
		err      error
	)
	if userID != 0 {
		requests, err = uc.requestService.ListByUser(ctx, userID)
	} else {
		requests, err = uc.requestService.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	infos := make([]RequestInfo, len(requests))
	for i, r := range requests {
		infos[i] = toRequestInfo(r)
	}
	return infos, nil
}

// Get 根据ID查询求书单
func (uc *RequestUseCase) Get(ctx context.Context, id uint) (*RequestInfo, error) {
	r, err := uc.requestService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	info := toRequestInfo(r)
	return &info, nil
}

// UpdateRequestRequest 求书单更新请求DTO
// 空值/nil表示不修改；Status与RequestStatus两套状态独立更新
type UpdateRequestRequest struct {
	BookTitle        string
	Author           string
	Status           string
	RequestStatus    string
	AcceptedSellerID *uint
}

// Update 修改求书单
func (uc *RequestUseCase) Update(ctx context.Context, id uint, req UpdateRequestRequest) (*RequestInfo, error) {
	r, err := uc.requestService.Update(ctx, id, request.UpdateParams{
		BookTitle:        req.BookTitle,
		Author:           req.Author,
		Status:           request.Status(req.Status),
		RequestStatus:    request.WorkflowStatus(req.RequestStatus),
		AcceptedSellerID: req.AcceptedSellerID,
	})
	if err != nil {
		return nil, err
	}

	info := toRequestInfo(r)
	return &info, nil
}

// Delete 删除求书单
func (uc *RequestUseCase) Delete(ctx context.Context, id uint) error {
	return uc.requestRepo.Delete(ctx, id)
}

// RequestInfo 求书单信息DTO
type RequestInfo struct {
	ID               uint   `json:"id"`
	UserID           uint   `json:"user_id"`
	BookTitle        string `json:"book_title"`
	Author           string `json:"author"`
	Status           string `json:"status"`
	RequestStatus    string `json:"request_status"`
	AcceptedSellerID *uint  `json:"accepted_seller_id"`
	CreatedAt        string `json:"created_at"`
}

// toRequestInfo 领域实体 → DTO
func toRequestInfo(r *request.Request) RequestInfo {
	return RequestInfo{
		ID:               r.ID,
		UserID:           r.UserID,
		BookTitle:        r.BookTitle,
		Author:           r.Author,
		Status:           string(r.Status),
		RequestStatus:    string(r.RequestStatus),
		AcceptedSellerID: r.AcceptedSellerID,
		CreatedAt:        r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
