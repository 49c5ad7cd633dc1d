package request

import (
	"time"
)

// Status 求书单处理结果状态
type Status string

const (
	StatusPending   Status = "pending"   // 待处理
	StatusFulfilled Status = "fulfilled" // 已满足
	StatusRejected  Status = "rejected"  // 已拒绝
)

// IsValid 检查处理结果状态取值是否合法
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusFulfilled, StatusRejected:
		return true
	}
	return false
}

// WorkflowStatus 求书单工作流状态
// 与Status是两套独立的状态字段，互不联动：
// Status描述最终处理结果，WorkflowStatus描述当前流转阶段，
// 两者各自独立修改（沿用既有数据模型，不做合并）
type WorkflowStatus string

const (
	WorkflowOpen       WorkflowStatus = "open"        // 开放中
	WorkflowInProgress WorkflowStatus = "in_progress" // 处理中
	WorkflowClosed     WorkflowStatus = "closed"      // 已关闭
)

// IsValid 检查工作流状态取值是否合法
func (s WorkflowStatus) IsValid() bool {
	switch s {
	case WorkflowOpen, WorkflowInProgress, WorkflowClosed:
		return true
	}
	return false
}

// Request 求书单实体
// 设计说明：
// 1. 发起人为提交时的登录用户（UserID），不可由请求体指定
// 2. AcceptedSellerID为接单卖家，可以为空（未接单）
// 3. 两套状态字段独立维护，见WorkflowStatus注释
type Request struct {
	ID               uint
	UserID           uint           // 发起人用户ID
	BookTitle        string         // 求购书名
	Author           string         // 作者（可为空）
	Status           Status         // 处理结果状态
	RequestStatus    WorkflowStatus // 工作流状态
	AcceptedSellerID *uint          // 接单卖家ID（可为空）
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewRequest 创建新求书单（工厂方法）
// 初始状态：Status=pending，RequestStatus=open，未接单
func NewRequest(userID uint, bookTitle, author string) *Request {
	now := time.Now()
	return &Request{
		UserID:        userID,
		BookTitle:     bookTitle,
		Author:        author,
		Status:        StatusPending,
		RequestStatus: WorkflowOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateParams 求书单更新参数
// 空值/nil表示不修改对应字段
type UpdateParams struct {
	BookTitle        string
	Author           string
	Status           Status
	RequestStatus    WorkflowStatus
	AcceptedSellerID *uint
}

// Update 修改求书单（领域行为）
// 两套状态字段各自独立校验和更新
func (r *Request) Update(params UpdateParams) error {
	if params.Status != "" {
		if !params.Status.IsValid() {
			return ErrInvalidStatus
		}
		r.Status = params.Status
	}
	if params.RequestStatus != "" {
		if !params.RequestStatus.IsValid() {
			return ErrInvalidWorkflowStatus
		}
		r.RequestStatus = params.RequestStatus
	}
	if params.BookTitle != "" {
		r.BookTitle = params.BookTitle
	}
	if params.Author != "" {
		r.Author = params.Author
	}
	if params.AcceptedSellerID != nil {
		r.AcceptedSellerID = params.AcceptedSellerID
	}
	r.UpdatedAt = time.Now()
	return nil
}

// IsRaisedBy 检查求书单是否由指定用户发起
func (r *Request) IsRaisedBy(userID uint) bool {
	return r.UserID == userID
}
