package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apprequest "github.com/pratikmusmade/bookmart/internal/application/request"
	"github.com/pratikmusmade/bookmart/internal/interface/http/dto"
	"github.com/pratikmusmade/bookmart/internal/interface/http/middleware"
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
	"github.com/pratikmusmade/bookmart/pkg/response"
)

// RequestHandler 求书单HTTP处理器
// 浏览接口开放访问，写操作由路由层的RequireAuth保护
type RequestHandler struct {
	requestUseCase *apprequest.RequestUseCase
}

// NewRequestHandler 创建求书单处理器
func NewRequestHandler(requestUseCase *apprequest.RequestUseCase) *RequestHandler {
	return &RequestHandler{requestUseCase: requestUseCase}
}

// Create 创建求书单
// @Summary      创建求书单
// @Description  发起人为当前登录用户；初始状态pending/open
// @Tags         求书单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequestRequest true "求书信息"
// @Success      201 {object} response.Response{data=apprequest.RequestInfo} "创建成功"
// @Router       /api/v1/request [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.requestUseCase.Create(c.Request.Context(), apprequest.CreateRequestRequest{
		UserID:    middleware.MustGetUserID(c),
		BookTitle: req.BookTitle,
		Author:    req.Author,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// List 求书单列表（开放接口）
// @Summary      求书单列表
// @Description  可选按发起人过滤
// @Tags         求书单
// @Produce      json
// @Param        user_id query int false "发起人用户ID"
// @Success      200 {object} response.Response{data=[]apprequest.RequestInfo}
// @Router       /api/v1/request [get]
func (h *RequestHandler) List(c *gin.Context) {
	var userID uint
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "用户ID格式错误")
			return
		}
		userID = uint(parsed)
	}

	result, err := h.requestUseCase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 求书单详情（开放接口）
// @Summary      求书单详情
// @Tags         求书单
// @Produce      json
// @Param        id path int true "求书单ID"
// @Success      200 {object} response.Response{data=apprequest.RequestInfo}
// @Failure      404 {object} response.Response "求书单不存在"
// @Router       /api/v1/request/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.requestUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 修改求书单
// @Summary      修改求书单
// @Description  status与request_status两套状态独立更新；可指定接单卖家
// @Tags         求书单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "求书单ID"
// @Param        request body dto.UpdateBookRequestRequest true "更新信息"
// @Success      200 {object} response.Response{data=apprequest.RequestInfo}
// @Failure      400 {object} response.Response "状态取值非法/卖家不存在"
// @Router       /api/v1/request/{id} [put]
func (h *RequestHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.requestUseCase.Update(c.Request.Context(), id, apprequest.UpdateRequestRequest{
		BookTitle:        req.BookTitle,
		Author:           req.Author,
		Status:           req.Status,
		RequestStatus:    req.RequestStatus,
		AcceptedSellerID: req.AcceptedSellerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除求书单
// @Summary      删除求书单
// @Tags         求书单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "求书单ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/request/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.requestUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
