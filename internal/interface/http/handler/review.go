package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appreview "github.com/pratikmusmade/bookmart/internal/application/review"
	"github.com/pratikmusmade/bookmart/internal/interface/http/dto"
	"github.com/pratikmusmade/bookmart/internal/interface/http/middleware"
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
	"github.com/pratikmusmade/bookmart/pkg/response"
)

// ReviewHandler 评价HTTP处理器
// 浏览接口开放访问，写操作由路由层的RequireAuth保护
type ReviewHandler struct {
	reviewUseCase *appreview.ReviewUseCase
}

// NewReviewHandler 创建评价处理器
func NewReviewHandler(reviewUseCase *appreview.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

// Create 创建评价
// @Summary      创建评价
// @Description  评价人为当前登录用户；评分1~5
// @Tags         评价
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateReviewRequest true "评价信息"
// @Success      201 {object} response.Response{data=appreview.ReviewInfo} "评价成功"
// @Failure      400 {object} response.Response "评分超出范围/图书不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.reviewUseCase.Create(c.Request.Context(), appreview.CreateReviewRequest{
		UserID:  middleware.MustGetUserID(c),
		BookID:  req.BookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// List 评价列表（开放接口）
// @Summary      评价列表
// @Description  可选按图书过滤
// @Tags         评价
// @Produce      json
// @Param        book_id query int false "图书ID"
// @Success      200 {object} response.Response{data=[]appreview.ReviewInfo}
// @Router       /api/v1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var bookID uint
	if raw := c.Query("book_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "图书ID格式错误")
			return
		}
		bookID = uint(parsed)
	}

	result, err := h.reviewUseCase.List(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 评价详情（开放接口）
// @Summary      评价详情
// @Tags         评价
// @Produce      json
// @Param        id path int true "评价ID"
// @Success      200 {object} response.Response{data=appreview.ReviewInfo}
// @Failure      404 {object} response.Response "评价不存在"
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.reviewUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 修改评价
// @Summary      修改评价
// @Tags         评价
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评价ID"
// @Param        request body dto.UpdateReviewRequest true "更新信息"
// @Success      200 {object} response.Response{data=appreview.ReviewInfo}
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.reviewUseCase.Update(c.Request.Context(), id, appreview.UpdateReviewRequest{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除评价
// @Summary      删除评价
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评价ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.reviewUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
