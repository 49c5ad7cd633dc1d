package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/pratikmusmade/bookmart/internal/application/book"
	"github.com/pratikmusmade/bookmart/internal/interface/http/dto"
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
	"github.com/pratikmusmade/bookmart/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	publishUseCase *appbook.PublishBookUseCase
	browseUseCase  *appbook.BrowseBooksUseCase
	manageUseCase  *appbook.ManageBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	publishUseCase *appbook.PublishBookUseCase,
	browseUseCase *appbook.BrowseBooksUseCase,
	manageUseCase *appbook.ManageBooksUseCase,
) *BookHandler {
	return &BookHandler{
		publishUseCase: publishUseCase,
		browseUseCase:  browseUseCase,
		manageUseCase:  manageUseCase,
	}
}

// Publish 上架图书
// @Summary      上架图书
// @Description  同(卖家,书名,作者)已有记录时合并补货（只累加库存），否则新建记录
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PublishBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=appbook.PublishBookResponse} "上架成功"
// @Failure      400 {object} response.Response "参数错误/卖家不存在/品相非法"
// @Router       /api/v1/books [post]
func (h *BookHandler) Publish(c *gin.Context) {
	var req dto.PublishBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 省略availability_status时默认可售
	availability := true
	if req.AvailabilityStatus != nil {
		availability = *req.AvailabilityStatus
	}

	result, err := h.publishUseCase.Execute(c.Request.Context(), appbook.PublishBookRequest{
		SellerID:           req.SellerID,
		Title:              req.Title,
		Author:             req.Author,
		Category:           req.Category,
		Price:              req.Price,
		AvailabilityStatus: availability,
		RentalOption:       req.RentalOption,
		Condition:          req.Condition,
		Quantity:           req.Quantity,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 合并补货返回200（复用已有记录），新建返回201
	if result.Restocked {
		response.Success(c, result)
		return
	}
	response.Created(c, result)
}

// List 图书列表
// @Summary      图书列表
// @Description  支持关键词搜索（书名/作者）、分类、卖家、品相过滤与分页
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        keyword query string false "关键词"
// @Param        category query string false "分类"
// @Param        seller_id query int false "卖家ID"
// @Param        condition query string false "品相(new/used)"
// @Param        page query int false "页码"
// @Param        page_size query int false "每页大小"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.browseUseCase.List(c.Request.Context(), appbook.ListBooksRequest{
		Keyword:   query.Keyword,
		Category:  query.Category,
		SellerID:  query.SellerID,
		Condition: query.Condition,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, result.Books, result.Total, result.Page, result.PageSize)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookInfo}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.browseUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 更新图书
// @Summary      更新图书
// @Description  通用字段更新，不走上架合并逻辑
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新信息"
// @Success      200 {object} response.Response{data=appbook.BookInfo}
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.Update(c.Request.Context(), id, appbook.UpdateBookRequest{
		Title:              req.Title,
		Author:             req.Author,
		Category:           req.Category,
		Price:              req.Price,
		AvailabilityStatus: req.AvailabilityStatus,
		RentalOption:       req.RentalOption,
		Condition:          req.Condition,
		Quantity:           req.Quantity,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除图书
// @Summary      删除图书
// @Description  级联删除图书的订单与评价
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.manageUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
