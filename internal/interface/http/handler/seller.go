package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appseller "github.com/pratikmusmade/bookmart/internal/application/seller"
	"github.com/pratikmusmade/bookmart/internal/interface/http/dto"
	"github.com/pratikmusmade/bookmart/internal/interface/http/middleware"
	apperrors "github.com/pratikmusmade/bookmart/pkg/errors"
	"github.com/pratikmusmade/bookmart/pkg/response"
)

// SellerHandler 卖家HTTP处理器
type SellerHandler struct {
	createUseCase *appseller.CreateSellerUseCase
	manageUseCase *appseller.ManageSellersUseCase
}

// NewSellerHandler 创建卖家处理器
func NewSellerHandler(
	createUseCase *appseller.CreateSellerUseCase,
	manageUseCase *appseller.ManageSellersUseCase,
) *SellerHandler {
	return &SellerHandler{
		createUseCase: createUseCase,
		manageUseCase: manageUseCase,
	}
}

// Create 创建卖家店铺
// @Summary      创建卖家店铺
// @Description  当前登录用户开店；GSTIN为15位且全局唯一
// @Tags         卖家
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateSellerRequest true "开店信息"
// @Success      201 {object} response.Response{data=appseller.SellerInfo} "开店成功"
// @Failure      400 {object} response.Response "参数错误/GSTIN已存在"
// @Router       /api/v1/seller [post]
func (h *SellerHandler) Create(c *gin.Context) {
	var req dto.CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appseller.CreateSellerRequest{
		UserID:   middleware.MustGetUserID(c),
		ShopName: req.ShopName,
		GSTIN:    req.GSTIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// List 卖家列表
// @Summary      卖家列表
// @Tags         卖家
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]appseller.SellerInfo}
// @Router       /api/v1/seller [get]
func (h *SellerHandler) List(c *gin.Context) {
	result, err := h.manageUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 卖家详情
// @Summary      卖家详情
// @Tags         卖家
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "卖家ID"
// @Success      200 {object} response.Response{data=appseller.SellerInfo}
// @Failure      404 {object} response.Response "卖家不存在"
// @Router       /api/v1/seller/{id} [get]
func (h *SellerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.manageUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListByUser 查询某用户的全部卖家店铺
// @Summary      用户的卖家店铺
// @Description  该用户没有任何店铺时返回404
// @Tags         卖家
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path int true "用户ID"
// @Success      200 {object} response.Response{data=[]appseller.SellerInfo}
// @Failure      404 {object} response.Response "该用户无店铺"
// @Router       /api/v1/sellers/{user_id} [get]
func (h *SellerHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "用户ID格式错误")
		return
	}

	result, err := h.manageUseCase.ListByUser(c.Request.Context(), uint(userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Update 更新卖家信息
// @Summary      更新卖家信息
// @Description  只开放店铺名称与审核状态；审核通过是管理动作，走同一接口
// @Tags         卖家
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "卖家ID"
// @Param        request body dto.UpdateSellerRequest true "更新信息"
// @Success      200 {object} response.Response{data=appseller.SellerInfo}
// @Router       /api/v1/seller/{id} [put]
func (h *SellerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.Update(c.Request.Context(), id, appseller.UpdateSellerRequest{
		ShopName:       req.ShopName,
		ApprovedStatus: req.ApprovedStatus,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除卖家
// @Summary      删除卖家
// @Description  级联删除店铺下的图书及其订单与评价
// @Tags         卖家
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "卖家ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "卖家不存在"
// @Router       /api/v1/seller/{id} [delete]
func (h *SellerHandler) Delete(c *gin.Context) {
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
