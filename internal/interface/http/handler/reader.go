package handler

import (
	"github.com/gin-gonic/gin"

	appreader "github.com/xiebiao/library/internal/application/reader"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// ReaderHandler 读者HTTP处理器
type ReaderHandler struct {
	createReaderUseCase *appreader.CreateReaderUseCase
	listReadersUseCase  *appreader.ListReadersUseCase
	getReaderUseCase    *appreader.GetReaderUseCase
	deleteReaderUseCase *appreader.DeleteReaderUseCase
}

// NewReaderHandler 创建读者处理器
func NewReaderHandler(
	createReaderUseCase *appreader.CreateReaderUseCase,
	listReadersUseCase *appreader.ListReadersUseCase,
	getReaderUseCase *appreader.GetReaderUseCase,
	deleteReaderUseCase *appreader.DeleteReaderUseCase,
) *ReaderHandler {
	return &ReaderHandler{
		createReaderUseCase: createReaderUseCase,
		listReadersUseCase:  listReadersUseCase,
		getReaderUseCase:    getReaderUseCase,
		deleteReaderUseCase: deleteReaderUseCase,
	}
}

// CreateReader 注册读者
// @Summary      注册读者
// @Description  注册一位新读者,邮箱全局唯一
// @Tags         读者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReaderRequest true "读者信息"
// @Success      200 {object} response.Response{data=dto.ReaderResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /api/v1/readers [post]
func (h *ReaderHandler) CreateReader(c *gin.Context) {
	var req dto.CreateReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createReaderUseCase.Execute(c.Request.Context(), appreader.CreateReaderRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ReaderResponse{
		ReaderID:  result.ReaderID,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		Email:     result.Email,
		Phone:     req.Phone,
	})
}

// ListReaders 读者列表
// @Summary      读者列表
// @Description  查询全部读者
// @Tags         读者
// @Produce      json
// @Success      200 {object} response.Response{data=dto.ListReadersResponse}
// @Router       /api/v1/readers [get]
func (h *ReaderHandler) ListReaders(c *gin.Context) {
	items, err := h.listReadersUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.ReaderResponse, len(items))
	for i, it := range items {
		list[i] = dto.ReaderResponse{
			ReaderID:  it.ReaderID,
			FirstName: it.FirstName,
			LastName:  it.LastName,
			Email:     it.Email,
			Phone:     it.Phone,
		}
	}
	response.Success(c, &dto.ListReadersResponse{List: list})
}

// GetReader 读者详情
// @Summary      读者详情
// @Description  根据ID查询读者
// @Tags         读者
// @Produce      json
// @Param        id path int true "读者ID"
// @Success      200 {object} response.Response{data=dto.ReaderResponse}
// @Failure      404 {object} response.Response "读者不存在"
// @Router       /api/v1/readers/{id} [get]
func (h *ReaderHandler) GetReader(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.getReaderUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ReaderResponse{
		ReaderID:  item.ReaderID,
		FirstName: item.FirstName,
		LastName:  item.LastName,
		Email:     item.Email,
		Phone:     item.Phone,
	})
}

// DeleteReader 删除读者
// @Summary      删除读者
// @Description  删除读者,存在借阅记录时返回业务错误
// @Tags         读者
// @Produce      json
// @Param        id path int true "读者ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "存在引用,禁止删除"
// @Failure      404 {object} response.Response "读者不存在"
// @Router       /api/v1/readers/{id} [delete]
func (h *ReaderHandler) DeleteReader(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteReaderUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
