package handler

import (
	"github.com/gin-gonic/gin"

	appgenre "github.com/xiebiao/library/internal/application/genre"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// GenreHandler 分类HTTP处理器
type GenreHandler struct {
	createGenreUseCase *appgenre.CreateGenreUseCase
	listGenresUseCase  *appgenre.ListGenresUseCase
	getGenreUseCase    *appgenre.GetGenreUseCase
	deleteGenreUseCase *appgenre.DeleteGenreUseCase
}

// NewGenreHandler 创建分类处理器
func NewGenreHandler(
	createGenreUseCase *appgenre.CreateGenreUseCase,
	listGenresUseCase *appgenre.ListGenresUseCase,
	getGenreUseCase *appgenre.GetGenreUseCase,
	deleteGenreUseCase *appgenre.DeleteGenreUseCase,
) *GenreHandler {
	return &GenreHandler{
		createGenreUseCase: createGenreUseCase,
		listGenresUseCase:  listGenresUseCase,
		getGenreUseCase:    getGenreUseCase,
		deleteGenreUseCase: deleteGenreUseCase,
	}
}

// CreateGenre 创建分类
// @Summary      创建分类
// @Description  登记一个新图书分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateGenreRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.GenreResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createGenreUseCase.Execute(c.Request.Context(), appgenre.CreateGenreRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.GenreResponse{
		GenreID:     result.GenreID,
		Name:        result.Name,
		Description: req.Description,
	})
}

// ListGenres 分类列表
// @Summary      分类列表
// @Description  查询全部分类
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=dto.ListGenresResponse}
// @Router       /api/v1/genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	items, err := h.listGenresUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.GenreResponse, len(items))
	for i, it := range items {
		list[i] = dto.GenreResponse{GenreID: it.GenreID, Name: it.Name, Description: it.Description}
	}
	response.Success(c, &dto.ListGenresResponse{List: list})
}

// GetGenre 分类详情
// @Summary      分类详情
// @Description  根据ID查询分类
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=dto.GenreResponse}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/genres/{id} [get]
func (h *GenreHandler) GetGenre(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.getGenreUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.GenreResponse{GenreID: item.GenreID, Name: item.Name, Description: item.Description})
}

// DeleteGenre 删除分类
// @Summary      删除分类
// @Description  删除分类,分类下仍有图书时返回业务错误
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "存在引用,禁止删除"
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteGenreUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
