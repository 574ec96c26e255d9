package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/library/internal/application/author"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	createAuthorUseCase *appauthor.CreateAuthorUseCase
	listAuthorsUseCase  *appauthor.ListAuthorsUseCase
	getAuthorUseCase    *appauthor.GetAuthorUseCase
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(
	createAuthorUseCase *appauthor.CreateAuthorUseCase,
	listAuthorsUseCase *appauthor.ListAuthorsUseCase,
	getAuthorUseCase *appauthor.GetAuthorUseCase,
	deleteAuthorUseCase *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		createAuthorUseCase: createAuthorUseCase,
		listAuthorsUseCase:  listAuthorsUseCase,
		getAuthorUseCase:    getAuthorUseCase,
		deleteAuthorUseCase: deleteAuthorUseCase,
	}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Description  登记一位新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createAuthorUseCase.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		Name: req.Name,
		Bio:  req.Bio,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.AuthorResponse{
		AuthorID: result.AuthorID,
		Name:     result.Name,
		Bio:      req.Bio,
	})
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Description  查询全部作者
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=dto.ListAuthorsResponse}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	items, err := h.listAuthorsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.AuthorResponse, len(items))
	for i, it := range items {
		list[i] = dto.AuthorResponse{AuthorID: it.AuthorID, Name: it.Name, Bio: it.Bio}
	}
	response.Success(c, &dto.ListAuthorsResponse{List: list})
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Description  根据ID查询作者
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.getAuthorUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.AuthorResponse{AuthorID: item.AuthorID, Name: item.Name, Bio: item.Bio})
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  删除作者,名下仍有图书时返回业务错误
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "存在引用,禁止删除"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteAuthorUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
