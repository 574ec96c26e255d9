package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase *appbook.CreateBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase: createBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// CreateBook 登记图书
// @Summary      登记图书
// @Description  登记一本新图书,必须引用已存在的作者与分类
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "作者或分类不存在"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:           req.Title,
		AuthorID:        req.AuthorID,
		GenreID:         req.GenreID,
		ISBN:            req.ISBN,
		PublicationYear: req.PublicationYear,
		AvailableCopies: req.AvailableCopies,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookResponse{
		BookID:          result.BookID,
		Title:           result.Title,
		AuthorID:        result.AuthorID,
		GenreID:         result.GenreID,
		ISBN:            result.ISBN,
		PublicationYear: result.PublicationYear,
		AvailableCopies: result.AvailableCopies,
	})
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  查询全部图书(含当前可借副本数)
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=dto.ListBooksResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	items, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.BookResponse, len(items))
	for i, it := range items {
		list[i] = dto.BookResponse{
			BookID:          it.BookID,
			Title:           it.Title,
			AuthorID:        it.AuthorID,
			GenreID:         it.GenreID,
			ISBN:            it.ISBN,
			PublicationYear: it.PublicationYear,
			AvailableCopies: it.AvailableCopies,
		}
	}
	response.Success(c, &dto.ListBooksResponse{List: list})
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  根据ID查询图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookResponse{
		BookID:          item.BookID,
		Title:           item.Title,
		AuthorID:        item.AuthorID,
		GenreID:         item.GenreID,
		ISBN:            item.ISBN,
		PublicationYear: item.PublicationYear,
		AvailableCopies: item.AvailableCopies,
	})
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  删除图书,存在借阅记录时返回业务错误
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "存在引用,禁止删除"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
