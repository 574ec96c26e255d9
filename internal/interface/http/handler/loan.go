package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	apploan "github.com/xiebiao/library/internal/application/loan"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// LoanHandler 借阅HTTP处理器
// 借书与还书是系统唯一会改动图书可借副本数的两个入口
type LoanHandler struct {
	borrowBookUseCase *apploan.BorrowBookUseCase
	returnBookUseCase *apploan.ReturnBookUseCase
	listLoansUseCase  *apploan.ListLoansUseCase
	getLoanUseCase    *apploan.GetLoanUseCase
}

// NewLoanHandler 创建借阅处理器
func NewLoanHandler(
	borrowBookUseCase *apploan.BorrowBookUseCase,
	returnBookUseCase *apploan.ReturnBookUseCase,
	listLoansUseCase *apploan.ListLoansUseCase,
	getLoanUseCase *apploan.GetLoanUseCase,
) *LoanHandler {
	return &LoanHandler{
		borrowBookUseCase: borrowBookUseCase,
		returnBookUseCase: returnBookUseCase,
		listLoansUseCase:  listLoansUseCase,
		getLoanUseCase:    getLoanUseCase,
	}
}

// BorrowBook 借书
// @Summary      借书
// @Description  创建借阅记录并扣减图书可借副本数(原子操作)
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.BorrowBookRequest true "借阅信息"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      400 {object} response.Response "参数错误或无可借副本"
// @Failure      404 {object} response.Response "图书或读者不存在"
// @Router       /api/v1/loans [post]
func (h *LoanHandler) BorrowBook(c *gin.Context) {
	var req dto.BorrowBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	loanDate, err := time.Parse(time.DateOnly, req.LoanDate)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "loan_date格式错误,应为YYYY-MM-DD")
		return
	}
	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "due_date格式错误,应为YYYY-MM-DD")
		return
	}

	result, err := h.borrowBookUseCase.Execute(c.Request.Context(), apploan.BorrowBookRequest{
		BookID:   req.BookID,
		ReaderID: req.ReaderID,
		LoanDate: loanDate,
		DueDate:  dueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoanResponse{
		LoanID:   result.LoanID,
		BookID:   result.BookID,
		ReaderID: result.ReaderID,
		LoanDate: result.LoanDate,
		DueDate:  result.DueDate,
		Status:   result.Status,
	})
}

// ReturnBook 还书
// @Summary      还书
// @Description  归还借阅并回补图书可借副本数(原子操作),重复归还返回未找到
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response{data=dto.ReturnBookResponse}
// @Failure      404 {object} response.Response "借阅记录不存在或已归还"
// @Router       /api/v1/loans/{id}/return [put]
func (h *LoanHandler) ReturnBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.returnBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ReturnBookResponse{
		LoanID:     result.LoanID,
		BookID:     result.BookID,
		ReturnDate: result.ReturnDate,
		Status:     result.Status,
	})
}

// ListLoans 借阅列表
// @Summary      借阅列表
// @Description  查询全部借阅记录(含已归还)
// @Tags         借阅
// @Produce      json
// @Success      200 {object} response.Response{data=dto.ListLoansResponse}
// @Router       /api/v1/loans [get]
func (h *LoanHandler) ListLoans(c *gin.Context) {
	items, err := h.listLoansUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.LoanResponse, len(items))
	for i, it := range items {
		list[i] = toLoanResponse(it)
	}
	response.Success(c, &dto.ListLoansResponse{List: list})
}

// GetLoan 借阅详情
// @Summary      借阅详情
// @Description  根据ID查询借阅记录
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response{data=dto.LoanResponse}
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Router       /api/v1/loans/{id} [get]
func (h *LoanHandler) GetLoan(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.getLoanUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := toLoanResponse(*item)
	response.Success(c, &resp)
}

func toLoanResponse(it apploan.LoanItem) dto.LoanResponse {
	return dto.LoanResponse{
		LoanID:     it.LoanID,
		BookID:     it.BookID,
		ReaderID:   it.ReaderID,
		LoanDate:   it.LoanDate,
		DueDate:    it.DueDate,
		ReturnDate: it.ReturnDate,
		Status:     it.Status,
	}
}
