package loan

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ListLoansUseCase 借阅记录列表用例(只读,无副作用)
type ListLoansUseCase struct {
	loanRepo loan.Repository
}

// NewListLoansUseCase 创建借阅记录列表用例
func NewListLoansUseCase(loanRepo loan.Repository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// LoanItem 借阅记录列表项
type LoanItem struct {
	LoanID     uint    `json:"loan_id"`
	BookID     uint    `json:"book_id"`
	ReaderID   uint    `json:"reader_id"`
	LoanDate   string  `json:"loan_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date"` // null表示未归还
	Status     string  `json:"status"`
}

// Execute 查询全部借阅记录(按主键顺序)
func (uc *ListLoansUseCase) Execute(ctx context.Context) ([]LoanItem, error) {
	loans, err := uc.loanRepo.FindAll(ctx)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}

	items := make([]LoanItem, len(loans))
	for i, l := range loans {
		items[i] = toLoanItem(l)
	}
	return items, nil
}

// toLoanItem 领域实体 → 列表项DTO
func toLoanItem(l *loan.Loan) LoanItem {
	item := LoanItem{
		LoanID:   l.ID,
		BookID:   l.BookID,
		ReaderID: l.ReaderID,
		LoanDate: l.LoanDate.Format(time.DateOnly),
		DueDate:  l.DueDate.Format(time.DateOnly),
		Status:   string(l.Status()),
	}
	if l.ReturnDate != nil {
		s := l.ReturnDate.Format(time.DateOnly)
		item.ReturnDate = &s
	}
	return item
}
