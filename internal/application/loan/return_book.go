package loan

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
)

// ReturnBookUseCase 归还图书用例
// 借阅状态机唯一的一条转移边:OUTSTANDING → RETURNED
type ReturnBookUseCase struct {
	loanRepo  loan.Repository
	bookRepo  book.Repository
	txManager TxManager
	// now 可注入的时钟,默认time.Now,测试时可固定
	now func() time.Time
}

// NewReturnBookUseCase 创建归还图书用例
func NewReturnBookUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	txManager TxManager,
) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		loanRepo:  loanRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		now:       time.Now,
	}
}

// ReturnBookResponse 归还响应DTO
type ReturnBookResponse struct {
	LoanID     uint   `json:"loan_id"`
	BookID     uint   `json:"book_id"`
	ReturnDate string `json:"return_date"`
	Status     string `json:"status"`
}

// Execute 执行归还用例
//
// 流程(单事务):
//  1. 按(id, return_date IS NULL)锁定借阅记录
//     ——记录不存在与已归还统一表现为"未找到",不做区分
//  2. 写入归还日期(今天)
//  3. 图书可借副本数+1
//
// 说明:归还侧没有副本数上限检查——系统不记录馆藏总数,
// 这是沿袭下来的已知设计缺口,不在这里悄悄"修复"
func (uc *ReturnBookUseCase) Execute(ctx context.Context, loanID uint) (*ReturnBookResponse, error) {
	var returned *loan.Loan

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 锁定未归还的借阅记录
		l, err := uc.loanRepo.LockOutstandingByID(txCtx, loanID)
		if err != nil {
			return err
		}

		// 2. 执行状态转移并落库
		today := uc.now()
		if err := l.Return(today); err != nil {
			return err
		}
		if err := uc.loanRepo.MarkReturned(txCtx, loanID, *l.ReturnDate); err != nil {
			return err
		}

		// 3. 可借副本数+1(与归还写入同一事务)
		if err := uc.bookRepo.UpdateCopies(txCtx, l.BookID, +1); err != nil {
			return err
		}

		returned = l
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, loan.ErrLoanNotFound), errors.Is(err, loan.ErrAlreadyReturned):
			return nil, apperrors.ErrLoanNotFound
		default:
			if apperrors.IsAppError(err) {
				return nil, err
			}
			return nil, apperrors.Wrap(err, "归还图书失败")
		}
	}

	metrics.IncLoanReturned()

	return &ReturnBookResponse{
		LoanID:     returned.ID,
		BookID:     returned.BookID,
		ReturnDate: returned.ReturnDate.Format(time.DateOnly),
		Status:     string(returned.Status()),
	}, nil
}
