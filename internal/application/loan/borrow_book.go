package loan

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/reader"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
)

// BorrowBookUseCase 借出图书用例
// 这是整个系统最核心的用例:它是唯一允许扣减可借副本数的入口之一,
// 涉及事务处理、并发控制、业务规则校验
type BorrowBookUseCase struct {
	loanRepo   loan.Repository
	bookRepo   book.Repository
	readerRepo reader.Repository
	txManager  TxManager
}

// NewBorrowBookUseCase 创建借出图书用例
func NewBorrowBookUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	readerRepo reader.Repository,
	txManager TxManager,
) *BorrowBookUseCase {
	return &BorrowBookUseCase{
		loanRepo:   loanRepo,
		bookRepo:   bookRepo,
		readerRepo: readerRepo,
		txManager:  txManager,
	}
}

// BorrowBookRequest 借出请求DTO
type BorrowBookRequest struct {
	BookID   uint
	ReaderID uint
	LoanDate time.Time
	DueDate  time.Time
}

// BorrowBookResponse 借出响应DTO
type BorrowBookResponse struct {
	LoanID   uint   `json:"loan_id"`
	BookID   uint   `json:"book_id"`
	ReaderID uint   `json:"reader_id"`
	LoanDate string `json:"loan_date"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
}

// Execute 执行借出用例
//
// 核心问题:最后一本书的并发借出
// 场景:某图书可借副本只剩1本,两个读者同时发起借出
// 错误实现:
//  1. 查询可借副本 → 1本
//  2. 判断够不够 → 够
//  3. 扣减副本 → available_copies - 1
//     结果:两个请求都通过了步骤2,副本数被扣成-1(超借!)
//
// 正确实现:悲观锁
//  1. SELECT FOR UPDATE 锁定图书行
//  2. 判断可借副本是否>0
//  3. 插入借阅记录(return_date=NULL)
//  4. 扣减可借副本数
//  5. COMMIT释放锁
//
// 失败路径(无可借副本/图书或读者不存在/约束冲突)都不会留下任何写入:
// 借阅记录与副本数要么一起变,要么都不变
func (uc *BorrowBookUseCase) Execute(ctx context.Context, req BorrowBookRequest) (*BorrowBookResponse, error) {
	// 1. 构造并校验借阅记录(日期范围等)
	newLoan := loan.NewLoan(req.BookID, req.ReaderID, req.LoanDate, req.DueDate)
	if err := newLoan.Validate(); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, err.Error())
	}

	// 2. 读者引用校验(在事务外读即可,读者不会被并发删除影响借出的正确性)
	if _, err := uc.readerRepo.FindByID(ctx, req.ReaderID); err != nil {
		if errors.Is(err, reader.ErrReaderNotFound) {
			return nil, apperrors.ErrReaderNotFound
		}
		return nil, apperrors.Wrap(err, "查询读者失败")
	}

	// 3. 事务:锁图书行 → 检查副本 → 插入借阅记录 → 扣减副本
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 锁定图书行,其他借出请求会在这里排队
		b, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			return err
		}

		// 必须在持有行锁后检查,否则并发下会超借
		if !b.CanLend() {
			return book.ErrOutOfStock
		}

		// 插入借阅记录(初始状态OUTSTANDING)
		if err := uc.loanRepo.Create(txCtx, newLoan); err != nil {
			return err
		}

		// 扣减可借副本数(恰好-1,与记录写入同一事务)
		return uc.bookRepo.UpdateCopies(txCtx, req.BookID, -1)
	})

	if err != nil {
		switch {
		case errors.Is(err, book.ErrBookNotFound):
			return nil, apperrors.ErrBookNotFound
		case errors.Is(err, book.ErrOutOfStock):
			metrics.IncLoanOutOfStock()
			return nil, apperrors.ErrOutOfStock
		default:
			if apperrors.IsAppError(err) {
				return nil, err
			}
			return nil, apperrors.Wrap(err, "借出图书失败")
		}
	}

	metrics.IncLoanBorrowed()

	return &BorrowBookResponse{
		LoanID:   newLoan.ID,
		BookID:   newLoan.BookID,
		ReaderID: newLoan.ReaderID,
		LoanDate: newLoan.LoanDate.Format(time.DateOnly),
		DueDate:  newLoan.DueDate.Format(time.DateOnly),
		Status:   string(newLoan.Status()),
	}, nil
}
