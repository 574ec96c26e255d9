package book

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// DeleteBookUseCase 删除图书用例
// 业务规则:图书存在任何借阅记录(含已归还)时删除被阻止,保全历史台账
type DeleteBookUseCase struct {
	bookRepo book.Repository
	loanRepo loan.Repository
}

// NewDeleteBookUseCase 创建用例实例
func NewDeleteBookUseCase(bookRepo book.Repository, loanRepo loan.Repository) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo: bookRepo,
		loanRepo: loanRepo,
	}
}

// Execute 执行删除图书用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	exists, err := uc.loanRepo.ExistsByBookID(ctx, id)
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "检查图书借阅记录失败")
	}
	if exists {
		return apperrors.ErrReferentialBlock
	}

	if err := uc.bookRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return apperrors.ErrBookNotFound
		}
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "删除图书失败")
	}
	return nil
}
