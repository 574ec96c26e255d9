package reader

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/reader"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// DeleteReaderUseCase 删除读者用例
// 业务规则:读者存在任何借阅记录(含已归还)时删除被阻止
type DeleteReaderUseCase struct {
	readerRepo reader.Repository
	loanRepo   loan.Repository
}

// NewDeleteReaderUseCase 创建用例实例
func NewDeleteReaderUseCase(readerRepo reader.Repository, loanRepo loan.Repository) *DeleteReaderUseCase {
	return &DeleteReaderUseCase{
		readerRepo: readerRepo,
		loanRepo:   loanRepo,
	}
}

// Execute 执行删除读者用例
func (uc *DeleteReaderUseCase) Execute(ctx context.Context, id uint) error {
	exists, err := uc.loanRepo.ExistsByReaderID(ctx, id)
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "检查读者借阅记录失败")
	}
	if exists {
		return apperrors.ErrReferentialBlock
	}

	if err := uc.readerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reader.ErrReaderNotFound) {
			return apperrors.ErrReaderNotFound
		}
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "删除读者失败")
	}
	return nil
}
