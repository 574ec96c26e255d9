package author

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// DeleteAuthorUseCase 删除作者用例
// 业务规则:作者名下仍有图书时删除被阻止(引用保护)
type DeleteAuthorUseCase struct {
	authorRepo author.Repository
	bookRepo   book.Repository
}

// NewDeleteAuthorUseCase 创建用例实例
func NewDeleteAuthorUseCase(authorRepo author.Repository, bookRepo book.Repository) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{
		authorRepo: authorRepo,
		bookRepo:   bookRepo,
	}
}

// Execute 执行删除作者用例
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	// 先检查引用:名下有图书则阻止删除
	count, err := uc.bookRepo.CountByAuthorID(ctx, id)
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "统计作者图书数失败")
	}
	if count > 0 {
		return apperrors.ErrReferentialBlock
	}

	if err := uc.authorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return apperrors.ErrAuthorNotFound
		}
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "删除作者失败")
	}
	return nil
}
