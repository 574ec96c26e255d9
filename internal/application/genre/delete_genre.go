package genre

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// DeleteGenreUseCase 删除分类用例
// 业务规则:分类下仍有图书时删除被阻止
// 说明:保护规则与作者侧完全对称,不因实体不同而放松
type DeleteGenreUseCase struct {
	genreRepo genre.Repository
	bookRepo  book.Repository
}

// NewDeleteGenreUseCase 创建用例实例
func NewDeleteGenreUseCase(genreRepo genre.Repository, bookRepo book.Repository) *DeleteGenreUseCase {
	return &DeleteGenreUseCase{
		genreRepo: genreRepo,
		bookRepo:  bookRepo,
	}
}

// Execute 执行删除分类用例
func (uc *DeleteGenreUseCase) Execute(ctx context.Context, id uint) error {
	count, err := uc.bookRepo.CountByGenreID(ctx, id)
	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "统计分类图书数失败")
	}
	if count > 0 {
		return apperrors.ErrReferentialBlock
	}

	if err := uc.genreRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, genre.ErrGenreNotFound) {
			return apperrors.ErrGenreNotFound
		}
		if apperrors.IsAppError(err) {
			return err
		}
		return apperrors.Wrap(err, "删除分类失败")
	}
	return nil
}
