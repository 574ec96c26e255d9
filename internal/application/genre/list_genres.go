package genre

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/genre"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ListGenresUseCase 分类列表用例(只读)
type ListGenresUseCase struct {
	genreRepo genre.Repository
}

// NewListGenresUseCase 创建用例实例
func NewListGenresUseCase(genreRepo genre.Repository) *ListGenresUseCase {
	return &ListGenresUseCase{genreRepo: genreRepo}
}

// GenreItem 分类列表项
type GenreItem struct {
	GenreID     uint    `json:"genre_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Execute 查询全部分类(按主键顺序)
func (uc *ListGenresUseCase) Execute(ctx context.Context) ([]GenreItem, error) {
	genres, err := uc.genreRepo.FindAll(ctx)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	items := make([]GenreItem, len(genres))
	for i, g := range genres {
		items[i] = GenreItem{GenreID: g.ID, Name: g.Name, Description: g.Description}
	}
	return items, nil
}

// GetGenreUseCase 分类详情用例
type GetGenreUseCase struct {
	genreRepo genre.Repository
}

// NewGetGenreUseCase 创建用例实例
func NewGetGenreUseCase(genreRepo genre.Repository) *GetGenreUseCase {
	return &GetGenreUseCase{genreRepo: genreRepo}
}

// Execute 根据ID查询分类
func (uc *GetGenreUseCase) Execute(ctx context.Context, id uint) (*GenreItem, error) {
	g, err := uc.genreRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, genre.ErrGenreNotFound) {
			return nil, apperrors.ErrGenreNotFound
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return &GenreItem{GenreID: g.ID, Name: g.Name, Description: g.Description}, nil
}
