package genre

import (
	"context"

	"github.com/xiebiao/library/internal/domain/genre"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// CreateGenreUseCase 创建分类用例
type CreateGenreUseCase struct {
	genreRepo genre.Repository
}

// NewCreateGenreUseCase 创建用例实例
func NewCreateGenreUseCase(genreRepo genre.Repository) *CreateGenreUseCase {
	return &CreateGenreUseCase{genreRepo: genreRepo}
}

// CreateGenreRequest 创建分类请求DTO
type CreateGenreRequest struct {
	Name        string
	Description *string
}

// CreateGenreResponse 创建分类响应DTO
type CreateGenreResponse struct {
	GenreID uint   `json:"genre_id"`
	Name    string `json:"name"`
}

// Execute 执行创建分类用例
func (uc *CreateGenreUseCase) Execute(ctx context.Context, req CreateGenreRequest) (*CreateGenreResponse, error) {
	g := genre.NewGenre(req.Name, req.Description)
	if err := g.Validate(); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, err.Error())
	}

	if err := uc.genreRepo.Create(ctx, g); err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "创建分类失败")
	}

	return &CreateGenreResponse{
		GenreID: g.ID,
		Name:    g.Name,
	}, nil
}
