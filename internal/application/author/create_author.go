package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// CreateAuthorUseCase 创建作者用例
type CreateAuthorUseCase struct {
	authorRepo author.Repository
}

// NewCreateAuthorUseCase 创建用例实例
func NewCreateAuthorUseCase(authorRepo author.Repository) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorRepo: authorRepo}
}

// CreateAuthorRequest 创建作者请求DTO
type CreateAuthorRequest struct {
	Name string
	Bio  *string
}

// CreateAuthorResponse 创建作者响应DTO
type CreateAuthorResponse struct {
	AuthorID uint   `json:"author_id"`
	Name     string `json:"name"`
}

// Execute 执行创建作者用例
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*CreateAuthorResponse, error) {
	a := author.NewAuthor(req.Name, req.Bio)
	if err := a.Validate(); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, err.Error())
	}

	if err := uc.authorRepo.Create(ctx, a); err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "创建作者失败")
	}

	return &CreateAuthorResponse{
		AuthorID: a.ID,
		Name:     a.Name,
	}, nil
}
