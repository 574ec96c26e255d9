package author

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/author"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ListAuthorsUseCase 作者列表用例(只读)
type ListAuthorsUseCase struct {
	authorRepo author.Repository
}

// NewListAuthorsUseCase 创建用例实例
func NewListAuthorsUseCase(authorRepo author.Repository) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorRepo: authorRepo}
}

// AuthorItem 作者列表项
type AuthorItem struct {
	AuthorID uint    `json:"author_id"`
	Name     string  `json:"name"`
	Bio      *string `json:"bio"`
}

// Execute 查询全部作者(按主键顺序)
func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]AuthorItem, error) {
	authors, err := uc.authorRepo.FindAll(ctx)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	items := make([]AuthorItem, len(authors))
	for i, a := range authors {
		items[i] = AuthorItem{AuthorID: a.ID, Name: a.Name, Bio: a.Bio}
	}
	return items, nil
}

// GetAuthorUseCase 作者详情用例
type GetAuthorUseCase struct {
	authorRepo author.Repository
}

// NewGetAuthorUseCase 创建用例实例
func NewGetAuthorUseCase(authorRepo author.Repository) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorRepo: authorRepo}
}

// Execute 根据ID查询作者
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorItem, error) {
	a, err := uc.authorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, apperrors.ErrAuthorNotFound
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return &AuthorItem{AuthorID: a.ID, Name: a.Name, Bio: a.Bio}, nil
}
