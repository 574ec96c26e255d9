package book

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ListBooksUseCase 图书列表用例(只读)
type ListBooksUseCase struct {
	bookRepo book.Repository
}

// NewListBooksUseCase 创建用例实例
func NewListBooksUseCase(bookRepo book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

// BookItem 图书列表项
type BookItem struct {
	BookID          uint   `json:"book_id"`
	Title           string `json:"title"`
	AuthorID        uint   `json:"author_id"`
	GenreID         uint   `json:"genre_id"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
	AvailableCopies int    `json:"available_copies"`
}

func toBookItem(b *book.Book) BookItem {
	return BookItem{
		BookID:          b.ID,
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		GenreID:         b.GenreID,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		AvailableCopies: b.AvailableCopies,
	}
}

// Execute 查询全部图书(按主键顺序)
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]BookItem, error) {
	books, err := uc.bookRepo.FindAll(ctx)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	items := make([]BookItem, len(books))
	for i, b := range books {
		items[i] = toBookItem(b)
	}
	return items, nil
}

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookRepo book.Repository
}

// NewGetBookUseCase 创建用例实例
func NewGetBookUseCase(bookRepo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{bookRepo: bookRepo}
}

// Execute 根据ID查询图书
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookItem, error) {
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	item := toBookItem(b)
	return &item, nil
}
