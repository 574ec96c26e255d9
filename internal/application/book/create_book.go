package book

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// CreateBookUseCase 图书登记用例
// 设计说明:
// 1. 图书引用作者与分类,登记前必须确认两者存在
// 2. 外键校验在应用层完成,仓储层只负责唯一索引兜底(ISBN)
// 3. 可借册数在登记时即为总册数,后续只随借还变动
type CreateBookUseCase struct {
	bookRepo   book.Repository
	authorRepo author.Repository
	genreRepo  genre.Repository
}

// NewCreateBookUseCase 创建用例实例
func NewCreateBookUseCase(bookRepo book.Repository, authorRepo author.Repository, genreRepo genre.Repository) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
		genreRepo:  genreRepo,
	}
}

// CreateBookRequest 登记请求DTO
type CreateBookRequest struct {
	Title           string
	AuthorID        uint
	GenreID         uint
	ISBN            string
	PublicationYear int
	AvailableCopies int
}

// CreateBookResponse 登记响应DTO
type CreateBookResponse struct {
	BookID          uint   `json:"book_id"`
	Title           string `json:"title"`
	AuthorID        uint   `json:"author_id"`
	GenreID         uint   `json:"genre_id"`
	ISBN            string `json:"isbn"`
	PublicationYear int    `json:"publication_year"`
	AvailableCopies int    `json:"available_copies"`
	CreatedAt       string `json:"created_at"`
}

// Execute 执行图书登记用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*CreateBookResponse, error) {
	b := book.NewBook(req.Title, req.AuthorID, req.GenreID, req.ISBN, req.PublicationYear, req.AvailableCopies)
	if err := b.Validate(); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, err.Error())
	}

	// 外键校验:作者与分类都必须已存在
	if _, err := uc.authorRepo.FindByID(ctx, req.AuthorID); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, apperrors.ErrAuthorNotFound
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}
	if _, err := uc.genreRepo.FindByID(ctx, req.GenreID); err != nil {
		if errors.Is(err, genre.ErrGenreNotFound) {
			return nil, apperrors.ErrGenreNotFound
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	if err := uc.bookRepo.Create(ctx, b); err != nil {
		if errors.Is(err, book.ErrISBNDuplicate) {
			return nil, apperrors.ErrISBNDuplicate
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "登记图书失败")
	}

	return &CreateBookResponse{
		BookID:          b.ID,
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		GenreID:         b.GenreID,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		AvailableCopies: b.AvailableCopies,
		CreatedAt:       b.CreatedAt.Format(time.DateTime),
	}, nil
}
