package book

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

type fakeBookRepo struct {
	mu     sync.Mutex
	books  map[uint]*book.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*book.Book)}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.books {
		if existing.ISBN == b.ISBN {
			return book.ErrISBNDuplicate
		}
	}
	r.nextID++
	b.ID = r.nextID
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) FindAll(ctx context.Context) ([]*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*book.Book, 0, len(r.books))
	for id := uint(1); id <= r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateCopies(ctx context.Context, id uint, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.AvailableCopies+delta < 0 {
		return book.ErrOutOfStock
	}
	b.AvailableCopies += delta
	return nil
}

func (r *fakeBookRepo) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	return 0, nil
}

func (r *fakeBookRepo) CountByGenreID(ctx context.Context, genreID uint) (int64, error) {
	return 0, nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

// stubAuthorRepo 只实现FindByID的桩
type stubAuthorRepo struct {
	author.Repository
	exists bool
}

func (s *stubAuthorRepo) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	if !s.exists {
		return nil, author.ErrAuthorNotFound
	}
	return &author.Author{ID: id, Name: "马尔克斯"}, nil
}

// stubGenreRepo 只实现FindByID的桩
type stubGenreRepo struct {
	genre.Repository
	exists bool
}

func (s *stubGenreRepo) FindByID(ctx context.Context, id uint) (*genre.Genre, error) {
	if !s.exists {
		return nil, genre.ErrGenreNotFound
	}
	return &genre.Genre{ID: id, Name: "长篇小说"}, nil
}

// stubLoanRepo 只实现借阅存在性检查的桩
type stubLoanRepo struct {
	loan.Repository
	hasLoans bool
}

func (s *stubLoanRepo) ExistsByBookID(ctx context.Context, bookID uint) (bool, error) {
	return s.hasLoans, nil
}

func createReq() CreateBookRequest {
	return CreateBookRequest{
		Title:           "百年孤独",
		AuthorID:        1,
		GenreID:         1,
		ISBN:            "9787544253994",
		PublicationYear: 1967,
		AvailableCopies: 3,
	}
}

// TestCreateBook 测试图书登记用例
func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("登记成功", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewCreateBookUseCase(repo, &stubAuthorRepo{exists: true}, &stubGenreRepo{exists: true})

		resp, err := uc.Execute(ctx, createReq())
		require.NoError(t, err)
		assert.Equal(t, uint(1), resp.BookID)
		assert.Equal(t, 3, resp.AvailableCopies)
	})

	t.Run("作者不存在时拒绝登记", func(t *testing.T) {
		uc := NewCreateBookUseCase(newFakeBookRepo(), &stubAuthorRepo{}, &stubGenreRepo{exists: true})

		_, err := uc.Execute(ctx, createReq())
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeAuthorNotFound, apperrors.GetAppError(err).Code)
	})

	t.Run("分类不存在时拒绝登记", func(t *testing.T) {
		uc := NewCreateBookUseCase(newFakeBookRepo(), &stubAuthorRepo{exists: true}, &stubGenreRepo{})

		_, err := uc.Execute(ctx, createReq())
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeGenreNotFound, apperrors.GetAppError(err).Code)
	})

	t.Run("ISBN重复被拒绝", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewCreateBookUseCase(repo, &stubAuthorRepo{exists: true}, &stubGenreRepo{exists: true})

		_, err := uc.Execute(ctx, createReq())
		require.NoError(t, err)

		req := createReq()
		req.Title = "另一本书"
		_, err = uc.Execute(ctx, req)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeISBNDuplicate, apperrors.GetAppError(err).Code)
	})

	t.Run("参数不合法被拒绝", func(t *testing.T) {
		uc := NewCreateBookUseCase(newFakeBookRepo(), &stubAuthorRepo{exists: true}, &stubGenreRepo{exists: true})

		req := createReq()
		req.ISBN = "123"
		_, err := uc.Execute(ctx, req)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
	})
}

// TestDeleteBook 测试删除图书的引用保护
// 有借阅记录(无论是否已归还)的图书不可删除,保全历史台账
func TestDeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("存在借阅记录时删除被阻止", func(t *testing.T) {
		repo := newFakeBookRepo()
		require.NoError(t, repo.Create(ctx, book.NewBook("百年孤独", 1, 1, "9787544253994", 1967, 3)))
		uc := NewDeleteBookUseCase(repo, &stubLoanRepo{hasLoans: true})

		err := uc.Execute(ctx, 1)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeReferentialBlock, apperrors.GetAppError(err).Code)

		_, err = repo.FindByID(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("无借阅记录时删除成功", func(t *testing.T) {
		repo := newFakeBookRepo()
		require.NoError(t, repo.Create(ctx, book.NewBook("百年孤独", 1, 1, "9787544253994", 1967, 3)))
		uc := NewDeleteBookUseCase(repo, &stubLoanRepo{})

		require.NoError(t, uc.Execute(ctx, 1))

		_, err := repo.FindByID(ctx, 1)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("图书不存在", func(t *testing.T) {
		uc := NewDeleteBookUseCase(newFakeBookRepo(), &stubLoanRepo{})

		err := uc.Execute(ctx, 99)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeBookNotFound, apperrors.GetAppError(err).Code)
	})
}
