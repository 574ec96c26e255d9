package loan

import (
	"context"
	"sync"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/reader"
)

// 内存版仓储与事务管理器,行为对齐MySQL实现:
// - fakeTxManager用互斥锁串行化整个事务,等价于借出/归还事务中
//   SELECT FOR UPDATE对同一图书行的排队效果
// - UpdateCopies带不为负的防护,超扣返回ErrOutOfStock

type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

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
	// 事务已由fakeTxManager整体串行化,这里等同于普通查询
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
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookRepo) CountByGenreID(ctx context.Context, genreID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.books {
		if b.GenreID == genreID {
			n++
		}
	}
	return n, nil
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

type fakeLoanRepo struct {
	mu     sync.Mutex
	loans  map[uint]*loan.Loan
	nextID uint
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[uint]*loan.Loan)}
}

func (r *fakeLoanRepo) Create(ctx context.Context, l *loan.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	l.ID = r.nextID
	cp := *l
	r.loans[l.ID] = &cp
	return nil
}

func (r *fakeLoanRepo) FindByID(ctx context.Context, id uint) (*loan.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loans[id]
	if !ok {
		return nil, loan.ErrLoanNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLoanRepo) FindAll(ctx context.Context) ([]*loan.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*loan.Loan, 0, len(r.loans))
	for id := uint(1); id <= r.nextID; id++ {
		if l, ok := r.loans[id]; ok {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) LockOutstandingByID(ctx context.Context, id uint) (*loan.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loans[id]
	if !ok || l.ReturnDate != nil {
		// 不存在与已归还统一表现为"未找到",与MySQL实现一致
		return nil, loan.ErrLoanNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLoanRepo) MarkReturned(ctx context.Context, id uint, returnDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loans[id]
	if !ok || l.ReturnDate != nil {
		return loan.ErrLoanNotFound
	}
	d := returnDate
	l.ReturnDate = &d
	return nil
}

func (r *fakeLoanRepo) ExistsByBookID(ctx context.Context, bookID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.loans {
		if l.BookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLoanRepo) ExistsByReaderID(ctx context.Context, readerID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.loans {
		if l.ReaderID == readerID {
			return true, nil
		}
	}
	return false, nil
}

type fakeReaderRepo struct {
	mu      sync.Mutex
	readers map[uint]*reader.Reader
	nextID  uint
}

func newFakeReaderRepo() *fakeReaderRepo {
	return &fakeReaderRepo{readers: make(map[uint]*reader.Reader)}
}

func (r *fakeReaderRepo) Create(ctx context.Context, rd *reader.Reader) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.readers {
		if existing.Email == rd.Email {
			return reader.ErrEmailDuplicate
		}
	}
	r.nextID++
	rd.ID = r.nextID
	cp := *rd
	r.readers[rd.ID] = &cp
	return nil
}

func (r *fakeReaderRepo) FindByID(ctx context.Context, id uint) (*reader.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rd, ok := r.readers[id]
	if !ok {
		return nil, reader.ErrReaderNotFound
	}
	cp := *rd
	return &cp, nil
}

func (r *fakeReaderRepo) FindAll(ctx context.Context) ([]*reader.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*reader.Reader, 0, len(r.readers))
	for id := uint(1); id <= r.nextID; id++ {
		if rd, ok := r.readers[id]; ok {
			cp := *rd
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeReaderRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.readers[id]; !ok {
		return reader.ErrReaderNotFound
	}
	delete(r.readers, id)
	return nil
}
