package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 处理数据库特定的错误(如ISBN重复),转换为业务错误
// 3. LockByID/UpdateCopies通过getDB(ctx)参与借阅事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		GenreID:         b.GenreID,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		AvailableCopies: b.AvailableCopies,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// 检查是否为ISBN重复错误
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindAll 查询全部图书(按主键顺序)
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// LockByID 悲观锁查询图书(SELECT FOR UPDATE)
// 其他事务会等待此锁释放,保证"检查可借副本→扣减"的原子性
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateCopies 调整可借副本数(原子操作)
// UPDATE books SET available_copies = available_copies + delta
// WHERE id = ? AND available_copies + delta >= 0
func (r *bookRepository) UpdateCopies(ctx context.Context, id uint, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id = ?", id).
		Where("available_copies + ? >= 0", delta). // 防止副本数为负
		Update("available_copies", gorm.Expr("available_copies + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新可借副本数失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者副本数不足,再查一次确定原因
		var model BookModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		// 图书存在,说明是没有可借副本
		return book.ErrOutOfStock
	}

	return nil
}

// CountByAuthorID 统计作者名下图书数
func (r *bookRepository) CountByAuthorID(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BookModel{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计作者图书数失败")
	}
	return count, nil
}

// CountByGenreID 统计分类下图书数
func (r *bookRepository) CountByGenreID(ctx context.Context, genreID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BookModel{}).
		Where("genre_id = ?", genreID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计分类图书数失败")
	}
	return count, nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		AuthorID:        model.AuthorID,
		GenreID:         model.GenreID,
		ISBN:            model.ISBN,
		PublicationYear: model.PublicationYear,
		AvailableCopies: model.AvailableCopies,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
