package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// loanRepository 借阅记录仓储实现(MySQL)
// 设计说明:
// 1. 借阅记录只增不删,没有Delete实现
// 2. LockOutstandingByID/MarkReturned通过getDB(ctx)参与归还事务
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository 创建借阅记录仓储
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{db: db}
}

// Create 创建借阅记录
func (r *loanRepository) Create(ctx context.Context, l *loan.Loan) error {
	model := &LoanModel{
		BookID:     l.BookID,
		ReaderID:   l.ReaderID,
		LoanDate:   l.LoanDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}

	// 回填自增ID
	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	l.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找借阅记录
func (r *loanRepository) FindByID(ctx context.Context, id uint) (*loan.Loan, error) {
	var model LoanModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(err, "查询借阅记录失败")
	}

	return toLoanEntity(&model), nil
}

// FindAll 查询全部借阅记录(按主键顺序)
func (r *loanRepository) FindAll(ctx context.Context) ([]*loan.Loan, error) {
	var models []LoanModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询借阅记录列表失败")
	}

	loans := make([]*loan.Loan, len(models))
	for i := range models {
		loans[i] = toLoanEntity(&models[i])
	}
	return loans, nil
}

// LockOutstandingByID 悲观锁查询"借出未还"的记录
// SELECT * FROM loans WHERE id = ? AND return_date IS NULL FOR UPDATE
// "不存在"与"已归还"统一返回ErrLoanNotFound,两种情况刻意不区分
func (r *loanRepository) LockOutstandingByID(ctx context.Context, id uint) (*loan.Loan, error) {
	var model LoanModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND return_date IS NULL", id).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(err, "锁定借阅记录失败")
	}

	return toLoanEntity(&model), nil
}

// MarkReturned 写入归还日期
// WHERE条件带上return_date IS NULL,即使并发下也只有一次转移能成功
func (r *loanRepository) MarkReturned(ctx context.Context, id uint, returnDate time.Time) error {
	result := getDB(ctx, r.db).Model(&LoanModel{}).
		Where("id = ? AND return_date IS NULL", id).
		Update("return_date", returnDate)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "写入归还日期失败")
	}
	if result.RowsAffected == 0 {
		return loan.ErrLoanNotFound
	}
	return nil
}

// ExistsByBookID 判断图书是否存在借阅记录
func (r *loanRepository) ExistsByBookID(ctx context.Context, bookID uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&LoanModel{}).
		Where("book_id = ?", bookID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "统计图书借阅记录失败")
	}
	return count > 0, nil
}

// ExistsByReaderID 判断读者是否存在借阅记录
func (r *loanRepository) ExistsByReaderID(ctx context.Context, readerID uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&LoanModel{}).
		Where("reader_id = ?", readerID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "统计读者借阅记录失败")
	}
	return count > 0, nil
}

// toLoanEntity GORM模型 → 领域实体
func toLoanEntity(model *LoanModel) *loan.Loan {
	return &loan.Loan{
		ID:         model.ID,
		BookID:     model.BookID,
		ReaderID:   model.ReaderID,
		LoanDate:   model.LoanDate,
		DueDate:    model.DueDate,
		ReturnDate: model.ReturnDate,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
