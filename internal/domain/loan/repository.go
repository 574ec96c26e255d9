package loan

import (
	"context"
	"time"
)

// Repository 借阅记录仓储接口（领域层定义）
//
// 设计说明:
// 1. 没有Delete:借阅记录只增不删(Append-Only),是库存台账的事实来源
// 2. LockOutstandingByID/MarkReturned只在归还事务内使用
type Repository interface {
	// Create 创建借阅记录,成功后回填自增ID
	Create(ctx context.Context, l *Loan) error

	// FindByID 根据ID查询借阅记录,不存在时返回ErrLoanNotFound
	FindByID(ctx context.Context, id uint) (*Loan, error)

	// FindAll 查询全部借阅记录,按主键顺序返回
	FindAll(ctx context.Context) ([]*Loan, error)

	// LockOutstandingByID 悲观锁查询"借出未还"的记录
	// 查询条件:id = ? AND return_date IS NULL
	// 记录不存在或已归还都返回ErrLoanNotFound(两种情况不区分)
	LockOutstandingByID(ctx context.Context, id uint) (*Loan, error)

	// MarkReturned 写入归还日期(nil → 日期的一次性转移)
	MarkReturned(ctx context.Context, id uint, returnDate time.Time) error

	// ExistsByBookID 判断图书是否存在借阅记录(删除保护用)
	ExistsByBookID(ctx context.Context, bookID uint) (bool, error)

	// ExistsByReaderID 判断读者是否存在借阅记录(删除保护用)
	ExistsByReaderID(ctx context.Context, readerID uint) (bool, error)
}
