package loan

import "time"

// Status 借阅状态
// 状态由ReturnDate是否为空推导,不单独落库,避免两个字段互相打架
type Status string

const (
	// StatusOutstanding 借出未还(ReturnDate为空)
	StatusOutstanding Status = "OUTSTANDING"
	// StatusReturned 已归还(ReturnDate非空),终态
	StatusReturned Status = "RETURNED"
)

// Loan 借阅记录实体（聚合根）
//
// 设计说明:
// 1. 状态机只有一条边:OUTSTANDING --归还--> RETURNED
//    没有续借、没有取消、没有逾期处理(DueDate只存储,不参与任何比较)
// 2. 除了ReturnDate的一次性 nil→日期 转移之外,借阅记录不可变更,也永不删除
// 3. ReturnDate使用指针表达可空:nil即"未归还"
//    (参考租借类系统的通用建模:returned_at可空列+索引)
// 4. 日期只保留到"天",不带时间部分(ISO-8601日历日期)
type Loan struct {
	ID         uint
	BookID     uint
	ReaderID   uint
	LoanDate   time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLoan 创建新借阅记录（工厂方法）
// 新记录一定处于OUTSTANDING状态
func NewLoan(bookID, readerID uint, loanDate, dueDate time.Time) *Loan {
	now := time.Now()
	return &Loan{
		BookID:    bookID,
		ReaderID:  readerID,
		LoanDate:  truncateToDate(loanDate),
		DueDate:   truncateToDate(dueDate),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate 验证借阅记录
// 业务规则:loan_date不得晚于due_date
func (l *Loan) Validate() error {
	if l.BookID == 0 {
		return ErrBookIDRequired
	}
	if l.ReaderID == 0 {
		return ErrReaderIDRequired
	}
	if l.LoanDate.IsZero() || l.DueDate.IsZero() {
		return ErrDateRequired
	}
	if l.DueDate.Before(l.LoanDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// Status 返回当前借阅状态
func (l *Loan) Status() Status {
	if l.ReturnDate == nil {
		return StatusOutstanding
	}
	return StatusReturned
}

// IsOutstanding 判断是否借出未还
func (l *Loan) IsOutstanding() bool {
	return l.ReturnDate == nil
}

// Return 执行归还转移(OUTSTANDING → RETURNED)
// 已归还的记录再次调用返回ErrAlreadyReturned,保证转移只发生一次
func (l *Loan) Return(on time.Time) error {
	if l.ReturnDate != nil {
		return ErrAlreadyReturned
	}
	d := truncateToDate(on)
	l.ReturnDate = &d
	l.UpdatedAt = time.Now()
	return nil
}

// truncateToDate 去掉时间部分,只保留日历日期
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
