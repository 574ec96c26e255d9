package loan

import "errors"

// 领域错误定义
var (
	// 参数错误
	ErrBookIDRequired   = errors.New("必须指定图书")
	ErrReaderIDRequired = errors.New("必须指定读者")
	ErrDateRequired     = errors.New("借出日期与应还日期不能为空")
	ErrInvalidDateRange = errors.New("应还日期不能早于借出日期")

	// ErrLoanNotFound 借阅记录不存在或已归还
	// 说明:归还操作按(loan_id, return_date IS NULL)联合查找,
	// "不存在"与"已归还"刻意不做区分,对外表现为同一个404
	ErrLoanNotFound = errors.New("借阅记录不存在或已归还")

	// ErrAlreadyReturned 记录已处于终态,不允许二次归还
	ErrAlreadyReturned = errors.New("该借阅记录已归还")
)
