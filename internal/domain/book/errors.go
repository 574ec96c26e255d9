package book

import "errors"

// 领域错误定义
var (
	// 参数错误
	ErrTitleRequired    = errors.New("书名不能为空")
	ErrAuthorIDRequired = errors.New("必须指定作者")
	ErrGenreIDRequired  = errors.New("必须指定分类")
	ErrISBNRequired     = errors.New("ISBN不能为空")
	ErrInvalidISBN      = errors.New("ISBN格式不正确")
	ErrInvalidYear      = errors.New("出版年份不正确")
	ErrNegativeCopies   = errors.New("可借副本数不能为负数")

	// 业务错误
	ErrISBNDuplicate = errors.New("ISBN已存在")
	ErrBookNotFound  = errors.New("图书不存在")

	// ErrOutOfStock 没有可借副本
	// 借出操作在持有行锁检查后返回,保证不会出现负库存
	ErrOutOfStock = errors.New("图书暂无可借副本")

	// ErrBookHasLoans 图书存在借阅记录,不允许删除
	ErrBookHasLoans = errors.New("图书存在借阅记录,无法删除")
)
