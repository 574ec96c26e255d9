package reader

import "errors"

// 领域错误定义
var (
	ErrFirstNameRequired = errors.New("读者名字不能为空")
	ErrLastNameRequired  = errors.New("读者姓氏不能为空")
	ErrEmailRequired     = errors.New("邮箱不能为空")
	ErrInvalidEmail      = errors.New("邮箱格式不正确")

	// ErrEmailDuplicate 邮箱已被其他读者占用(自然键冲突)
	ErrEmailDuplicate = errors.New("邮箱已被注册")

	// ErrReaderNotFound 读者不存在
	ErrReaderNotFound = errors.New("读者不存在")

	// ErrReaderHasLoans 读者存在借阅记录,不允许删除
	ErrReaderHasLoans = errors.New("读者存在借阅记录,无法删除")
)
