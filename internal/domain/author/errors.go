package author

import "errors"

// 领域错误定义
// 使用errors.New创建哨兵错误(sentinel error),可以用errors.Is判断错误类型
var (
	ErrNameRequired = errors.New("作者姓名不能为空")
	ErrNameTooLong  = errors.New("作者姓名过长")

	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = errors.New("作者不存在")

	// ErrAuthorHasBooks 作者名下仍有图书,不允许删除
	ErrAuthorHasBooks = errors.New("作者名下存在图书,无法删除")
)
