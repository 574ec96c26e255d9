package genre

import "errors"

// 领域错误定义
var (
	ErrNameRequired = errors.New("分类名称不能为空")
	ErrNameTooLong  = errors.New("分类名称过长")

	// ErrGenreNotFound 分类不存在
	ErrGenreNotFound = errors.New("图书分类不存在")

	// ErrGenreHasBooks 分类下仍有图书,不允许删除
	// 说明:删除保护规则与作者侧保持一致
	ErrGenreHasBooks = errors.New("分类下存在图书,无法删除")
)
