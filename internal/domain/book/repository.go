package book

import "context"

// Repository 图书仓储接口（领域层定义）
//
// 设计说明:
// 1. 领域层不依赖GORM等外部库,基础设施层负责实现
// 2. LockByID/UpdateCopies只在借阅生命周期的事务内使用,
//    其余代码不应该直接修改AvailableCopies
type Repository interface {
	// Create 创建图书,成功后回填自增ID
	// ISBN重复时返回ErrISBNDuplicate
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查询图书,不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查询图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// FindAll 查询全部图书,按主键顺序返回
	FindAll(ctx context.Context) ([]*Book, error)

	// LockByID 悲观锁查询图书(SELECT FOR UPDATE)
	// 必须在事务上下文中调用:借出时先锁行,再检查可借副本数,
	// 防止两个并发请求同时借走最后一本
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateCopies 调整可借副本数(delta为±1)
	// 附带 available_copies + delta >= 0 的防护条件,行级保证不出现负数
	UpdateCopies(ctx context.Context, id uint, delta int) error

	// CountByAuthorID 统计作者名下图书数(作者删除保护用)
	CountByAuthorID(ctx context.Context, authorID uint) (int64, error)

	// CountByGenreID 统计分类下图书数(分类删除保护用)
	CountByGenreID(ctx context.Context, genreID uint) (int64, error)

	// Delete 删除图书
	Delete(ctx context.Context, id uint) error
}
