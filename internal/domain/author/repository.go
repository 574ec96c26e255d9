package author

import "context"

// Repository 作者仓储接口（领域层定义）
// 设计说明:
// 1. 依赖倒置原则:高层定义接口,低层(infrastructure/persistence)实现
// 2. 便于单元测试(Mock仓储)
type Repository interface {
	// Create 创建作者,成功后回填自增ID
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查询作者,不存在时返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindAll 查询全部作者,按主键顺序返回
	FindAll(ctx context.Context) ([]*Author, error)

	// Delete 删除作者
	// 业务规则:仍被图书引用的作者不允许删除(由应用层先行校验)
	Delete(ctx context.Context, id uint) error
}
