package genre

import "context"

// Repository 分类仓储接口（领域层定义）
type Repository interface {
	// Create 创建分类,成功后回填自增ID
	Create(ctx context.Context, g *Genre) error

	// FindByID 根据ID查询分类,不存在时返回ErrGenreNotFound
	FindByID(ctx context.Context, id uint) (*Genre, error)

	// FindAll 查询全部分类,按主键顺序返回
	FindAll(ctx context.Context) ([]*Genre, error)

	// Delete 删除分类
	Delete(ctx context.Context, id uint) error
}
