package reader

import "context"

// Repository 读者仓储接口（领域层定义）
type Repository interface {
	// Create 创建读者,成功后回填自增ID
	// 邮箱重复时返回ErrEmailDuplicate
	Create(ctx context.Context, r *Reader) error

	// FindByID 根据ID查询读者,不存在时返回ErrReaderNotFound
	FindByID(ctx context.Context, id uint) (*Reader, error)

	// FindAll 查询全部读者,按主键顺序返回
	FindAll(ctx context.Context) ([]*Reader, error)

	// Delete 删除读者
	Delete(ctx context.Context, id uint) error
}
