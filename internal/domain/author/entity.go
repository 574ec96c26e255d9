package author

import "time"

// Author 作者实体（聚合根）
// 设计说明:
// 1. 领域实体不依赖GORM tag(infrastructure层的Repository实现时会处理映射)
// 2. Bio为可选字段,使用指针表达"未填写"与"空字符串"的区别
type Author struct {
	ID        uint
	Name      string
	Bio       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建新作者（工厂方法）
func NewAuthor(name string, bio *string) *Author {
	now := time.Now()
	return &Author{
		Name:      name,
		Bio:       bio,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate 验证作者实体
// 业务规则校验在领域层完成,不依赖数据库约束
func (a *Author) Validate() error {
	if a.Name == "" {
		return ErrNameRequired
	}
	if len(a.Name) > 100 {
		return ErrNameTooLong
	}
	return nil
}
