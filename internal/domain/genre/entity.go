package genre

import "time"

// Genre 图书分类实体
type Genre struct {
	ID          uint
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGenre 创建新分类（工厂方法）
func NewGenre(name string, description *string) *Genre {
	now := time.Now()
	return &Genre{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate 验证分类实体
func (g *Genre) Validate() error {
	if g.Name == "" {
		return ErrNameRequired
	}
	if len(g.Name) > 100 {
		return ErrNameTooLong
	}
	return nil
}
