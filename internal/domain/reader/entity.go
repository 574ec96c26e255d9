package reader

import (
	"strings"
	"time"
)

// Reader 读者实体
// Email是自然键(唯一索引),Phone为可选字段
type Reader struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReader 创建新读者（工厂方法）
func NewReader(firstName, lastName, email string, phone *string) *Reader {
	now := time.Now()
	return &Reader{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate 验证读者实体
func (r *Reader) Validate() error {
	if r.FirstName == "" {
		return ErrFirstNameRequired
	}
	if r.LastName == "" {
		return ErrLastNameRequired
	}
	if r.Email == "" {
		return ErrEmailRequired
	}
	// 邮箱格式校验(简化版,完整校验交给HTTP层的binding tag)
	if !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// FullName 返回读者全名
func (r *Reader) FullName() string {
	return r.FirstName + " " + r.LastName
}
