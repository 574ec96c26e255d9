package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBookValidate 测试图书实体校验
func TestBookValidate(t *testing.T) {
	t.Run("合法图书通过校验", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 1, "9787544253994", 1967, 3)
		assert.NoError(t, b.Validate())
	})

	t.Run("标题不能为空", func(t *testing.T) {
		b := NewBook("", 1, 1, "9787544253994", 1967, 3)
		assert.ErrorIs(t, b.Validate(), ErrTitleRequired)
	})

	t.Run("必须引用作者", func(t *testing.T) {
		b := NewBook("百年孤独", 0, 1, "9787544253994", 1967, 3)
		assert.ErrorIs(t, b.Validate(), ErrAuthorIDRequired)
	})

	t.Run("必须引用分类", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 0, "9787544253994", 1967, 3)
		assert.ErrorIs(t, b.Validate(), ErrGenreIDRequired)
	})

	t.Run("ISBN不能为空", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 1, "", 1967, 3)
		assert.ErrorIs(t, b.Validate(), ErrISBNRequired)
	})

	t.Run("ISBN长度不合法", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 1, "123", 1967, 3)
		assert.ErrorIs(t, b.Validate(), ErrInvalidISBN)
	})

	t.Run("带连字符的ISBN合法", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 1, "978-7-5442-5399-4", 1967, 3)
		assert.NoError(t, b.Validate())
	})

	t.Run("可借副本数不能为负", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 1, "9787544253994", 1967, -1)
		assert.ErrorIs(t, b.Validate(), ErrNegativeCopies)
	})

	t.Run("可借副本数为零是合法状态", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 1, "9787544253994", 1967, 0)
		assert.NoError(t, b.Validate())
	})
}

// TestBookCanLend 测试可借判断
func TestBookCanLend(t *testing.T) {
	t.Run("有可借副本", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 1, "9787544253994", 1967, 1)
		assert.True(t, b.CanLend())
		assert.False(t, b.IsOutOfStock())
	})

	t.Run("无可借副本", func(t *testing.T) {
		b := NewBook("百年孤独", 1, 1, "9787544253994", 1967, 0)
		assert.False(t, b.CanLend())
		assert.True(t, b.IsOutOfStock())
	})
}
