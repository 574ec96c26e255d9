package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLoan 测试借阅记录工厂方法
func TestNewLoan(t *testing.T) {
	t.Run("新记录处于OUTSTANDING状态", func(t *testing.T) {
		l := NewLoan(1, 2, date(2026, 8, 1), date(2026, 8, 15))
		assert.Equal(t, StatusOutstanding, l.Status())
		assert.True(t, l.IsOutstanding())
		assert.Nil(t, l.ReturnDate)
	})

	t.Run("日期截断到天", func(t *testing.T) {
		withTime := time.Date(2026, 8, 1, 14, 30, 45, 0, time.UTC)
		l := NewLoan(1, 2, withTime, withTime.AddDate(0, 0, 14))
		assert.Equal(t, date(2026, 8, 1), l.LoanDate)
		assert.Zero(t, l.LoanDate.Hour())
	})
}

// TestLoanValidate 测试借阅记录校验
func TestLoanValidate(t *testing.T) {
	t.Run("合法记录通过校验", func(t *testing.T) {
		l := NewLoan(1, 2, date(2026, 8, 1), date(2026, 8, 15))
		assert.NoError(t, l.Validate())
	})

	t.Run("借出日与到期日同一天合法", func(t *testing.T) {
		l := NewLoan(1, 2, date(2026, 8, 1), date(2026, 8, 1))
		assert.NoError(t, l.Validate())
	})

	t.Run("到期日早于借出日不合法", func(t *testing.T) {
		l := NewLoan(1, 2, date(2026, 8, 15), date(2026, 8, 1))
		assert.ErrorIs(t, l.Validate(), ErrInvalidDateRange)
	})

	t.Run("必须引用图书和读者", func(t *testing.T) {
		l := NewLoan(0, 2, date(2026, 8, 1), date(2026, 8, 15))
		assert.ErrorIs(t, l.Validate(), ErrBookIDRequired)

		l = NewLoan(1, 0, date(2026, 8, 1), date(2026, 8, 15))
		assert.ErrorIs(t, l.Validate(), ErrReaderIDRequired)
	})
}

// TestLoanReturn 测试归还状态转移
// 状态机唯一的一条边:OUTSTANDING → RETURNED,且只能走一次
func TestLoanReturn(t *testing.T) {
	t.Run("归还后进入RETURNED终态", func(t *testing.T) {
		l := NewLoan(1, 2, date(2026, 8, 1), date(2026, 8, 15))

		err := l.Return(time.Date(2026, 8, 10, 16, 20, 0, 0, time.UTC))
		require.NoError(t, err)

		assert.Equal(t, StatusReturned, l.Status())
		assert.False(t, l.IsOutstanding())
		require.NotNil(t, l.ReturnDate)
		// 归还日期同样截断到天
		assert.Equal(t, date(2026, 8, 10), *l.ReturnDate)
	})

	t.Run("重复归还被拒绝", func(t *testing.T) {
		l := NewLoan(1, 2, date(2026, 8, 1), date(2026, 8, 15))
		require.NoError(t, l.Return(date(2026, 8, 10)))

		err := l.Return(date(2026, 8, 11))
		assert.ErrorIs(t, err, ErrAlreadyReturned)
		// 第一次的归还日期不被覆盖
		assert.Equal(t, date(2026, 8, 10), *l.ReturnDate)
	})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
