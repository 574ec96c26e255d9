package loan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// TestReturnBook 测试归还图书用例
func TestReturnBook(t *testing.T) {
	ctx := context.Background()

	t.Run("归还成功,副本数加1且记录进入RETURNED", func(t *testing.T) {
		f := newBorrowFixture(t, 2)
		f.ret.now = func() time.Time { return time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC) }

		borrowed, err := f.borrow.Execute(ctx, borrowReq())
		require.NoError(t, err)

		b, _ := f.bookRepo.FindByID(ctx, 1)
		require.Equal(t, 1, b.AvailableCopies)

		resp, err := f.ret.Execute(ctx, borrowed.LoanID)
		require.NoError(t, err)

		assert.Equal(t, borrowed.LoanID, resp.LoanID)
		assert.Equal(t, uint(1), resp.BookID)
		assert.Equal(t, "2026-08-10", resp.ReturnDate, "归还日期取当天,截断到天")
		assert.Equal(t, "RETURNED", resp.Status)

		b, _ = f.bookRepo.FindByID(ctx, 1)
		assert.Equal(t, 2, b.AvailableCopies, "副本数应恰好加1")

		l, err := f.loanRepo.FindByID(ctx, borrowed.LoanID)
		require.NoError(t, err)
		assert.False(t, l.IsOutstanding())
	})

	t.Run("重复归还返回未找到,副本数只加一次", func(t *testing.T) {
		f := newBorrowFixture(t, 1)

		borrowed, err := f.borrow.Execute(ctx, borrowReq())
		require.NoError(t, err)

		_, err = f.ret.Execute(ctx, borrowed.LoanID)
		require.NoError(t, err)

		_, err = f.ret.Execute(ctx, borrowed.LoanID)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeLoanNotFound, apperrors.GetAppError(err).Code)

		b, _ := f.bookRepo.FindByID(ctx, 1)
		assert.Equal(t, 1, b.AvailableCopies, "第二次归还不应再加副本数")
	})

	t.Run("借阅记录不存在", func(t *testing.T) {
		f := newBorrowFixture(t, 1)

		_, err := f.ret.Execute(ctx, 99)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeLoanNotFound, apperrors.GetAppError(err).Code)
	})
}

// TestLoanLifecycle 借阅生命周期走查
// 场景:2个副本的图书,连借两次借空,第三次被拒,归还一次后又能借出
func TestLoanLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newBorrowFixture(t, 2)

	first, err := f.borrow.Execute(ctx, borrowReq())
	require.NoError(t, err)

	_, err = f.borrow.Execute(ctx, borrowReq())
	require.NoError(t, err)

	// 借空之后再借被拒
	_, err = f.borrow.Execute(ctx, borrowReq())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeOutOfStock, apperrors.GetAppError(err).Code)

	// 归还一本,又能借出
	_, err = f.ret.Execute(ctx, first.LoanID)
	require.NoError(t, err)

	third, err := f.borrow.Execute(ctx, borrowReq())
	require.NoError(t, err)
	assert.Equal(t, "OUTSTANDING", third.Status)

	// 台账核对:3条借阅记录,1条已归还;副本数回到0
	loans, err := f.loanRepo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 3)

	var returned int
	for _, l := range loans {
		if !l.IsOutstanding() {
			returned++
		}
	}
	assert.Equal(t, 1, returned)

	b, _ := f.bookRepo.FindByID(ctx, 1)
	assert.Equal(t, 0, b.AvailableCopies)
}

// TestListLoans 测试借阅列表查询
func TestListLoans(t *testing.T) {
	ctx := context.Background()
	f := newBorrowFixture(t, 2)
	list := NewListLoansUseCase(f.loanRepo)

	borrowed, err := f.borrow.Execute(ctx, borrowReq())
	require.NoError(t, err)
	_, err = f.borrow.Execute(ctx, borrowReq())
	require.NoError(t, err)
	_, err = f.ret.Execute(ctx, borrowed.LoanID)
	require.NoError(t, err)

	items, err := list.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "RETURNED", items[0].Status)
	require.NotNil(t, items[0].ReturnDate)
	assert.Equal(t, "OUTSTANDING", items[1].Status)
	assert.Nil(t, items[1].ReturnDate, "未归还记录的return_date应为null")
}
