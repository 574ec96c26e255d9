package integration

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明:借阅生命周期集成测试
//
// 这是整个系统最核心的测试:验证借书/还书与图书可借副本数
// 在真实MySQL事务与行锁下的一致性。
//
// 测试场景覆盖:
// 1. 借书扣减副本数,还书回补副本数
// 2. 借空后继续借被拒绝
// 3. 重复还书只回补一次
// 4. 并发借最后一本,恰好一个成功

func availableCopies(t *testing.T, bookID uint) int {
	t.Helper()
	resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID))
	require.Equal(t, 0, resp.Code, "查询图书失败: %s", resp.Message)

	var data BookData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.AvailableCopies
}

// TestLoanLifecycle 测试借还完整流程
func TestLoanLifecycle(t *testing.T) {
	RequireServer(t)

	authorID := CreateTestAuthor(t, "借阅测试作者")
	genreID := CreateTestGenre(t, "借阅测试分类")
	readerID := CreateTestReader(t, "loan_reader")

	t.Run("借书扣减副本数", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, genreID, 2)

		loanID := BorrowTestBook(t, bookID, readerID)
		assert.NotZero(t, loanID)
		assert.Equal(t, 1, availableCopies(t, bookID), "借出后副本数应减1")

		// 借阅记录处于OUTSTANDING
		resp := GetJSON(t, fmt.Sprintf("%s/loans/%d", BaseURL, loanID))
		require.Equal(t, 0, resp.Code)

		var loan LoanData
		require.NoError(t, json.Unmarshal(resp.Data, &loan))
		assert.Equal(t, "OUTSTANDING", loan.Status)
		assert.Nil(t, loan.ReturnDate)
	})

	t.Run("借空后继续借被拒绝", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, genreID, 1)
		BorrowTestBook(t, bookID, readerID)

		resp := PostJSON(t, BaseURL+"/loans", map[string]interface{}{
			"book_id":   bookID,
			"reader_id": readerID,
			"loan_date": "2026-08-01",
			"due_date":  "2026-08-15",
		})
		assert.Equal(t, 40001, resp.Code, "无可借副本应被拒绝")
		assert.Equal(t, 0, availableCopies(t, bookID), "失败的借出不应改变副本数")
	})

	t.Run("还书回补副本数", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, genreID, 1)
		loanID := BorrowTestBook(t, bookID, readerID)
		require.Equal(t, 0, availableCopies(t, bookID))

		resp := PutJSON(t, fmt.Sprintf("%s/loans/%d/return", BaseURL, loanID), nil)
		require.Equal(t, 0, resp.Code, "还书应该成功: %s", resp.Message)

		var loan LoanData
		require.NoError(t, json.Unmarshal(resp.Data, &loan))
		assert.Equal(t, "RETURNED", loan.Status)

		assert.Equal(t, 1, availableCopies(t, bookID), "归还后副本数应加1")
	})

	t.Run("重复还书只回补一次", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, genreID, 1)
		loanID := BorrowTestBook(t, bookID, readerID)

		resp := PutJSON(t, fmt.Sprintf("%s/loans/%d/return", BaseURL, loanID), nil)
		require.Equal(t, 0, resp.Code)

		resp = PutJSON(t, fmt.Sprintf("%s/loans/%d/return", BaseURL, loanID), nil)
		assert.Equal(t, 40405, resp.Code, "重复还书应返回未找到")

		assert.Equal(t, 1, availableCopies(t, bookID), "副本数只应回补一次")
	})

	t.Run("到期日早于借出日被拒绝", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, genreID, 1)

		resp := PostJSON(t, BaseURL+"/loans", map[string]interface{}{
			"book_id":   bookID,
			"reader_id": readerID,
			"loan_date": "2026-08-15",
			"due_date":  "2026-08-01",
		})
		assert.Equal(t, 40900, resp.Code, "非法日期范围应被拒绝")
	})

	t.Run("有借阅记录的图书和读者不可删除", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, genreID, 1)
		rID := CreateTestReader(t, "guard_reader")
		BorrowTestBook(t, bookID, rID)

		resp := DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID))
		assert.Equal(t, 40002, resp.Code, "有借阅记录的图书不可删除")

		resp = DeleteJSON(t, fmt.Sprintf("%s/readers/%d", BaseURL, rID))
		assert.Equal(t, 40002, resp.Code, "有借阅记录的读者不可删除")
	})
}

// TestLoanConcurrentBorrow 并发借最后一本
// 验证SELECT FOR UPDATE行锁下不会超借
func TestLoanConcurrentBorrow(t *testing.T) {
	RequireServer(t)

	authorID := CreateTestAuthor(t, "并发测试作者")
	genreID := CreateTestGenre(t, "并发测试分类")
	bookID := CreateTestBook(t, authorID, genreID, 1)

	const n = 8
	readerIDs := make([]uint, n)
	for i := 0; i < n; i++ {
		readerIDs[i] = CreateTestReader(t, fmt.Sprintf("concurrent_%d", i))
	}

	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := PostJSON(t, BaseURL+"/loans", map[string]interface{}{
				"book_id":   bookID,
				"reader_id": readerIDs[i],
				"loan_date": "2026-08-01",
				"due_date":  "2026-08-15",
			})
			codes[i] = resp.Code
		}(i)
	}
	wg.Wait()

	var success, outOfStock int
	for _, code := range codes {
		switch code {
		case 0:
			success++
		case 40001:
			outOfStock++
		}
	}

	assert.Equal(t, 1, success, "恰好一个并发请求成功")
	assert.Equal(t, n-1, outOfStock, "其余请求应收到无可借副本错误")
	assert.Equal(t, 0, availableCopies(t, bookID), "副本数不能为负")
}
