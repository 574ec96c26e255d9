package dto

// BorrowBookRequest HTTP借书请求
// 日期字段统一使用ISO-8601日历日期(YYYY-MM-DD),由Handler负责解析
type BorrowBookRequest struct {
	BookID   uint   `json:"book_id" binding:"required" example:"1"`
	ReaderID uint   `json:"reader_id" binding:"required" example:"1"`
	LoanDate string `json:"loan_date" binding:"required" example:"2026-08-01"`
	DueDate  string `json:"due_date" binding:"required" example:"2026-08-15"`
}

// LoanResponse HTTP借阅记录响应
// return_date为null表示借阅仍未归还
type LoanResponse struct {
	LoanID     uint    `json:"loan_id" example:"1"`
	BookID     uint    `json:"book_id" example:"1"`
	ReaderID   uint    `json:"reader_id" example:"1"`
	LoanDate   string  `json:"loan_date" example:"2026-08-01"`
	DueDate    string  `json:"due_date" example:"2026-08-15"`
	ReturnDate *string `json:"return_date" example:"2026-08-10"`
	Status     string  `json:"status" example:"OUTSTANDING"`
}

// ReturnBookResponse HTTP还书响应
type ReturnBookResponse struct {
	LoanID     uint   `json:"loan_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	ReturnDate string `json:"return_date" example:"2026-08-10"`
	Status     string `json:"status" example:"RETURNED"`
}

// ListLoansResponse HTTP借阅列表响应
type ListLoansResponse struct {
	List []LoanResponse `json:"list"`
}
