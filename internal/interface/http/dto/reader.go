package dto

// CreateReaderRequest HTTP读者注册请求
type CreateReaderRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=100" example:"三"`
	LastName  string  `json:"last_name" binding:"required,max=100" example:"张"`
	Email     string  `json:"email" binding:"required,email,max=200" example:"zhangsan@example.com"`
	Phone     *string `json:"phone" binding:"omitempty,max=30" example:"13800138000"`
}

// ReaderResponse HTTP读者响应
type ReaderResponse struct {
	ReaderID  uint    `json:"reader_id" example:"1"`
	FirstName string  `json:"first_name" example:"三"`
	LastName  string  `json:"last_name" example:"张"`
	Email     string  `json:"email" example:"zhangsan@example.com"`
	Phone     *string `json:"phone" example:"13800138000"`
}

// ListReadersResponse HTTP读者列表响应
type ListReadersResponse struct {
	List []ReaderResponse `json:"list"`
}
