package dto

// CreateBookRequest HTTP图书登记请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值或长度范围校验
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required,max=200" example:"百年孤独"`
	AuthorID        uint   `json:"author_id" binding:"required" example:"1"`
	GenreID         uint   `json:"genre_id" binding:"required" example:"1"`
	ISBN            string `json:"isbn" binding:"required,min=10,max=20" example:"9787544253994"`
	PublicationYear int    `json:"publication_year" binding:"required,min=1,max=9999" example:"1967"`
	AvailableCopies int    `json:"available_copies" binding:"min=0" example:"3"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	BookID          uint   `json:"book_id" example:"1"`
	Title           string `json:"title" example:"百年孤独"`
	AuthorID        uint   `json:"author_id" example:"1"`
	GenreID         uint   `json:"genre_id" example:"1"`
	ISBN            string `json:"isbn" example:"9787544253994"`
	PublicationYear int    `json:"publication_year" example:"1967"`
	AvailableCopies int    `json:"available_copies" example:"3"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	List []BookResponse `json:"list"`
}
