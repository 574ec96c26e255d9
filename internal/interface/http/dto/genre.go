package dto

// CreateGenreRequest HTTP创建分类请求
type CreateGenreRequest struct {
	Name        string  `json:"name" binding:"required,max=100" example:"长篇小说"`
	Description *string `json:"description" binding:"omitempty,max=2000" example:"篇幅较长的虚构叙事作品"`
}

// GenreResponse HTTP分类响应
type GenreResponse struct {
	GenreID     uint    `json:"genre_id" example:"1"`
	Name        string  `json:"name" example:"长篇小说"`
	Description *string `json:"description" example:"篇幅较长的虚构叙事作品"`
}

// ListGenresResponse HTTP分类列表响应
type ListGenresResponse struct {
	List []GenreResponse `json:"list"`
}
