package dto

// CreateAuthorRequest HTTP创建作者请求
type CreateAuthorRequest struct {
	Name string  `json:"name" binding:"required,max=100" example:"加西亚·马尔克斯"`
	Bio  *string `json:"bio" binding:"omitempty,max=2000" example:"哥伦比亚作家,魔幻现实主义代表人物"`
}

// AuthorResponse HTTP作者响应
type AuthorResponse struct {
	AuthorID uint    `json:"author_id" example:"1"`
	Name     string  `json:"name" example:"加西亚·马尔克斯"`
	Bio      *string `json:"bio" example:"哥伦比亚作家,魔幻现实主义代表人物"`
}

// ListAuthorsResponse HTTP作者列表响应
type ListAuthorsResponse struct {
	List []AuthorResponse `json:"list"`
}
