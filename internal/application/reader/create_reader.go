package reader

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/reader"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// CreateReaderUseCase 读者注册用例
// 设计说明:邮箱唯一性由数据库唯一索引保证,应用层只负责翻译冲突错误
type CreateReaderUseCase struct {
	readerRepo reader.Repository
}

// NewCreateReaderUseCase 创建用例实例
func NewCreateReaderUseCase(readerRepo reader.Repository) *CreateReaderUseCase {
	return &CreateReaderUseCase{readerRepo: readerRepo}
}

// CreateReaderRequest 注册请求DTO
type CreateReaderRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     *string
}

// CreateReaderResponse 注册响应DTO
type CreateReaderResponse struct {
	ReaderID  uint   `json:"reader_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Execute 执行读者注册用例
func (uc *CreateReaderUseCase) Execute(ctx context.Context, req CreateReaderRequest) (*CreateReaderResponse, error) {
	r := reader.NewReader(req.FirstName, req.LastName, req.Email, req.Phone)
	if err := r.Validate(); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, err.Error())
	}

	if err := uc.readerRepo.Create(ctx, r); err != nil {
		if errors.Is(err, reader.ErrEmailDuplicate) {
			return nil, apperrors.ErrEmailDuplicate
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "注册读者失败")
	}

	return &CreateReaderResponse{
		ReaderID:  r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}, nil
}
