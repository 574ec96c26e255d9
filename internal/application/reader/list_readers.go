package reader

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/reader"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// ListReadersUseCase 读者列表用例(只读)
type ListReadersUseCase struct {
	readerRepo reader.Repository
}

// NewListReadersUseCase 创建用例实例
func NewListReadersUseCase(readerRepo reader.Repository) *ListReadersUseCase {
	return &ListReadersUseCase{readerRepo: readerRepo}
}

// ReaderItem 读者列表项
type ReaderItem struct {
	ReaderID  uint    `json:"reader_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

func toReaderItem(r *reader.Reader) ReaderItem {
	return ReaderItem{
		ReaderID:  r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// Execute 查询全部读者(按主键顺序)
func (uc *ListReadersUseCase) Execute(ctx context.Context) ([]ReaderItem, error) {
	readers, err := uc.readerRepo.FindAll(ctx)
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询读者列表失败")
	}

	items := make([]ReaderItem, len(readers))
	for i, r := range readers {
		items[i] = toReaderItem(r)
	}
	return items, nil
}

// GetReaderUseCase 读者详情用例
type GetReaderUseCase struct {
	readerRepo reader.Repository
}

// NewGetReaderUseCase 创建用例实例
func NewGetReaderUseCase(readerRepo reader.Repository) *GetReaderUseCase {
	return &GetReaderUseCase{readerRepo: readerRepo}
}

// Execute 根据ID查询读者
func (uc *GetReaderUseCase) Execute(ctx context.Context, id uint) (*ReaderItem, error) {
	r, err := uc.readerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reader.ErrReaderNotFound) {
			return nil, apperrors.ErrReaderNotFound
		}
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "查询读者失败")
	}

	item := toReaderItem(r)
	return &item, nil
}
