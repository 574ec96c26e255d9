package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/reader"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// readerRepository 读者仓储实现(MySQL)
type readerRepository struct {
	db *gorm.DB
}

// NewReaderRepository 创建读者仓储
func NewReaderRepository(db *gorm.DB) reader.Repository {
	return &readerRepository{db: db}
}

// Create 创建读者
func (r *readerRepository) Create(ctx context.Context, rd *reader.Reader) error {
	model := &ReaderModel{
		FirstName: rd.FirstName,
		LastName:  rd.LastName,
		Email:     rd.Email,
		Phone:     rd.Phone,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// 检查是否为邮箱重复错误(自然键冲突)
		if isDuplicateError(err) {
			return reader.ErrEmailDuplicate
		}
		return apperrors.Wrap(err, "创建读者失败")
	}

	rd.ID = model.ID
	rd.CreatedAt = model.CreatedAt
	rd.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找读者
func (r *readerRepository) FindByID(ctx context.Context, id uint) (*reader.Reader, error) {
	var model ReaderModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reader.ErrReaderNotFound
		}
		return nil, apperrors.Wrap(err, "查询读者失败")
	}

	return toReaderEntity(&model), nil
}

// FindAll 查询全部读者(按主键顺序)
func (r *readerRepository) FindAll(ctx context.Context) ([]*reader.Reader, error) {
	var models []ReaderModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询读者列表失败")
	}

	readers := make([]*reader.Reader, len(models))
	for i := range models {
		readers[i] = toReaderEntity(&models[i])
	}
	return readers, nil
}

// Delete 删除读者
func (r *readerRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ReaderModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除读者失败")
	}
	if result.RowsAffected == 0 {
		return reader.ErrReaderNotFound
	}
	return nil
}

// toReaderEntity GORM模型 → 领域实体
func toReaderEntity(model *ReaderModel) *reader.Reader {
	return &reader.Reader{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
