package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/genre"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// genreRepository 分类仓储实现(MySQL)
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建分类仓储
func NewGenreRepository(db *gorm.DB) genre.Repository {
	return &genreRepository{db: db}
}

// Create 创建分类
func (r *genreRepository) Create(ctx context.Context, g *genre.Genre) error {
	model := &GenreModel{
		Name:        g.Name,
		Description: g.Description,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建分类失败")
	}

	g.ID = model.ID
	g.CreatedAt = model.CreatedAt
	g.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找分类
func (r *genreRepository) FindByID(ctx context.Context, id uint) (*genre.Genre, error) {
	var model GenreModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return toGenreEntity(&model), nil
}

// FindAll 查询全部分类(按主键顺序)
func (r *genreRepository) FindAll(ctx context.Context) ([]*genre.Genre, error) {
	var models []GenreModel
	if err := getDB(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	genres := make([]*genre.Genre, len(models))
	for i := range models {
		genres[i] = toGenreEntity(&models[i])
	}
	return genres, nil
}

// Delete 删除分类
func (r *genreRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&GenreModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return genre.ErrGenreNotFound
	}
	return nil
}

// toGenreEntity GORM模型 → 领域实体
func toGenreEntity(model *GenreModel) *genre.Genre {
	return &genre.Genre{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
