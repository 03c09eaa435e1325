package usecase

import (
	"context"

	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
)

// CategoryUseCase implementa a listagem e o cadastro de categorias.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	logger       logger.Logger
}

func NewCategoryUC(categoryRepo CategoryRepository, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (c *CategoryUseCase) ListCategories(ctx context.Context) ([]CategoryInfo, error) {
	const op = "CategoryUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	infos := make([]CategoryInfo, 0, len(categories))
	for i := range categories {
		infos = append(infos, CategoryInfo{
			ID:          categories[i].ID.Hex(),
			Name:        categories[i].Name,
			Description: categories[i].Description,
		})
	}

	return infos, nil
}

func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (string, error) {
	const op = "CategoryUseCase.CreateCategory"

	category, err := validateCategory(req)
	if err != nil {
		return "", err
	}

	id, err := c.categoryRepo.Insert(ctx, category)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return id.Hex(), nil
}
