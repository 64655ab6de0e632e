package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/shoply/api/internal/errors"
	"github.com/shoply/api/internal/models"
	"github.com/shoply/api/internal/repositories/mocks"
	service "github.com/shoply/api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		categoryRepo := new(mocks.CategoryRepository)
		categoryService := service.NewCategoryService(categoryRepo)
		categoryRepo.On("CreateCategory", ctx, mock.AnythingOfType("*models.Category")).Return(nil).Once()

		// Act
		category, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "Coffee"})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "Coffee", category.Name)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("Every store failure surfaces as a database error", func(t *testing.T) {
		// Duplicate names land here too; there is no distinct
		// already-exists condition.
		categoryRepo := new(mocks.CategoryRepository)
		categoryService := service.NewCategoryService(categoryRepo)
		categoryRepo.On("CreateCategory", ctx, mock.AnythingOfType("*models.Category")).
			Return(errors.New(`duplicate key value violates unique constraint "categories_name_key"`)).Once()

		category, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "Coffee"})

		assert.Error(t, err)
		assert.Nil(t, category)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		categoryRepo := new(mocks.CategoryRepository)
		categoryService := service.NewCategoryService(categoryRepo)
		existing := []*models.Category{{ID: 1, Name: "Coffee"}, {ID: 2, Name: "Tea"}}
		categoryRepo.On("ListCategories", ctx).Return(existing, nil).Once()

		// Act
		categories, err := categoryService.ListCategories(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, categories, 2)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		categoryRepo := new(mocks.CategoryRepository)
		categoryService := service.NewCategoryService(categoryRepo)
		categoryRepo.On("ListCategories", ctx).Return(nil, errors.New("boom")).Once()

		// Act
		categories, err := categoryService.ListCategories(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, categories)
	})
}
