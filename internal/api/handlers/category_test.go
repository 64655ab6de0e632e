package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shoply/api/internal/api/handlers"
	appErrors "github.com/shoply/api/internal/errors"
	"github.com/shoply/api/internal/models"
	"github.com/shoply/api/internal/services/mocks"
	"github.com/shoply/api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCategoryHandlerTest() (*mocks.CategoryService, *handlers.CategoryHandler) {
	mockCategoryService := new(mocks.CategoryService)
	categoryHandler := handlers.NewCategoryHandler(mockCategoryService)

	return mockCategoryService, categoryHandler
}

func TestCreateCategoryHandler(t *testing.T) {
	t.Run("Success - 201 with created category", func(t *testing.T) {
		// Arrange
		mockCategoryService, categoryHandler := setupCategoryHandlerTest()
		req := models.CreateCategoryRequest{Name: "Coffee"}
		created := &models.Category{ID: 1, Name: "Coffee"}
		mockCategoryService.On("CreateCategory", mock.Anything, &req).Return(created, nil).Once()

		body, _ := json.Marshal(req)
		httpReq := testutils.CreateTestRequest("POST", "/api/categories", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		categoryHandler.CreateCategory()(recorder, httpReq)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockCategoryService.AssertExpectations(t)
	})

	t.Run("Failure - Validation error yields 400", func(t *testing.T) {
		// Arrange
		mockCategoryService, categoryHandler := setupCategoryHandlerTest()

		body, _ := json.Marshal(map[string]string{"name": ""})
		httpReq := testutils.CreateTestRequest("POST", "/api/categories", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		categoryHandler.CreateCategory()(recorder, httpReq)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCategoryService.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Store error yields 500, duplicates included", func(t *testing.T) {
		// Arrange
		mockCategoryService, categoryHandler := setupCategoryHandlerTest()
		mockCategoryService.On("CreateCategory", mock.Anything, mock.AnythingOfType("*models.CreateCategoryRequest")).
			Return(nil, appErrors.DatabaseError("Failed to create category")).Once()

		body, _ := json.Marshal(models.CreateCategoryRequest{Name: "Coffee"})
		httpReq := testutils.CreateTestRequest("POST", "/api/categories", bytes.NewBuffer(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		categoryHandler.CreateCategory()(recorder, httpReq)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Equal(t, "Failed to create category", decodeErrorBody(t, recorder).Error)
	})
}

func TestListCategoriesHandler(t *testing.T) {
	t.Run("Success - 200 with array", func(t *testing.T) {
		// Arrange
		mockCategoryService, categoryHandler := setupCategoryHandlerTest()
		categories := []*models.Category{{ID: 1, Name: "Coffee"}, {ID: 2, Name: "Tea"}}
		mockCategoryService.On("ListCategories", mock.Anything).Return(categories, nil).Once()

		httpReq := testutils.CreateTestRequest("GET", "/api/categories", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		categoryHandler.ListCategories()(recorder, httpReq)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var got []*models.Category
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})
}
