package handlers

import (
	"net/http"

	"household-budget/internal/dto"
	"household-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the category catalog
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories lists the catalog ordered by id
//
// Method: GET /api/categories?type=fixed
//
// Error Responses:
//   - 422: VALIDATION_007 unknown type
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	var query dto.ListCategoriesQuery
	if err := bindAndValidate(c, &query); err != nil {
		return sendRequestError(c, err)
	}

	categories, err := h.categoryService.ListCategories(query.Type)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: categories})
}

// GetCategory fetches one catalog entry by its id
//
// Method: GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryService.GetCategory(c.Param("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: category})
}
