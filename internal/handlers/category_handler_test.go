package handlers

import (
	"net/http"

	"household-budget/internal/models"
	"household-budget/internal/services"
)

func (s *APIHandlerSuite) TestListCategories() {
	s.categorySvc.EXPECT().ListCategories("").Return(models.DefaultCategories(), nil)

	rec := s.do(http.MethodGet, "/api/categories", nil)

	s.Equal(http.StatusOK, rec.Code)
	var categories []models.Category
	s.decodeData(rec, &categories)
	s.Len(categories, 14)
}

func (s *APIHandlerSuite) TestListCategories_UnknownType() {
	rec := s.do(http.MethodGet, "/api/categories?type=luxury", nil)

	s.assertError(rec, http.StatusUnprocessableEntity, "VALIDATION_007")
}

func (s *APIHandlerSuite) TestGetCategory_NotFound() {
	s.categorySvc.EXPECT().GetCategory("pets").Return(nil, services.ErrCategoryNotFound)

	rec := s.do(http.MethodGet, "/api/categories/pets", nil)

	s.assertError(rec, http.StatusNotFound, "CATEGORY_001")
}
