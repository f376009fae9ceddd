package services

import (
	"errors"
	"fmt"
	"log/slog"

	"household-budget/internal/models"
	"household-budget/internal/repositories"
)

var ErrCategoryNotFound = errors.New("category not found")

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new catalog service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *slog.Logger) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// SeedDefaults inserts every built-in category whose id is not stored yet
// and returns how many were inserted
func (s *categoryService) SeedDefaults() (int, error) {
	inserted := 0

	for _, category := range models.DefaultCategories() {
		exists, err := s.categoryRepo.ExistsByID(category.ID)
		if err != nil {
			return inserted, fmt.Errorf("failed to check category %s: %w", category.ID, err)
		}
		if exists {
			continue
		}

		if err := s.categoryRepo.Create(&category); err != nil {
			if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
				continue
			}
			return inserted, fmt.Errorf("failed to seed category %s: %w", category.ID, err)
		}
		inserted++
	}

	if inserted > 0 {
		s.logger.Info("seeded default categories", "inserted", inserted)
	}

	return inserted, nil
}

// ListCategories returns the catalog, optionally restricted to one type
func (s *categoryService) ListCategories(categoryType string) ([]models.Category, error) {
	if categoryType != "" && !models.IsValidCategoryType(categoryType) {
		return nil, models.ErrInvalidCategoryType
	}

	categories, err := s.categoryRepo.List(categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// GetCategory returns one catalog entry
func (s *categoryService) GetCategory(id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}
