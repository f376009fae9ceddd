package repositories

import (
	"errors"

	"household-budget/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this id already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// Create inserts a catalog category
func (r *categoryRepository) Create(category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return &DatabaseError{Op: "create category", Err: err}
	}

	return nil
}

// FindByID retrieves a category by its id
func (r *categoryRepository) FindByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, &DatabaseError{Op: "find category by id", Err: err}
	}

	return &category, nil
}

// FindByName retrieves a category by exact display name
func (r *categoryRepository) FindByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).Order("id").First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, &DatabaseError{Op: "find category by name", Err: err}
	}

	return &category, nil
}

// List returns all categories, optionally restricted to one type
func (r *categoryRepository) List(categoryType string) ([]models.Category, error) {
	categories := []models.Category{}

	query := r.db.Model(&models.Category{})
	if categoryType != "" {
		query = query.Where("type = ?", categoryType)
	}

	if err := query.Order("created_at").Order("id").Find(&categories).Error; err != nil {
		return nil, &DatabaseError{Op: "list categories", Err: err}
	}

	return categories, nil
}

// ExistsByID reports whether a category with the given id exists
func (r *categoryRepository) ExistsByID(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, &DatabaseError{Op: "check category existence", Err: err}
	}
	return count > 0, nil
}

// Count returns the number of catalog categories
func (r *categoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, &DatabaseError{Op: "count categories", Err: err}
	}
	return count, nil
}
