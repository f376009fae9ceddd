package repositories

import (
	"testing"

	"household-budget/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MonthlyBudgetRepositoryTestSuite is the test suite for the linked budget repository
type MonthlyBudgetRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo MonthlyBudgetRepositoryInterface
}

// SetupTest runs before each test
func (s *MonthlyBudgetRepositoryTestSuite) SetupTest() {
	s.db = openTestDB(s.T())
	seedCategories(s.T(), s.db)
	s.repo = NewMonthlyBudgetRepository(s.db)
}

// TearDownTest runs after each test
func (s *MonthlyBudgetRepositoryTestSuite) TearDownTest() {
	closeTestDB(s.db)
}

func TestMonthlyBudgetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MonthlyBudgetRepositoryTestSuite))
}

func (s *MonthlyBudgetRepositoryTestSuite) TestUpsert_IdempotentByKey() {
	first, err := s.repo.Upsert("2025-12", "food", 50000)
	require.NoError(s.T(), err)

	second, err := s.repo.Upsert("2025-12", "food", 60000)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), first.ID, second.ID)

	budgets, err := s.repo.FindByMonth("2025-12")
	require.NoError(s.T(), err)
	require.Len(s.T(), budgets, 1)
	assert.Equal(s.T(), int64(60000), budgets[0].Amount)
}

func (s *MonthlyBudgetRepositoryTestSuite) TestCreateIfAbsent() {
	created, err := s.repo.CreateIfAbsent("2025-12", "food", 90000)
	require.NoError(s.T(), err)
	assert.True(s.T(), created)

	created, err = s.repo.CreateIfAbsent("2025-12", "food", 1)
	require.NoError(s.T(), err)
	assert.False(s.T(), created)

	budgets, err := s.repo.FindByMonth("2025-12")
	require.NoError(s.T(), err)
	require.Len(s.T(), budgets, 1)
	assert.Equal(s.T(), int64(90000), budgets[0].Amount)
}

func (s *MonthlyBudgetRepositoryTestSuite) TestFindDetailsByMonth_JoinsCatalog() {
	_, err := s.repo.Upsert("2025-12", "food", 50000)
	require.NoError(s.T(), err)
	_, err = s.repo.Upsert("2025-12", "housing", 80000)
	require.NoError(s.T(), err)

	details, err := s.repo.FindDetailsByMonth("2025-12", "")
	require.NoError(s.T(), err)
	require.Len(s.T(), details, 2)

	assert.Equal(s.T(), "food", details[0].CategoryID)
	assert.Equal(s.T(), "食費", details[0].CategoryName)
	assert.Equal(s.T(), models.CategoryTypeVariable, details[0].CategoryType)
	assert.Equal(s.T(), int64(50000), details[0].Amount)
	assert.Equal(s.T(), "2025-12", details[0].Month)
}

func (s *MonthlyBudgetRepositoryTestSuite) TestFindDetailsByMonth_FiltersByType() {
	_, err := s.repo.Upsert("2025-12", "food", 50000)
	require.NoError(s.T(), err)
	_, err = s.repo.Upsert("2025-12", "housing", 80000)
	require.NoError(s.T(), err)

	details, err := s.repo.FindDetailsByMonth("2025-12", models.CategoryTypeFixed)
	require.NoError(s.T(), err)
	require.Len(s.T(), details, 1)
	assert.Equal(s.T(), "housing", details[0].CategoryID)
}

func (s *MonthlyBudgetRepositoryTestSuite) TestFindDetailsByMonth_SkipsUnknownCategory() {
	_, err := s.repo.Upsert("2025-12", "food", 50000)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.db.Create(&models.MonthlyBudget{Month: "2025-12", CategoryID: "pets", Amount: 5000}).Error)

	details, err := s.repo.FindDetailsByMonth("2025-12", "")
	require.NoError(s.T(), err)
	require.Len(s.T(), details, 1)
	assert.Equal(s.T(), "food", details[0].CategoryID)

	total, err := s.repo.SumByMonth("2025-12")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(55000), total)
}

func (s *MonthlyBudgetRepositoryTestSuite) TestDeleteAndFind() {
	budget, err := s.repo.Upsert("2025-12", "food", 50000)
	require.NoError(s.T(), err)

	found, err := s.repo.FindByID(budget.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "food", found.CategoryID)

	require.NoError(s.T(), s.repo.Delete(budget.ID))

	_, err = s.repo.FindByID(budget.ID)
	assert.ErrorIs(s.T(), err, ErrMonthlyBudgetNotFound)
	assert.ErrorIs(s.T(), s.repo.Delete(budget.ID), ErrMonthlyBudgetNotFound)
}

func (s *MonthlyBudgetRepositoryTestSuite) TestSumByMonth_EmptyIsZero() {
	total, err := s.repo.SumByMonth("2030-01")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), total)
}
