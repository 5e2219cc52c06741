package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kasicka/finance_tracker_app/internal/apperrors"
	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	portssvc "github.com/kasicka/finance_tracker_app/internal/core/ports/services"
	"github.com/kasicka/finance_tracker_app/internal/core/services"
	"github.com/kasicka/finance_tracker_app/internal/dto"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

func int16Ptr(v int16) *int16 {
	return &v
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		Name:  "cestovani",
		Icon:  "plane",
		Color: "#0088ff",
		Type:  int16Ptr(0),
	}

	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.CategoryID != "" && c.Name == req.Name && c.Icon == req.Icon &&
			c.Color == req.Color && c.Type == domain.CategoryTypeExpense
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.NotEmpty(category.CategoryID)
	suite.Equal(req.Name, category.Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidType() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		Name: "bad",
		Type: int16Ptr(5),
	}

	category, err := suite.service.CreateCategory(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(category)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		Name: "jidlo",
		Type: int16Ptr(0),
	}

	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Return(apperrors.ErrDuplicate).Once()

	category, err := suite.service.CreateCategory(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(category)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestListCategories_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockRepo.On("ListCategories", ctx).Return([]domain.Category(nil), nil).Once()

	categories, err := suite.service.ListCategories(ctx)

	suite.Require().NoError(err)
	suite.NotNil(categories)
	suite.Empty(categories)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PartialMerge() {
	ctx := context.Background()
	categoryID := "cat-1"
	existing := &domain.Category{
		CategoryID: categoryID,
		Name:       "jidlo",
		Icon:       "fork",
		Type:       domain.CategoryTypeExpense,
	}

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "jidlo a piti" && c.Icon == "fork" && c.Type == domain.CategoryTypeExpense
	})).Return(nil).Once()

	req := dto.UpdateCategoryRequest{Name: strPtr("jidlo a piti")}
	category, err := suite.service.UpdateCategory(ctx, categoryID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.Equal("jidlo a piti", category.Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryByID", ctx, "cat-missing").Return(nil, apperrors.ErrNotFound).Once()

	category, err := suite.service.UpdateCategory(ctx, "cat-missing", dto.UpdateCategoryRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(category)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCategory", ctx, "cat-1").Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, "cat-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteCategory", ctx, "cat-missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, "cat-missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestSeedDefaultCategories_FreshDatabase() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryByName", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound).Times(len(domain.DefaultCategories))
	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Return(nil).Times(len(domain.DefaultCategories))

	err := suite.service.SeedDefaultCategories(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestSeedDefaultCategories_SecondRunCreatesNothing() {
	ctx := context.Background()

	for _, seed := range domain.DefaultCategories {
		suite.mockRepo.On("FindCategoryByName", ctx, seed.Name).
			Return(&domain.Category{CategoryID: "existing-" + seed.Name, Name: seed.Name, Type: seed.Type}, nil).Once()
	}

	err := suite.service.SeedDefaultCategories(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestSeedDefaultCategories_ToleratesConcurrentSeeder() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryByName", ctx, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound).Times(len(domain.DefaultCategories))
	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).
		Return(apperrors.ErrDuplicate).Times(len(domain.DefaultCategories))

	err := suite.service.SeedDefaultCategories(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestSeedDefaultCategories_LookupError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindCategoryByName", ctx, mock.AnythingOfType("string")).
		Return(nil, expectedErr).Once()

	err := suite.service.SeedDefaultCategories(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
