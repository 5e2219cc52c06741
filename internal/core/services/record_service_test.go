package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kasicka/finance_tracker_app/internal/apperrors"
	"github.com/kasicka/finance_tracker_app/internal/core/domain"
	portssvc "github.com/kasicka/finance_tracker_app/internal/core/ports/services"
	"github.com/kasicka/finance_tracker_app/internal/core/services"
	"github.com/kasicka/finance_tracker_app/internal/dto"
)

// --- Mock RecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) ListRecords(ctx context.Context, dateRange domain.DateRange) ([]domain.Record, error) {
	args := m.Called(ctx, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordRepository) SaveRecord(ctx context.Context, record domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) UpdateRecord(ctx context.Context, record domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

// --- Mock CategoryReader ---
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryReader) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryReader) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite ---
type RecordServiceTestSuite struct {
	suite.Suite
	mockRecordRepo   *MockRecordRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.RecordSvcFacade
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewRecordService(suite.mockRecordRepo, suite.mockCategoryRepo)
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// --- Test Cases ---

func (suite *RecordServiceTestSuite) TestCreateRecord_Success() {
	ctx := context.Background()
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	req := dto.CreateRecordRequest{
		Amount:      decPtr(decimal.NewFromInt(1000)),
		CategoryID:  "cat-salary",
		Date:        &date,
		Description: "January salary",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, "cat-salary").
		Return(&domain.Category{CategoryID: "cat-salary", Name: "plat", Type: domain.CategoryTypeIncome}, nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.Record) bool {
		return r.RecordID != "" &&
			r.Amount.Equal(decimal.NewFromInt(1000)) &&
			r.CategoryID != nil && *r.CategoryID == "cat-salary" &&
			r.Date.Equal(date) &&
			r.Description == "January salary"
	})).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.RecordID)
	suite.False(record.CreatedAt.IsZero())
	suite.Equal(record.CreatedAt, record.LastUpdatedAt)

	suite.mockRecordRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_DateDefaultsToNow() {
	ctx := context.Background()
	before := time.Now().UTC()
	req := dto.CreateRecordRequest{
		Amount:     decPtr(decimal.NewFromInt(-50)),
		CategoryID: "cat-food",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, "cat-food").
		Return(&domain.Category{CategoryID: "cat-food", Name: "jidlo"}, nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.AnythingOfType("domain.Record")).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.False(record.Date.Before(before))
	suite.False(record.Date.After(time.Now().UTC()))

	suite.mockRecordRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateRecordRequest{
		Amount:     decPtr(decimal.NewFromInt(10)),
		CategoryID: "cat-missing",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, "cat-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.CreateRecord(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(record)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)

	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	req := dto.CreateRecordRequest{
		Amount:     decPtr(decimal.NewFromInt(10)),
		CategoryID: "cat-food",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, "cat-food").
		Return(&domain.Category{CategoryID: "cat-food"}, nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.AnythingOfType("domain.Record")).Return(expectedErr).Once()

	record, err := suite.service.CreateRecord(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(record)

	suite.mockRecordRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestListRecords_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockRecordRepo.On("ListRecords", ctx, domain.DateRange{}).Return([]domain.Record(nil), nil).Once()

	records, err := suite.service.ListRecords(ctx, domain.DateRange{})

	suite.Require().NoError(err)
	suite.NotNil(records)
	suite.Empty(records)

	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_PartialMerge() {
	ctx := context.Background()
	recordID := "rec-1"
	foodID := "cat-food"
	existing := &domain.Record{
		RecordID:     recordID,
		Amount:       decimal.NewFromInt(-200),
		CategoryID:   &foodID,
		CategoryName: strPtr("jidlo"),
		Date:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Description:  "groceries",
	}

	suite.mockRecordRepo.On("FindRecordByID", ctx, recordID).Return(existing, nil).Once()
	suite.mockRecordRepo.On("UpdateRecord", ctx, mock.MatchedBy(func(r domain.Record) bool {
		// Only the amount changes; everything else keeps its stored value.
		return r.Amount.Equal(decimal.NewFromInt(-250)) &&
			r.CategoryID != nil && *r.CategoryID == foodID &&
			r.Description == "groceries"
	})).Return(nil).Once()

	req := dto.UpdateRecordRequest{Amount: decPtr(decimal.NewFromInt(-250))}
	record, err := suite.service.UpdateRecord(ctx, recordID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.True(record.Amount.Equal(decimal.NewFromInt(-250)))
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByID", mock.Anything, mock.Anything)

	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_ReassignCategory() {
	ctx := context.Background()
	recordID := "rec-1"
	foodID := "cat-food"
	travelID := "cat-travel"
	existing := &domain.Record{
		RecordID:     recordID,
		Amount:       decimal.NewFromInt(-200),
		CategoryID:   &foodID,
		CategoryName: strPtr("jidlo"),
	}

	suite.mockRecordRepo.On("FindRecordByID", ctx, recordID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, travelID).
		Return(&domain.Category{CategoryID: travelID, Name: "cestovani"}, nil).Once()
	suite.mockRecordRepo.On("UpdateRecord", ctx, mock.MatchedBy(func(r domain.Record) bool {
		return r.CategoryID != nil && *r.CategoryID == travelID && r.CategoryName == nil
	})).Return(nil).Once()

	req := dto.UpdateRecordRequest{CategoryID: &travelID}
	record, err := suite.service.UpdateRecord(ctx, recordID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Nil(record.CategoryName)

	suite.mockRecordRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_NotFound() {
	ctx := context.Background()

	suite.mockRecordRepo.On("FindRecordByID", ctx, "rec-missing").Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.UpdateRecord(ctx, "rec-missing", dto.UpdateRecordRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(record)

	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_UnknownCategory() {
	ctx := context.Background()
	recordID := "rec-1"
	missingID := "cat-missing"
	existing := &domain.Record{RecordID: recordID, Amount: decimal.NewFromInt(-200)}

	suite.mockRecordRepo.On("FindRecordByID", ctx, recordID).Return(existing, nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.UpdateRecord(ctx, recordID, dto.UpdateRecordRequest{CategoryID: &missingID})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(record)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "UpdateRecord", mock.Anything, mock.Anything)

	suite.mockRecordRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_Success() {
	ctx := context.Background()

	suite.mockRecordRepo.On("DeleteRecord", ctx, "rec-1").Return(nil).Once()

	err := suite.service.DeleteRecord(ctx, "rec-1")

	suite.Require().NoError(err)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_NotFound() {
	ctx := context.Background()

	suite.mockRecordRepo.On("DeleteRecord", ctx, "rec-missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteRecord(ctx, "rec-missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
