package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vendorgrid/internal/model"
	"vendorgrid/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockVendorRepository is a mock implementation of repository.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uint) (*model.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByTaxID(ctx context.Context, taxID string) (*model.Vendor, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context) ([]model.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*model.Vendor, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) Search(ctx context.Context, filter repository.SearchFilter, page, pageSize int) ([]model.Vendor, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Vendor), args.Get(1).(int64), args.Error(2)
}

// passthroughTxManager runs the callback without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newTestVendorService(repo repository.VendorRepository) VendorService {
	return NewVendorService(repo, passthroughTxManager{})
}

func TestGetVendorByID_NotFound(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("FindByID", mock.Anything, uint(7)).Return(nil, nil)

	_, err := newTestVendorService(repo).GetVendorByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestCreateVendor_Success(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("FindByTaxID", mock.Anything, "T-1").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(v *model.Vendor) bool {
		return v.Name == "Acme" && v.TaxID == "T-1"
	})).Return(nil)

	vendor, err := newTestVendorService(repo).CreateVendor(context.Background(), CreateVendorRequest{
		Name:  "  Acme  ",
		TaxID: " T-1 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", vendor.Name)
	assert.Equal(t, "T-1", vendor.TaxID)
	repo.AssertExpectations(t)
}

func TestCreateVendor_DuplicatePreCheck(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("FindByTaxID", mock.Anything, "T-1").Return(&model.Vendor{ID: 1, TaxID: "T-1"}, nil)

	_, err := newTestVendorService(repo).CreateVendor(context.Background(), CreateVendorRequest{
		Name:  "Other",
		TaxID: "T-1",
	})
	assert.ErrorIs(t, err, ErrDuplicateTaxID)
	// The storage write never happens when the pre-check catches it.
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVendor_DuplicateFromStorageRace(t *testing.T) {
	// The pre-check passes but a concurrent create wins the insert: the
	// storage constraint violation must normalize to the same condition.
	repo := new(MockVendorRepository)
	repo.On("FindByTaxID", mock.Anything, "T-1").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := newTestVendorService(repo).CreateVendor(context.Background(), CreateVendorRequest{
		Name:  "Acme",
		TaxID: "T-1",
	})
	assert.ErrorIs(t, err, ErrDuplicateTaxID)
}

func TestCreateVendor_BlankFields(t *testing.T) {
	svc := newTestVendorService(new(MockVendorRepository))

	_, err := svc.CreateVendor(context.Background(), CreateVendorRequest{Name: "   ", TaxID: "T-1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateVendor(context.Background(), CreateVendorRequest{Name: "Acme", TaxID: "  "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateVendor_NotFound(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("FindByID", mock.Anything, uint(5)).Return(nil, nil)

	name := "New Name"
	_, err := newTestVendorService(repo).UpdateVendor(context.Background(), 5, UpdateVendorRequest{Name: &name})
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestUpdateVendor_TaxIDConflict(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.Vendor{ID: 1, Name: "A", TaxID: "T-1"}, nil)
	repo.On("FindByTaxID", mock.Anything, "T-2").Return(&model.Vendor{ID: 2, Name: "B", TaxID: "T-2"}, nil)

	taxID := "T-2"
	_, err := newTestVendorService(repo).UpdateVendor(context.Background(), 1, UpdateVendorRequest{TaxID: &taxID})
	assert.ErrorIs(t, err, ErrDuplicateTaxID)
	// Vendor A keeps its tax_id: no update call was made.
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateVendor_SelfTaxIDAllowed(t *testing.T) {
	existing := &model.Vendor{ID: 1, Name: "A", TaxID: "T-1"}
	repo := new(MockVendorRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, uint(1), map[string]interface{}{"tax_id": "T-1"}).
		Return(existing, nil)

	taxID := "T-1"
	vendor, err := newTestVendorService(repo).UpdateVendor(context.Background(), 1, UpdateVendorRequest{TaxID: &taxID})
	require.NoError(t, err)
	assert.Equal(t, "T-1", vendor.TaxID)
	// Same tax_id means no conflict lookup at all.
	repo.AssertNotCalled(t, "FindByTaxID", mock.Anything, mock.Anything)
}

func TestUpdateVendor_OnlySuppliedFieldsForwarded(t *testing.T) {
	existing := &model.Vendor{ID: 1, Name: "A", TaxID: "T-1", Address: "Old St"}
	repo := new(MockVendorRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(existing, nil)

	address := "New St"
	repo.On("Update", mock.Anything, uint(1), map[string]interface{}{"address": "New St"}).
		Return(&model.Vendor{ID: 1, Name: "A", TaxID: "T-1", Address: "New St"}, nil)

	vendor, err := newTestVendorService(repo).UpdateVendor(context.Background(), 1, UpdateVendorRequest{Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "New St", vendor.Address)
	repo.AssertExpectations(t)
}

func TestDeleteVendor_AbsentIsNotAnError(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("Delete", mock.Anything, uint(9)).Return(false, nil)

	deleted, err := newTestVendorService(repo).DeleteVendor(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSearchVendorsPaged_ClampsPageAndPageSize(t *testing.T) {
	repo := new(MockVendorRepository)
	// page 0 behaves as page 1, page_size 1000 behaves as 100.
	repo.On("Search", mock.Anything, repository.SearchFilter{}, 1, 100).
		Return([]model.Vendor{}, int64(0), nil)

	page, err := newTestVendorService(repo).SearchVendorsPaged(context.Background(), SearchVendorsParams{}, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PageSize)
	repo.AssertExpectations(t)
}

func TestSearchVendorsPaged_TotalPages(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("Search", mock.Anything, repository.SearchFilter{}, 1, 50).
		Return([]model.Vendor{}, int64(105), nil)

	page, err := newTestVendorService(repo).SearchVendorsPaged(context.Background(), SearchVendorsParams{}, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(105), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestSearchVendorsPaged_MapsFilters(t *testing.T) {
	repo := new(MockVendorRepository)
	now := time.Now()
	repo.On("Search", mock.Anything, repository.SearchFilter{Name: "acme", TaxID: "xyz"}, 1, 50).
		Return([]model.Vendor{{ID: 1, Name: "Acme", TaxID: "T-1", CreatedAt: now, UpdatedAt: now}}, int64(1), nil)

	page, err := newTestVendorService(repo).SearchVendorsPaged(context.Background(),
		SearchVendorsParams{Name: "acme", TaxID: "xyz"}, 1, 50)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Acme", page.Items[0].Name)
}

func TestGetAllVendors_RepositoryError(t *testing.T) {
	repo := new(MockVendorRepository)
	repo.On("FindAll", mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := newTestVendorService(repo).GetAllVendors(context.Background())
	assert.Error(t, err)
}
