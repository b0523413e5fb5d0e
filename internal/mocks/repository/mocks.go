// Package repository provides testify mocks for the persistence ports.
package repository

import (
	"context"

	"ecoscan/internal/domain/entity"
	"ecoscan/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	args := m.Called(ctx, barcode)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

// MockFavoriteRepository is a mock implementation of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)

	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	args := m.Called(ctx, favorite)

	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, productID int64) error {
	args := m.Called(ctx, userID, productID)

	return args.Error(0)
}

func (m *MockFavoriteRepository) ListProductsByUser(ctx context.Context, userID int64) ([]*entity.Product, error) {
	args := m.Called(ctx, userID)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockEmissionRepository is a mock implementation of repository.EmissionRepository.
type MockEmissionRepository struct {
	mock.Mock
}

func (m *MockEmissionRepository) FindByRegionAndYear(ctx context.Context, region string, year int) (*entity.RegionalCO2Emission, error) {
	args := m.Called(ctx, region, year)
	if emission, ok := args.Get(0).(*entity.RegionalCO2Emission); ok {
		return emission, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockEmissionRepository) DeleteByRegion(ctx context.Context, region string) error {
	args := m.Called(ctx, region)

	return args.Error(0)
}

func (m *MockEmissionRepository) CreateBatch(ctx context.Context, emissions []*entity.RegionalCO2Emission) error {
	args := m.Called(ctx, emissions)

	return args.Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
// The zero value returns nil repositories; set the fields before use.
type MockRepositoryFactory struct {
	UserRepository     *MockUserRepository
	ProductRepository  *MockProductRepository
	FavoriteRepository *MockFavoriteRepository
	EmissionRepository *MockEmissionRepository
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

func (f *MockRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.ProductRepository
}

func (f *MockRepositoryFactory) FavoriteRepo() repository.FavoriteRepository {
	return f.FavoriteRepository
}

func (f *MockRepositoryFactory) EmissionRepo() repository.EmissionRepository {
	return f.EmissionRepository
}

// MockTransactionManager is a pass-through implementation of
// repository.TransactionManager. It runs the callback against the given
// factory with no real transaction underneath, which is what the service
// tests need to observe rollback-on-error behavior.
type MockTransactionManager struct {
	Factory *MockRepositoryFactory

	// ExecuteErr, when set, is returned without invoking the callback.
	ExecuteErr error
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if m.ExecuteErr != nil {
		return m.ExecuteErr
	}

	return fn(m.Factory)
}
