// Package usecase provides testify mocks for the application usecase ports.
package usecase

import (
	"context"

	"ecoscan/internal/domain/entity"
	"ecoscan/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockProductUsecase is a mock implementation of usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

func (m *MockProductUsecase) Search(ctx context.Context, barcode string) (*usecase.SearchProductOutput, error) {
	args := m.Called(ctx, barcode)
	if output, ok := args.Get(0).(*usecase.SearchProductOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockFavoriteUsecase is a mock implementation of usecase.FavoriteUsecase.
type MockFavoriteUsecase struct {
	mock.Mock
}

func (m *MockFavoriteUsecase) Add(ctx context.Context, input usecase.AddFavoriteInput) (*usecase.AddFavoriteOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AddFavoriteOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFavoriteUsecase) Remove(ctx context.Context, input usecase.RemoveFavoriteInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockFavoriteUsecase) List(ctx context.Context, userID int64) (*usecase.ListFavoritesOutput, error) {
	args := m.Called(ctx, userID)
	if output, ok := args.Get(0).(*usecase.ListFavoritesOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockEmissionUsecase is a mock implementation of usecase.EmissionUsecase.
type MockEmissionUsecase struct {
	mock.Mock
}

func (m *MockEmissionUsecase) Lookup(ctx context.Context, input usecase.LookupEmissionInput) (*usecase.LookupEmissionOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LookupEmissionOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockEmissionUsecase) LoadRegion(ctx context.Context, region string, facts []*entity.RegionalCO2Emission) (*usecase.LoadRegionOutput, error) {
	args := m.Called(ctx, region, facts)
	if output, ok := args.Get(0).(*usecase.LoadRegionOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}
