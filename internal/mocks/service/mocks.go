// Package service provides testify mocks for the domain service ports.
package service

import (
	"context"

	"ecoscan/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockProductCatalog is a mock implementation of service.ProductCatalog.
type MockProductCatalog struct {
	mock.Mock
}

func (m *MockProductCatalog) Fetch(ctx context.Context, barcode string) (*service.CatalogProduct, error) {
	args := m.Called(ctx, barcode)
	if product, ok := args.Get(0).(*service.CatalogProduct); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}
