package impl

import (
	"context"
	"log/slog"
	"testing"

	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/domain/repository"
	mockRepo "ecoscan/internal/mocks/repository"
	mockUC "ecoscan/internal/mocks/usecase"
	"ecoscan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	productRepo  *mockRepo.MockProductRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
	products     *mockUC.MockProductUsecase
}

func newFavoriteServiceForTest(t *testing.T) (usecase.FavoriteUsecase, favoriteServiceMocks) {
	t.Helper()

	mocks := favoriteServiceMocks{
		userRepo:     new(mockRepo.MockUserRepository),
		productRepo:  new(mockRepo.MockProductRepository),
		favoriteRepo: new(mockRepo.MockFavoriteRepository),
		products:     new(mockUC.MockProductUsecase),
	}
	txManager := &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{
			UserRepository:     mocks.userRepo,
			ProductRepository:  mocks.productRepo,
			FavoriteRepository: mocks.favoriteRepo,
		},
	}

	svc := NewFavoriteService(FavoriteServiceParams{
		TxManager:    txManager,
		UserRepo:     mocks.userRepo,
		ProductRepo:  mocks.productRepo,
		FavoriteRepo: mocks.favoriteRepo,
		Products:     mocks.products,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return svc, mocks
}

func TestFavoriteService_Add_NewFavorite(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	user := existingUser(1, "alice")
	product := existingProduct(5, "8412345678905")

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(user, nil)
	mocks.products.On("Search", ctx, "8412345678905").
		Return(&usecase.SearchProductOutput{Product: product}, nil)
	mocks.favoriteRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
	mocks.favoriteRepo.On("Create", ctx, mock.AnythingOfType("*entity.Favorite")).Return(nil)

	output, err := svc.Add(ctx, usecase.AddFavoriteInput{UserID: 1, Barcode: "8412345678905"})
	require.NoError(t, err)
	assert.False(t, output.AlreadyFavorite)
	assert.Equal(t, product, output.Product)
	mocks.favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_Add_AlreadyFavorite(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.products.On("Search", ctx, "8412345678905").
		Return(&usecase.SearchProductOutput{Product: existingProduct(5, "8412345678905")}, nil)
	mocks.favoriteRepo.On("Exists", ctx, int64(1), int64(5)).Return(true, nil)

	output, err := svc.Add(ctx, usecase.AddFavoriteInput{UserID: 1, Barcode: "8412345678905"})
	require.NoError(t, err)
	assert.True(t, output.AlreadyFavorite)
	mocks.favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFavoriteService_Add_UnknownUser(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Add(ctx, usecase.AddFavoriteInput{UserID: 99, Barcode: "8412345678905"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	mocks.products.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestFavoriteService_Add_ProductResolutionFails(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.products.On("Search", ctx, "0000000000000").Return(nil, domainerrors.ErrProductNotFound)

	_, err := svc.Add(ctx, usecase.AddFavoriteInput{UserID: 1, Barcode: "0000000000000"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

// Two concurrent adds of the same pair: the loser's insert hits the composite
// primary key and is reported as already-favorite, not as a failure.
func TestFavoriteService_Add_LostInsertRace(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.products.On("Search", ctx, "8412345678905").
		Return(&usecase.SearchProductOutput{Product: existingProduct(5, "8412345678905")}, nil)
	mocks.favoriteRepo.On("Exists", ctx, int64(1), int64(5)).Return(false, nil)
	mocks.favoriteRepo.On("Create", ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	output, err := svc.Add(ctx, usecase.AddFavoriteInput{UserID: 1, Barcode: "8412345678905"})
	require.NoError(t, err)
	assert.True(t, output.AlreadyFavorite)
}

func TestFavoriteService_Remove_Success(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.productRepo.On("FindByBarcode", ctx, "8412345678905").Return(existingProduct(5, "8412345678905"), nil)
	mocks.favoriteRepo.On("Delete", ctx, int64(1), int64(5)).Return(nil)

	err := svc.Remove(ctx, usecase.RemoveFavoriteInput{UserID: 1, Barcode: "8412345678905"})
	require.NoError(t, err)
}

// Remove never consults the external catalog: a barcode the store has not
// cached cannot be anyone's favorite.
func TestFavoriteService_Remove_UncachedProduct(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.productRepo.On("FindByBarcode", ctx, "0000000000000").Return(nil, repository.ErrProductNotFound)

	err := svc.Remove(ctx, usecase.RemoveFavoriteInput{UserID: 1, Barcode: "0000000000000"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	mocks.products.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestFavoriteService_Remove_NotFavorite(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.productRepo.On("FindByBarcode", ctx, "8412345678905").Return(existingProduct(5, "8412345678905"), nil)
	mocks.favoriteRepo.On("Delete", ctx, int64(1), int64(5)).Return(repository.ErrFavoriteNotFound)

	err := svc.Remove(ctx, usecase.RemoveFavoriteInput{UserID: 1, Barcode: "8412345678905"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFavorite)
}

func TestFavoriteService_List_Success(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.favoriteRepo.On("ListProductsByUser", ctx, int64(1)).
		Return([]*entity.Product{existingProduct(5, "8412345678905"), existingProduct(6, "8400000000017")}, nil)

	output, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, output.Products, 2)
	assert.Equal(t, int64(5), output.Products[0].ID)
	assert.Equal(t, int64(6), output.Products[1].ID)
}

func TestFavoriteService_List_Empty(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.favoriteRepo.On("ListProductsByUser", ctx, int64(1)).Return([]*entity.Product{}, nil)

	output, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, output.Products)
}

func TestFavoriteService_List_UnknownUser(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	_, err := svc.List(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFavoriteService_List_RepositoryFailure(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.userRepo.On("FindByID", ctx, int64(1)).Return(existingUser(1, "alice"), nil)
	mocks.favoriteRepo.On("ListProductsByUser", ctx, int64(1)).Return(nil, errors.New("connection reset"))

	_, err := svc.List(ctx, 1)
	require.Error(t, err)
}
