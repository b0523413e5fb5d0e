package impl

import (
	"context"
	"log/slog"

	deliverycontext "ecoscan/internal/delivery/context"
	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/domain/repository"
	"ecoscan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	favoriteRepo repository.FavoriteRepository
	products     usecase.ProductUsecase
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	FavoriteRepo repository.FavoriteRepository
	Products     usecase.ProductUsecase
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		productRepo:  params.ProductRepo,
		favoriteRepo: params.FavoriteRepo,
		products:     params.Products,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add links a product to the user's favorites. The product is resolved
// through the full search path, so favoriting a barcode the store has never
// seen pulls it from the external catalog first. Adding an existing favorite
// is an idempotent no-op reported through AlreadyFavorite.
func (srv *favoriteService) Add(ctx context.Context, input usecase.AddFavoriteInput) (*usecase.AddFavoriteOutput, error) {
	if _, err := srv.findUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	resolved, err := srv.products.Search(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	product := resolved.Product

	output := &usecase.AddFavoriteOutput{Product: product}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		exists, err := favoriteRepo.Exists(ctx, input.UserID, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check favorite existence")
		}
		if exists {
			output.AlreadyFavorite = true

			return nil
		}

		err = favoriteRepo.Create(ctx, &entity.Favorite{
			UserID:    input.UserID,
			ProductID: product.ID,
		})
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateFavorite) {
				// Lost a race against a concurrent add of the same pair.
				output.AlreadyFavorite = true

				return nil
			}

			return err
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add favorite",
			slog.Int64("userID", input.UserID), slog.String("barcode", input.Barcode), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Remove unlinks a product from the user's favorites. Product resolution is
// store-only here: a barcode the store has never seen cannot be a favorite.
func (srv *favoriteService) Remove(ctx context.Context, input usecase.RemoveFavoriteInput) error {
	if _, err := srv.findUser(ctx, input.UserID); err != nil {
		return err
	}

	product, err := srv.productRepo.FindByBarcode(ctx, input.Barcode)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to look up product")
	}

	if err := srv.favoriteRepo.Delete(ctx, input.UserID, product.ID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrNotFavorite
		}

		srv.log(ctx).Error("Failed to remove favorite",
			slog.Int64("userID", input.UserID), slog.String("barcode", input.Barcode), slog.Any("error", err))

		return err
	}

	return nil
}

// List returns the user's favorited products in the order they were added.
func (srv *favoriteService) List(ctx context.Context, userID int64) (*usecase.ListFavoritesOutput, error) {
	if _, err := srv.findUser(ctx, userID); err != nil {
		return nil, err
	}

	products, err := srv.favoriteRepo.ListProductsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return &usecase.ListFavoritesOutput{Products: products}, nil
}

func (srv *favoriteService) findUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	return user, nil
}
