package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecoscan/internal/delivery/context"
	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/domain/repository"
	"ecoscan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// emissionService implements the EmissionUsecase interface.
type emissionService struct {
	txManager    repository.TransactionManager
	emissionRepo repository.EmissionRepository
	logger       *slog.Logger
}

// EmissionServiceParams holds dependencies for emissionService, injected by Fx.
type EmissionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	EmissionRepo repository.EmissionRepository
	Logger       *slog.Logger
}

// NewEmissionService is the constructor for emissionService.
func NewEmissionService(params EmissionServiceParams) usecase.EmissionUsecase {
	return &emissionService{
		txManager:    params.TxManager,
		emissionRepo: params.EmissionRepo,
		logger:       params.Logger,
	}
}

func (srv *emissionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Lookup returns the fact for an exact (region, year) match. There is no
// fuzzy matching and no nearest-year fallback.
func (srv *emissionService) Lookup(ctx context.Context, input usecase.LookupEmissionInput) (*usecase.LookupEmissionOutput, error) {
	region := strings.TrimSpace(input.Region)
	if region == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("region must not be empty")
	}

	emission, err := srv.emissionRepo.FindByRegionAndYear(ctx, region, input.Year)
	if err != nil {
		if errors.Is(err, repository.ErrEmissionNotFound) {
			return nil, domainerrors.ErrEmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to look up emission")
	}

	return &usecase.LookupEmissionOutput{Emission: emission}, nil
}

// LoadRegion replaces every stored fact for the region inside one
// transaction, so readers never observe a half-loaded region.
func (srv *emissionService) LoadRegion(ctx context.Context, region string, facts []*entity.RegionalCO2Emission) (*usecase.LoadRegionOutput, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("region must not be empty")
	}
	for _, fact := range facts {
		if fact.RegionName != region {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("fact does not belong to the loaded region")
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		emissionRepo := repoFactory.EmissionRepo()

		if err := emissionRepo.DeleteByRegion(ctx, region); err != nil {
			return err
		}

		return emissionRepo.CreateBatch(ctx, facts)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load emission facts", slog.String("region", region), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Loaded emission facts", slog.String("region", region), slog.Int("count", len(facts)))

	return &usecase.LoadRegionOutput{Inserted: len(facts)}, nil
}
