package postgres

import (
	"context"

	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/domain/repository"
	"ecoscan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const emissionInsertBatchSize = 100

// emissionRepository implements the domain.EmissionRepository interface using GORM.
type emissionRepository struct {
	db *gorm.DB
}

// NewEmissionRepository is the constructor for emissionRepository.
func NewEmissionRepository(db *gorm.DB) repository.EmissionRepository {
	return &emissionRepository{db: db}
}

// FindByRegionAndYear retrieves the fact for an exact (region, year) match.
func (repo *emissionRepository) FindByRegionAndYear(ctx context.Context, region string, year int) (*entity.RegionalCO2Emission, error) {
	var emissionM model.RegionalCO2EmissionModel
	err := repo.db.WithContext(ctx).
		First(&emissionM, "region_name = ? AND year = ?", region, year).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find emission by region and year")
	}

	return toEmissionDomain(&emissionM), nil
}

// DeleteByRegion removes every fact for the region. Deleting zero rows is not
// an error; the first load of a region starts from an empty table.
func (repo *emissionRepository) DeleteByRegion(ctx context.Context, region string) error {
	err := repo.db.WithContext(ctx).
		Where("region_name = ?", region).
		Delete(&model.RegionalCO2EmissionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete emissions by region")
	}

	return nil
}

// CreateBatch inserts a set of facts.
func (repo *emissionRepository) CreateBatch(ctx context.Context, emissions []*entity.RegionalCO2Emission) error {
	if len(emissions) == 0 {
		return nil
	}

	emissionMs := make([]*model.RegionalCO2EmissionModel, 0, len(emissions))
	for _, emission := range emissions {
		emissionMs = append(emissionMs, fromEmissionDomain(emission))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(emissionMs, emissionInsertBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert emissions")
	}

	for i, emissionM := range emissionMs {
		emissions[i].ID = emissionM.ID
	}

	return nil
}

// toEmissionDomain converts a GORM RegionalCO2EmissionModel to a domain entity.
func toEmissionDomain(data *model.RegionalCO2EmissionModel) *entity.RegionalCO2Emission {
	if data == nil {
		return nil
	}

	return &entity.RegionalCO2Emission{
		ID:             data.ID,
		RegionName:     data.RegionName,
		Year:           data.Year,
		TotalCO2Tonnes: data.TotalCO2Tonnes,
	}
}

// fromEmissionDomain converts a domain entity to a GORM RegionalCO2EmissionModel.
func fromEmissionDomain(data *entity.RegionalCO2Emission) *model.RegionalCO2EmissionModel {
	if data == nil {
		return nil
	}

	return &model.RegionalCO2EmissionModel{
		ID:             data.ID,
		RegionName:     data.RegionName,
		Year:           data.Year,
		TotalCO2Tonnes: data.TotalCO2Tonnes,
	}
}
