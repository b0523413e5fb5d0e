package impl

import (
	"context"
	"log/slog"
	"testing"

	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/domain/repository"
	mockRepo "ecoscan/internal/mocks/repository"
	"ecoscan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEmissionServiceForTest(t *testing.T) (usecase.EmissionUsecase, *mockRepo.MockEmissionRepository) {
	t.Helper()

	emissionRepo := new(mockRepo.MockEmissionRepository)
	txManager := &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{EmissionRepository: emissionRepo},
	}

	svc := NewEmissionService(EmissionServiceParams{
		TxManager:    txManager,
		EmissionRepo: emissionRepo,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return svc, emissionRepo
}

func emissionFact(region string, year int, total float64) *entity.RegionalCO2Emission {
	return &entity.RegionalCO2Emission{RegionName: region, Year: year, TotalCO2Tonnes: total}
}

func TestEmissionService_Lookup_Success(t *testing.T) {
	svc, emissionRepo := newEmissionServiceForTest(t)
	ctx := context.Background()

	fact := emissionFact("C.A. de Euskadi", 2019, 1234567.8)
	emissionRepo.On("FindByRegionAndYear", ctx, "C.A. de Euskadi", 2019).Return(fact, nil)

	output, err := svc.Lookup(ctx, usecase.LookupEmissionInput{Region: "C.A. de Euskadi", Year: 2019})
	require.NoError(t, err)
	assert.Equal(t, fact, output.Emission)
}

// Pins the 2021 Euskadi figure from the statistics office export.
func TestEmissionService_Lookup_Euskadi2021(t *testing.T) {
	svc, emissionRepo := newEmissionServiceForTest(t)
	ctx := context.Background()

	fact := emissionFact("C.A. de Euskadi", 2021, 14828603.0)
	emissionRepo.On("FindByRegionAndYear", ctx, "C.A. de Euskadi", 2021).Return(fact, nil)

	output, err := svc.Lookup(ctx, usecase.LookupEmissionInput{Region: "C.A. de Euskadi", Year: 2021})
	require.NoError(t, err)
	assert.InDelta(t, 14828603.0, output.Emission.TotalCO2Tonnes, 1e-6)
}

func TestEmissionService_Lookup_TrimsRegion(t *testing.T) {
	svc, emissionRepo := newEmissionServiceForTest(t)
	ctx := context.Background()

	fact := emissionFact("C.A. de Euskadi", 2019, 1.0)
	emissionRepo.On("FindByRegionAndYear", ctx, "C.A. de Euskadi", 2019).Return(fact, nil)

	_, err := svc.Lookup(ctx, usecase.LookupEmissionInput{Region: "  C.A. de Euskadi  ", Year: 2019})
	require.NoError(t, err)
}

func TestEmissionService_Lookup_EmptyRegion(t *testing.T) {
	svc, emissionRepo := newEmissionServiceForTest(t)

	_, err := svc.Lookup(context.Background(), usecase.LookupEmissionInput{Region: "   ", Year: 2019})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	emissionRepo.AssertNotCalled(t, "FindByRegionAndYear", mock.Anything, mock.Anything, mock.Anything)
}

// Only exact (region, year) pairs match; a year one off is a miss.
func TestEmissionService_Lookup_NoMatch(t *testing.T) {
	svc, emissionRepo := newEmissionServiceForTest(t)
	ctx := context.Background()

	emissionRepo.On("FindByRegionAndYear", ctx, "C.A. de Euskadi", 1800).
		Return(nil, repository.ErrEmissionNotFound)

	_, err := svc.Lookup(ctx, usecase.LookupEmissionInput{Region: "C.A. de Euskadi", Year: 1800})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmissionNotFound)
}

func TestEmissionService_LoadRegion_Success(t *testing.T) {
	svc, emissionRepo := newEmissionServiceForTest(t)
	ctx := context.Background()

	facts := []*entity.RegionalCO2Emission{
		emissionFact("C.A. de Euskadi", 2019, 1.0),
		emissionFact("C.A. de Euskadi", 2020, 2.0),
	}

	emissionRepo.On("DeleteByRegion", ctx, "C.A. de Euskadi").Return(nil)
	emissionRepo.On("CreateBatch", ctx, facts).Return(nil)

	output, err := svc.LoadRegion(ctx, "C.A. de Euskadi", facts)
	require.NoError(t, err)
	assert.Equal(t, 2, output.Inserted)
	emissionRepo.AssertExpectations(t)
}

func TestEmissionService_LoadRegion_RejectsForeignFacts(t *testing.T) {
	svc, emissionRepo := newEmissionServiceForTest(t)

	facts := []*entity.RegionalCO2Emission{emissionFact("Otra region", 2019, 1.0)}

	_, err := svc.LoadRegion(context.Background(), "C.A. de Euskadi", facts)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	emissionRepo.AssertNotCalled(t, "DeleteByRegion", mock.Anything, mock.Anything)
}

func TestEmissionService_LoadRegion_DeleteFailureAbortsInsert(t *testing.T) {
	svc, emissionRepo := newEmissionServiceForTest(t)
	ctx := context.Background()

	facts := []*entity.RegionalCO2Emission{emissionFact("C.A. de Euskadi", 2019, 1.0)}
	emissionRepo.On("DeleteByRegion", ctx, "C.A. de Euskadi").Return(errors.New("lock timeout"))

	_, err := svc.LoadRegion(ctx, "C.A. de Euskadi", facts)
	require.Error(t, err)
	emissionRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestEmissionService_LoadRegion_EmptyRegion(t *testing.T) {
	svc, _ := newEmissionServiceForTest(t)

	_, err := svc.LoadRegion(context.Background(), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
