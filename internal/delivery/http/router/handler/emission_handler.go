package handler

import (
	"net/http"
	"strconv"

	"ecoscan/internal/delivery/http/response"
	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmissionHandler holds dependencies for emission-related handlers.
type EmissionHandler struct {
	uc usecase.EmissionUsecase
}

// NewEmissionHandler is the constructor for EmissionHandler, injected by Fx.
func NewEmissionHandler(uc usecase.EmissionUsecase) *EmissionHandler {
	return &EmissionHandler{uc: uc}
}

type emissionView struct {
	Region         string  `json:"region"`
	Year           int     `json:"year"`
	TotalCO2Tonnes float64 `json:"totalCo2Tonnes"`
}

func toEmissionView(emission *entity.RegionalCO2Emission) emissionView {
	return emissionView{
		Region:         emission.RegionName,
		Year:           emission.Year,
		TotalCO2Tonnes: emission.TotalCO2Tonnes,
	}
}

// Lookup answers the total CO2 emissions for an exact (region, year) pair.
func (h *EmissionHandler) Lookup(c echo.Context) error {
	region := c.QueryParam("region")

	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("year must be an integer"))
	}

	output, err := h.uc.Lookup(c.Request().Context(), usecase.LookupEmissionInput{
		Region: region,
		Year:   year,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEmissionView(output.Emission), "Emission data found")
}
