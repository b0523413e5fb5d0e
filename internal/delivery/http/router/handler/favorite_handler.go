package handler

import (
	"net/http"
	"strconv"

	"ecoscan/internal/delivery/http/response"
	domainerrors "ecoscan/internal/domain/errors"
	"ecoscan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorites-related handlers.
type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

type addFavoriteRequest struct {
	Barcode string `json:"barcode" validate:"required,max=13"`
}

func userIDParam(c echo.Context) (int64, error) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("userId must be an integer")
	}

	return userID, nil
}

// Add links a product to the user's favorites. A newly linked pair answers
// 201; a pair that already existed answers 200.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Add(c.Request().Context(), usecase.AddFavoriteInput{
		UserID:  userID,
		Barcode: req.Barcode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusCreated
	message := "Favorite added"
	if output.AlreadyFavorite {
		status = http.StatusOK
		message = "Product was already a favorite"
	}

	return response.Success(c, status, toProductView(output.Product), message)
}

// Remove unlinks a product from the user's favorites.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	err = h.uc.Remove(c.Request().Context(), usecase.RemoveFavoriteInput{
		UserID:  userID,
		Barcode: c.Param("barcode"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed")
}

// List returns the user's favorited products in insertion order.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(output.Products), "Favorites listed")
}
