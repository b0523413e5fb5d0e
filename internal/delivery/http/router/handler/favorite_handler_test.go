package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecoscan/internal/domain/entity"
	domainerrors "ecoscan/internal/domain/errors"
	mockUC "ecoscan/internal/mocks/usecase"
	"ecoscan/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFavoriteHandler_Add_NewFavorite(t *testing.T) {
	uc := new(mockUC.MockFavoriteUsecase)
	uc.On("Add", mock.Anything, usecase.AddFavoriteInput{UserID: 1, Barcode: "8412345678905"}).
		Return(&usecase.AddFavoriteOutput{Product: existingProduct(5, "8412345678905")}, nil)

	e := newEchoForTest(t)
	e.POST("/api/users/:userId/favorites", NewFavoriteHandler(uc).Add)

	body := `{"barcode":"8412345678905"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/1/favorites", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFavoriteHandler_Add_AlreadyFavorite(t *testing.T) {
	uc := new(mockUC.MockFavoriteUsecase)
	uc.On("Add", mock.Anything, mock.Anything).
		Return(&usecase.AddFavoriteOutput{Product: existingProduct(5, "8412345678905"), AlreadyFavorite: true}, nil)

	e := newEchoForTest(t)
	e.POST("/api/users/:userId/favorites", NewFavoriteHandler(uc).Add)

	body := `{"barcode":"8412345678905"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/1/favorites", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFavoriteHandler_Add_NonNumericUserID(t *testing.T) {
	uc := new(mockUC.MockFavoriteUsecase)

	e := newEchoForTest(t)
	e.POST("/api/users/:userId/favorites", NewFavoriteHandler(uc).Add)

	body := `{"barcode":"8412345678905"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/abc/favorites", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestFavoriteHandler_Add_UnknownUser(t *testing.T) {
	uc := new(mockUC.MockFavoriteUsecase)
	uc.On("Add", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserNotFound)

	e := newEchoForTest(t)
	e.POST("/api/users/:userId/favorites", NewFavoriteHandler(uc).Add)

	body := `{"barcode":"8412345678905"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/99/favorites", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestFavoriteHandler_Remove_Success(t *testing.T) {
	uc := new(mockUC.MockFavoriteUsecase)
	uc.On("Remove", mock.Anything, usecase.RemoveFavoriteInput{UserID: 1, Barcode: "8412345678905"}).Return(nil)

	e := newEchoForTest(t)
	e.DELETE("/api/users/:userId/favorites/:barcode", NewFavoriteHandler(uc).Remove)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/1/favorites/8412345678905", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestFavoriteHandler_Remove_NotFavorite(t *testing.T) {
	uc := new(mockUC.MockFavoriteUsecase)
	uc.On("Remove", mock.Anything, mock.Anything).Return(domainerrors.ErrNotFavorite)

	e := newEchoForTest(t)
	e.DELETE("/api/users/:userId/favorites/:barcode", NewFavoriteHandler(uc).Remove)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/1/favorites/8412345678905", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_A_FAVORITE")
}

func TestFavoriteHandler_List_ReturnsArray(t *testing.T) {
	uc := new(mockUC.MockFavoriteUsecase)
	uc.On("List", mock.Anything, int64(1)).Return(&usecase.ListFavoritesOutput{
		Products: []*entity.Product{existingProduct(5, "8412345678905"), existingProduct(6, "8400000000017")},
	}, nil)

	e := newEchoForTest(t)
	e.GET("/api/users/:userId/favorites", NewFavoriteHandler(uc).List)

	req := httptest.NewRequest(http.MethodGet, "/api/users/1/favorites", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"barcode":"8412345678905"`)
	assert.Contains(t, rec.Body.String(), `"barcode":"8400000000017"`)
}

func TestFavoriteHandler_List_EmptyIsArrayNotNull(t *testing.T) {
	uc := new(mockUC.MockFavoriteUsecase)
	uc.On("List", mock.Anything, int64(1)).Return(&usecase.ListFavoritesOutput{Products: nil}, nil)

	e := newEchoForTest(t)
	e.GET("/api/users/:userId/favorites", NewFavoriteHandler(uc).List)

	req := httptest.NewRequest(http.MethodGet, "/api/users/1/favorites", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
