package handler

import (
	"net/http"

	"ecoscan/internal/delivery/http/response"
	"ecoscan/internal/domain/entity"
	"ecoscan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type productView struct {
	ID         int64  `json:"id"`
	Barcode    string `json:"barcode"`
	Name       string `json:"name"`
	Nutriscore string `json:"nutriscore"`
	Ecoscore   string `json:"ecoscore"`
	Category   string `json:"category"`
}

func toProductView(product *entity.Product) productView {
	return productView{
		ID:         product.ID,
		Barcode:    product.Barcode,
		Name:       product.Name,
		Nutriscore: product.Nutriscore,
		Ecoscore:   product.Ecoscore,
		Category:   product.Category,
	}
}

func toProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

// Search resolves a barcode to a product. A product served from the local
// cache answers 200; one fetched from the external catalog during this
// request answers 201.
func (h *ProductHandler) Search(c echo.Context) error {
	barcode := c.QueryParam("barcode")

	output, err := h.uc.Search(c.Request().Context(), barcode)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	message := "Product found"
	if output.Created {
		status = http.StatusCreated
		message = "Product fetched and cached"
	}

	return response.Success(c, status, toProductView(output.Product), message)
}
