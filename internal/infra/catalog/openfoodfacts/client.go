// Package openfoodfacts implements the ProductCatalog port against the
// Open Food Facts HTTP API (https://wiki.openfoodfacts.org/API).
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ecoscan/config"
	deliverycontext "ecoscan/internal/delivery/context"
	"ecoscan/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://world.openfoodfacts.org"
	defaultTimeout = 10 * time.Second

	// Defaults substituted when the provider omits a field.
	defaultName     = "name unavailable"
	defaultGrade    = "n/a"
	defaultCategory = "category unavailable"
)

// productResponse mirrors the provider's document: a status flag plus a
// nested product object. Only the fields we map are declared.
type productResponse struct {
	Status  int `json:"status"`
	Product *struct {
		Code            string `json:"code"`
		ProductName     string `json:"product_name"`
		NutriscoreGrade string `json:"nutriscore_grade"`
		EcoscoreGrade   string `json:"ecoscore_grade"`
		Categories      string `json:"categories"`
	} `json:"product"`
}

// Client queries Open Food Facts by barcode.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New is the constructor for Client. Base URL and timeout come from config
// when present, so tests can point the client at a local stub server.
func New(cfg *config.Config, logger *slog.Logger) service.ProductCatalog {
	baseURL := defaultBaseURL
	timeout := defaultTimeout
	if cfg != nil && cfg.Catalog != nil {
		if cfg.Catalog.BaseURL != "" {
			baseURL = cfg.Catalog.BaseURL
		}
		if cfg.Catalog.Timeout > 0 {
			timeout = cfg.Catalog.Timeout
		}
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// Fetch performs a single GET against the provider and maps the nested
// response into the flat CatalogProduct shape. All provider-side failure
// modes (unknown item, connectivity error, bad payload) collapse to
// (nil, nil) with a logged diagnostic; no retry is attempted.
func (c *Client) Fetch(ctx context.Context, barcode string) (*service.CatalogProduct, error) {
	if barcode == "" {
		return nil, errors.New("barcode must not be empty")
	}

	log := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("Catalog request failed", slog.String("barcode", barcode), slog.Any("error", err))

		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("Catalog returned non-OK status", slog.String("barcode", barcode), slog.Int("status", resp.StatusCode))

		return nil, nil
	}

	var doc productResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		log.Warn("Failed to decode catalog response", slog.String("barcode", barcode), slog.Any("error", err))

		return nil, nil
	}

	if doc.Status != 1 || doc.Product == nil {
		log.Debug("Catalog has no record for barcode", slog.String("barcode", barcode))

		return nil, nil
	}

	return mapProduct(barcode, &doc), nil
}

// mapProduct flattens the provider document, applying the documented
// defaults for absent fields. The category keeps only the first
// comma-separated segment, trimmed.
func mapProduct(barcode string, doc *productResponse) *service.CatalogProduct {
	p := doc.Product

	code := p.Code
	if code == "" {
		code = barcode
	}

	name := p.ProductName
	if name == "" {
		name = defaultName
	}

	nutriscore := p.NutriscoreGrade
	if nutriscore == "" {
		nutriscore = defaultGrade
	}

	ecoscore := p.EcoscoreGrade
	if ecoscore == "" {
		ecoscore = defaultGrade
	}

	category := defaultCategory
	if p.Categories != "" {
		category = strings.TrimSpace(strings.SplitN(p.Categories, ",", 2)[0])
	}

	return &service.CatalogProduct{
		Barcode:    code,
		Name:       name,
		Nutriscore: nutriscore,
		Ecoscore:   ecoscore,
		Category:   category,
	}
}
