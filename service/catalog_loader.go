package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/models"
)

// DemoFallbackMessage is shown when neither catalog endpoint answered
const DemoFallbackMessage = "Unable to load sheet; showing demo data."

const sheetPath = "/catalog/sheet"

// LoadResult is the outcome of one LoadCatalog call.
// Products is nil when the caller should keep its demo list.
type LoadResult struct {
	Products []models.Product
	Source   models.CatalogSource
	Error    string
}

// UseDemo reports whether every endpoint failed
func (r LoadResult) UseDemo() bool {
	return r.Source == models.SourceDemo
}

// CatalogLoader fetches the product list, probing the same-origin endpoint first
// and the fixed fallback origin second
// Implements CatalogLoaderInterface
type CatalogLoader struct {
	client          *http.Client
	primaryBaseURL  string
	fallbackBaseURL string
}

// NewCatalogLoader creates a new CatalogLoader
func NewCatalogLoader(client *http.Client, primaryBaseURL, fallbackBaseURL string) *CatalogLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &CatalogLoader{
		client:          client,
		primaryBaseURL:  strings.TrimRight(primaryBaseURL, "/"),
		fallbackBaseURL: strings.TrimRight(fallbackBaseURL, "/"),
	}
}

// Ensure CatalogLoader implements CatalogLoaderInterface
var _ CatalogLoaderInterface = (*CatalogLoader)(nil)

// LoadCatalog tries the primary endpoint, then the fallback one, strictly in that order
func (l *CatalogLoader) LoadCatalog(ctx context.Context, sheetRef string) LoadResult {
	attempts := []struct {
		source models.CatalogSource
		base   string
	}{
		{models.SourcePrimary, l.primaryBaseURL},
		{models.SourceFallback, l.fallbackBaseURL},
	}

	for _, attempt := range attempts {
		products, err := l.fetchSheet(ctx, attempt.base, sheetRef)
		if err != nil {
			logging.L().Warnf("⚠️  Catalog load from %s endpoint failed: %v", attempt.source, err)
			continue
		}
		logging.L().Infof("✓ Loaded %d products from %s endpoint", len(products), attempt.source)
		return LoadResult{Products: products, Source: attempt.source}
	}

	logging.L().Errorf("❌ All catalog endpoints failed, keeping demo data")
	return LoadResult{Source: models.SourceDemo, Error: DemoFallbackMessage}
}

func (l *CatalogLoader) fetchSheet(ctx context.Context, base, sheetRef string) ([]models.Product, error) {
	endpoint := base + sheetPath + "?" + url.Values{"url": {sheetRef}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("sheet endpoint returned status %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode sheet rows: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
