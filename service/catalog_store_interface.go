package service

import (
	"context"

	"catalogo-iluminacao/models"
)

// CatalogLoaderInterface defines the contract for obtaining the product list
type CatalogLoaderInterface interface {
	// LoadCatalog never fails: when every endpoint is unreachable the result asks for demo data
	LoadCatalog(ctx context.Context, sheetRef string) LoadResult
}

// PhotoResolverInterface defines the contract for resolving photo sets
type PhotoResolverInterface interface {
	// ResolvePhotos returns one entry per product key, substituting placeholders on failure
	ResolvePhotos(ctx context.Context, products []models.Product) map[string]models.PhotoSet
}
