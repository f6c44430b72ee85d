package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/models"
	"catalogo-iluminacao/utils"
)

const photosPath = "/catalog/photos"

// PhotoResolver looks up the photo set of every product concurrently
// Implements PhotoResolverInterface
type PhotoResolver struct {
	client   *http.Client
	baseURL  string
	shareURL string
}

// NewPhotoResolver creates a new PhotoResolver querying baseURL for photos of shareURL
func NewPhotoResolver(client *http.Client, baseURL, shareURL string) *PhotoResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &PhotoResolver{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		shareURL: shareURL,
	}
}

// Ensure PhotoResolver implements PhotoResolverInterface
var _ PhotoResolverInterface = (*PhotoResolver)(nil)

// ResolvePhotos fires one lookup per product and returns only after all of them settle.
// A failed lookup yields that product's placeholder set and never affects the others.
func (r *PhotoResolver) ResolvePhotos(ctx context.Context, products []models.Product) map[string]models.PhotoSet {
	results := make([]models.PhotoSet, len(products))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range products {
		i, key := i, utils.ProductKey(p)
		g.Go(func() error {
			results[i] = r.resolveOne(gctx, key)
			return nil
		})
	}
	_ = g.Wait()

	table := make(map[string]models.PhotoSet, len(products))
	for i, p := range products {
		table[utils.ProductKey(p)] = results[i]
	}
	return table
}

func (r *PhotoResolver) resolveOne(ctx context.Context, key string) models.PhotoSet {
	set, err := r.fetchPhotoSet(ctx, key)
	if err != nil {
		logging.L().Warnf("⚠️  Photo lookup for %q failed, using placeholders: %v", key, err)
		return utils.PlaceholderPhotoSet(key)
	}
	return set
}

func (r *PhotoResolver) fetchPhotoSet(ctx context.Context, key string) (models.PhotoSet, error) {
	q := url.Values{}
	q.Set("shareUrl", r.shareURL)
	q.Set("code", key)
	endpoint := r.baseURL + photosPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.PhotoSet{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return models.PhotoSet{}, fmt.Errorf("failed to fetch photos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return models.PhotoSet{}, fmt.Errorf("photos endpoint returned status %d", resp.StatusCode)
	}

	var set models.PhotoSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return models.PhotoSet{}, fmt.Errorf("failed to decode photo set: %w", err)
	}
	return set, nil
}
