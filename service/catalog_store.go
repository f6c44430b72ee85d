package service

import (
	"context"
	"sync"

	"catalogo-iluminacao/logging"
	"catalogo-iluminacao/models"
)

// CatalogStore owns the catalog state and wires the loader to the photo resolver.
// Every replacement of the product list bumps the generation; photo tables resolved
// for an older generation are discarded instead of published.
type CatalogStore struct {
	loader   CatalogLoaderInterface
	resolver PhotoResolverInterface
	sheetURL string

	mu        sync.RWMutex
	state     models.CatalogState
	photosGen uint64 // generation the published photo table belongs to
	inflight  int
}

// NewCatalogStore creates a store showing the demo catalog until Activate succeeds
func NewCatalogStore(loader CatalogLoaderInterface, resolver PhotoResolverInterface, sheetURL string) *CatalogStore {
	return &CatalogStore{
		loader:   loader,
		resolver: resolver,
		sheetURL: sheetURL,
		state: models.CatalogState{
			Products:   DemoProducts(),
			Photos:     map[string]models.PhotoSet{},
			UsedDemo:   true,
			Source:     models.SourceDemo,
			Generation: 1,
		},
	}
}

// Snapshot returns a copy of the current state
func (s *CatalogStore) Snapshot() models.CatalogState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	snap.Products = cloneProducts(s.state.Products)
	snap.Photos = make(map[string]models.PhotoSet, len(s.state.Photos))
	for k, v := range s.state.Photos {
		snap.Photos[k] = v
	}
	return snap
}

// Activate loads the catalog and resolves photos for every list it publishes.
// Photos for the list active at call time are resolved alongside the loader,
// so the demo catalog gets its thumbnails even when no sheet is reachable.
// Activate returns once all passes it started have settled.
func (s *CatalogStore) Activate(ctx context.Context) {
	s.mu.Lock()
	s.inflight++
	s.state.Loading = true
	pending := s.photosGen != s.state.Generation
	gen, products := s.state.Generation, cloneProducts(s.state.Products)
	s.mu.Unlock()

	var wg sync.WaitGroup
	if pending {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.onProductsChanged(ctx, gen, products)
		}()
	}

	result := s.loader.LoadCatalog(ctx, s.sheetURL)
	if changed, gen, products := s.applyLoadResult(result); changed {
		s.onProductsChanged(ctx, gen, products)
	}
	wg.Wait()
}

// applyLoadResult publishes the loader outcome and reports whether the product list changed
func (s *CatalogStore) applyLoadResult(result LoadResult) (bool, uint64, []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--
	s.state.Loading = s.inflight > 0

	if result.UseDemo() {
		s.state.Error = result.Error
		if s.state.Error == "" {
			s.state.Error = DemoFallbackMessage
		}
		if s.state.UsedDemo {
			return false, 0, nil
		}
		// A previously loaded sheet is dropped so the error always comes with demo data
		s.state.UsedDemo = true
		s.state.Source = models.SourceDemo
		s.replaceProducts(DemoProducts())
		return true, s.state.Generation, cloneProducts(s.state.Products)
	}

	s.state.Error = ""
	s.state.UsedDemo = false
	s.state.Source = result.Source
	s.replaceProducts(result.Products)
	return true, s.state.Generation, cloneProducts(s.state.Products)
}

// replaceProducts swaps the list wholesale and clears photos of the previous list. Caller holds mu.
func (s *CatalogStore) replaceProducts(products []models.Product) {
	if products == nil {
		products = []models.Product{}
	}
	s.state.Products = products
	s.state.Photos = map[string]models.PhotoSet{}
	s.state.Generation++
}

// onProductsChanged runs a full photo pass for the list of generation gen
func (s *CatalogStore) onProductsChanged(ctx context.Context, gen uint64, products []models.Product) {
	logging.L().Debugf("🔄 Resolving photos for %d products (generation %d)", len(products), gen)
	table := s.resolver.ResolvePhotos(ctx, products)
	s.applyPhotos(gen, table)
}

// applyPhotos publishes table unless a newer product list has been published meanwhile
func (s *CatalogStore) applyPhotos(gen uint64, table map[string]models.PhotoSet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.state.Generation {
		logging.L().Infof("⏭️  Discarding photos of stale generation %d (current %d)", gen, s.state.Generation)
		return false
	}
	if table == nil {
		table = map[string]models.PhotoSet{}
	}
	s.state.Photos = table
	s.photosGen = gen
	return true
}

func cloneProducts(products []models.Product) []models.Product {
	if products == nil {
		return nil
	}
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
