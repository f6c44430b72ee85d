package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo-iluminacao/models"
	"catalogo-iluminacao/utils"
)

// fakeLoader returns queued results, repeating the last one
type fakeLoader struct {
	mu      sync.Mutex
	results []LoadResult
	calls   int
	gate    chan struct{} // when set, LoadCatalog blocks until it is closed
}

func (f *fakeLoader) LoadCatalog(ctx context.Context, sheetRef string) LoadResult {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	f.calls++
	return f.results[idx]
}

// fakeResolver tags each photo set with the product key
type fakeResolver struct {
	mu    sync.Mutex
	lists [][]models.Product
}

func (f *fakeResolver) ResolvePhotos(ctx context.Context, products []models.Product) map[string]models.PhotoSet {
	f.mu.Lock()
	f.lists = append(f.lists, products)
	f.mu.Unlock()

	table := make(map[string]models.PhotoSet, len(products))
	for _, p := range products {
		key := utils.ProductKey(p)
		table[key] = models.PhotoSet{WhiteBackground: "w-" + key}
	}
	return table
}

func photoKeys(state models.CatalogState) []string {
	keys := make([]string, 0, len(state.Photos))
	for k := range state.Photos {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func productKeys(products []models.Product) []string {
	keys := make([]string, 0, len(products))
	for _, p := range products {
		keys = append(keys, utils.ProductKey(p))
	}
	sort.Strings(keys)
	return keys
}

var loadedProducts = []models.Product{
	{ID: "10", Code: "LP-10", Name: "Abajur Linho"},
	{ID: "11", Code: "LP-11", Name: "Spot Trilho"},
}

func TestCatalogStoreInitialState(t *testing.T) {
	store := NewCatalogStore(&fakeLoader{}, &fakeResolver{}, testSheetRef)
	state := store.Snapshot()

	assert.True(t, state.UsedDemo)
	assert.Empty(t, state.Error)
	assert.False(t, state.Loading)
	assert.Equal(t, models.SourceDemo, state.Source)
	assert.Equal(t, DemoProducts(), state.Products)
	assert.Empty(t, state.Photos)
}

func TestCatalogStoreActivateSuccess(t *testing.T) {
	loader := &fakeLoader{results: []LoadResult{{Products: loadedProducts, Source: models.SourcePrimary}}}
	store := NewCatalogStore(loader, &fakeResolver{}, testSheetRef)

	store.Activate(testContext(t))
	state := store.Snapshot()

	assert.False(t, state.UsedDemo)
	assert.Empty(t, state.Error)
	assert.False(t, state.Loading)
	assert.Equal(t, models.SourcePrimary, state.Source)
	assert.Equal(t, loadedProducts, state.Products)
	assert.Equal(t, productKeys(loadedProducts), photoKeys(state), "demo photos must not leak into the loaded catalog")
	assert.Equal(t, "w-LP-10", state.Photos["LP-10"].WhiteBackground)
}

func TestCatalogStoreActivateFailureKeepsDemo(t *testing.T) {
	loader := &fakeLoader{results: []LoadResult{{Source: models.SourceDemo, Error: DemoFallbackMessage}}}
	resolver := &fakeResolver{}
	store := NewCatalogStore(loader, resolver, testSheetRef)

	store.Activate(testContext(t))
	state := store.Snapshot()

	assert.True(t, state.UsedDemo)
	assert.Equal(t, DemoFallbackMessage, state.Error)
	assert.Equal(t, DemoProducts(), state.Products)
	assert.Equal(t, productKeys(DemoProducts()), photoKeys(state), "demo catalog still gets its photos")
	assert.Len(t, resolver.lists, 1)
}

func TestCatalogStoreFailedReloadResetsToDemo(t *testing.T) {
	loader := &fakeLoader{results: []LoadResult{
		{Products: loadedProducts, Source: models.SourcePrimary},
		{Source: models.SourceDemo, Error: DemoFallbackMessage},
	}}
	store := NewCatalogStore(loader, &fakeResolver{}, testSheetRef)

	store.Activate(testContext(t))
	loadedGen := store.Snapshot().Generation

	store.Activate(testContext(t))
	state := store.Snapshot()

	assert.True(t, state.UsedDemo)
	assert.Equal(t, DemoFallbackMessage, state.Error)
	assert.Equal(t, DemoProducts(), state.Products)
	assert.Greater(t, state.Generation, loadedGen)
	assert.Equal(t, productKeys(DemoProducts()), photoKeys(state))
}

func TestCatalogStoreSuccessfulReloadClearsError(t *testing.T) {
	loader := &fakeLoader{results: []LoadResult{
		{Source: models.SourceDemo, Error: DemoFallbackMessage},
		{Products: loadedProducts, Source: models.SourceFallback},
	}}
	store := NewCatalogStore(loader, &fakeResolver{}, testSheetRef)

	store.Activate(testContext(t))
	require.NotEmpty(t, store.Snapshot().Error)

	store.Activate(testContext(t))
	state := store.Snapshot()
	assert.Empty(t, state.Error)
	assert.False(t, state.UsedDemo)
	assert.Equal(t, models.SourceFallback, state.Source)
}

func TestCatalogStoreEmptySheet(t *testing.T) {
	loader := &fakeLoader{results: []LoadResult{{Products: []models.Product{}, Source: models.SourcePrimary}}}
	store := NewCatalogStore(loader, &fakeResolver{}, testSheetRef)

	store.Activate(testContext(t))
	state := store.Snapshot()

	assert.Empty(t, state.Error)
	assert.False(t, state.UsedDemo)
	assert.NotNil(t, state.Products)
	assert.Empty(t, state.Products)
	assert.Empty(t, state.Photos)
}

func TestCatalogStoreDiscardsStalePhotos(t *testing.T) {
	loader := &fakeLoader{results: []LoadResult{{Products: loadedProducts, Source: models.SourcePrimary}}}
	store := NewCatalogStore(loader, &fakeResolver{}, testSheetRef)

	staleGen := store.Snapshot().Generation
	store.Activate(testContext(t))
	before := store.Snapshot()

	applied := store.applyPhotos(staleGen, map[string]models.PhotoSet{"1": {Ambient: "stale"}})

	assert.False(t, applied)
	assert.Equal(t, before.Photos, store.Snapshot().Photos)
}

func TestCatalogStoreLoadingFlag(t *testing.T) {
	gate := make(chan struct{})
	loader := &fakeLoader{
		results: []LoadResult{{Products: loadedProducts, Source: models.SourcePrimary}},
		gate:    gate,
	}
	store := NewCatalogStore(loader, &fakeResolver{}, testSheetRef)

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.Activate(context.Background())
	}()

	require.Eventually(t, func() bool { return store.Snapshot().Loading }, time.Second, 5*time.Millisecond)
	assert.True(t, store.Snapshot().UsedDemo, "demo stays visible while loading")

	close(gate)
	<-done
	assert.False(t, store.Snapshot().Loading)
}

func TestCatalogStoreSnapshotIsIsolated(t *testing.T) {
	store := NewCatalogStore(&fakeLoader{results: []LoadResult{{Source: models.SourceDemo}}}, &fakeResolver{}, testSheetRef)
	store.Activate(testContext(t))

	snap := store.Snapshot()
	snap.Products[0].Name = "changed"
	snap.Photos["1"] = models.PhotoSet{}

	fresh := store.Snapshot()
	assert.Equal(t, DemoProducts()[0].Name, fresh.Products[0].Name)
	assert.Equal(t, "w-1", fresh.Photos["1"].WhiteBackground)
}
