package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo-iluminacao/models"
	"catalogo-iluminacao/utils"
)

func demoState() models.CatalogState {
	return models.CatalogState{
		Products: DemoProducts(),
		Photos:   map[string]models.PhotoSet{},
		UsedDemo: true,
		Source:   models.SourceDemo,
	}
}

func renderPage(t *testing.T, view PageView) *goquery.Document {
	t.Helper()
	svc, err := NewCatalogService("http://127.0.0.1:8080", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.RenderCatalogHTML(&buf, view))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestBuildPageViewErrorHidesCards(t *testing.T) {
	state := demoState()
	state.Error = DemoFallbackMessage

	view := BuildPageView(state, models.ExpandState{}, "/")

	assert.Equal(t, DemoFallbackMessage, view.Error)
	assert.Empty(t, view.Cards)
	assert.False(t, view.UsedDemo)
}

func TestBuildPageViewCardDefaults(t *testing.T) {
	state := models.CatalogState{Products: []models.Product{{ID: "5"}}}

	view := BuildPageView(state, models.ExpandState{}, "/")

	require.Len(t, view.Cards, 1)
	card := view.Cards[0]
	assert.Equal(t, "5", card.Key)
	assert.Equal(t, utils.NoImageURL, card.ImageURL)
	assert.Equal(t, "Produto", card.Alt)
	assert.Equal(t, HintCollapsed, card.ExpandHint)
	assert.Equal(t, "/?open=0", card.ToggleHref)
	assert.Nil(t, card.Thumbs)
}

func TestBuildPageViewExpandedCard(t *testing.T) {
	view := BuildPageView(demoState(), models.ExpandState{2: true}, "/")

	require.Len(t, view.Cards, len(DemoProducts()))
	expanded := view.Cards[2]
	assert.True(t, expanded.Expanded)
	assert.Equal(t, HintExpanded, expanded.ExpandHint)
	assert.Equal(t, DemoProducts()[2].Specifications, expanded.Specifications)
	assert.Equal(t, "/", expanded.ToggleHref, "toggling the only open card collapses it")

	collapsed := view.Cards[0]
	assert.Empty(t, collapsed.Specifications)
	assert.Equal(t, "/?open=0&open=2", collapsed.ToggleHref)
}

func TestBuildPageViewThumbsSkipMissingVariants(t *testing.T) {
	state := demoState()
	state.Photos["1"] = models.PhotoSet{WhiteBackground: "w", Measures: "m"}

	view := BuildPageView(state, models.ExpandState{}, "/")

	assert.Equal(t, []Thumb{{URL: "w", Alt: "fundo branco"}, {URL: "m", Alt: "medidas"}}, view.Cards[0].Thumbs)
	assert.Nil(t, view.Cards[1].Thumbs, "no entry means no thumbnails")
}

func TestRenderErrorOnly(t *testing.T) {
	state := demoState()
	state.Error = DemoFallbackMessage

	doc := renderPage(t, BuildPageView(state, models.ExpandState{}, "/"))

	assert.Equal(t, "Erro: "+DemoFallbackMessage, strings.TrimSpace(doc.Find("#catalog-error").Text()))
	assert.Zero(t, doc.Find(".product-card").Length())
	assert.Zero(t, doc.Find(".product-list").Length())
	assert.Zero(t, doc.Find(".demo-banner").Length())
}

func TestRenderDemoWithPlaceholderPhotos(t *testing.T) {
	state := demoState()
	state.Photos["3"] = utils.PlaceholderPhotoSet("3")

	doc := renderPage(t, BuildPageView(state, models.ExpandState{}, "/"))

	assert.Equal(t, 1, doc.Find(".demo-banner").Length())
	assert.Equal(t, len(DemoProducts()), doc.Find(".product-card").Length())

	card := doc.Find(`.product-card[data-key="3"]`)
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "Pendente Industrial Edison", card.Find("h3").Text())

	var srcs []string
	card.Find(".photo-thumbs img").Each(func(_ int, img *goquery.Selection) {
		srcs = append(srcs, img.AttrOr("src", ""))
	})
	require.Len(t, srcs, 3)
	assert.Contains(t, srcs[0], "Branco+3")
	assert.Contains(t, srcs[1], "Ambient+3")
	assert.Contains(t, srcs[2], "Medidas+3")
}

func TestRenderExpandToggle(t *testing.T) {
	state := demoState()

	doc := renderPage(t, BuildPageView(state, models.ExpandState{}, "/"))
	assert.Zero(t, doc.Find(".specs").Length())
	href := doc.Find(`.product-card[data-index="1"]`).AttrOr("href", "")
	assert.Equal(t, "/?open=1", href)

	// Follow the card link: the card opens
	expanded := models.ParseExpandState([]string{"1"})
	doc = renderPage(t, BuildPageView(state, expanded, "/"))
	card := doc.Find(`.product-card[data-index="1"]`)
	assert.True(t, card.HasClass("expanded"))
	assert.Equal(t, DemoProducts()[1].Specifications, card.Find(".specs").Text())
	assert.Equal(t, HintExpanded, card.Find(".expand-hint").Text())
	assert.Equal(t, 1, doc.Find(".specs").Length(), "other cards stay collapsed")

	// Follow it again: back to the original state
	doc = renderPage(t, BuildPageView(state, expanded.Toggle(1), "/"))
	card = doc.Find(`.product-card[data-index="1"]`)
	assert.False(t, card.HasClass("expanded"))
	assert.Zero(t, doc.Find(".specs").Length())
	assert.Equal(t, HintCollapsed, card.Find(".expand-hint").Text())
}

func TestRenderExpandedCardWithoutSpecs(t *testing.T) {
	state := models.CatalogState{Products: []models.Product{{Code: "S1", Name: "Sem specs"}}}

	doc := renderPage(t, BuildPageView(state, models.ExpandState{0: true}, "/"))

	assert.Zero(t, doc.Find(".specs").Length())
	assert.Equal(t, HintExpanded, doc.Find(".expand-hint").Text())
}

func TestRenderEmptyCatalog(t *testing.T) {
	state := models.CatalogState{Products: []models.Product{}, Source: models.SourcePrimary}

	doc := renderPage(t, BuildPageView(state, models.ExpandState{}, "/"))

	assert.Zero(t, doc.Find(".product-card").Length())
	assert.Zero(t, doc.Find("#catalog-error").Length())
	assert.Zero(t, doc.Find(".demo-banner").Length())
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, IsValidFormat(FormatPDF))
	assert.True(t, IsValidFormat(FormatPNG))
	assert.False(t, IsValidFormat("docx"))
}
