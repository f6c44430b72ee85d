package service

import (
	"catalogo-iluminacao/models"
	"catalogo-iluminacao/utils"
)

// Expand hint labels
const (
	HintCollapsed = "▶ Mais detalhes"
	HintExpanded  = "▼ Menos detalhes"
)

// Thumb is one photo thumbnail under a card
type Thumb struct {
	URL string
	Alt string
}

// CardView holds everything the template needs for one product card
type CardView struct {
	Index          int
	Key            string
	Name           string
	Alt            string
	ImageURL       string
	Category       string
	Description    string
	Specifications string // only set when the card is expanded
	Expanded       bool
	ExpandHint     string
	ToggleHref     string
	Thumbs         []Thumb
}

// PageView is the data passed to the catalog template
type PageView struct {
	Error    string
	UsedDemo bool
	Loading  bool
	Cards    []CardView
}

// BuildPageView combines the catalog state with the per-card expanded flags.
// When the state carries an error no cards are built: the page shows only the error.
func BuildPageView(state models.CatalogState, expanded models.ExpandState, path string) PageView {
	if state.Error != "" {
		return PageView{Error: state.Error}
	}

	view := PageView{
		UsedDemo: state.UsedDemo,
		Loading:  state.Loading,
		Cards:    make([]CardView, 0, len(state.Products)),
	}
	for idx, p := range state.Products {
		view.Cards = append(view.Cards, buildCard(idx, p, state.Photos, expanded, path))
	}
	return view
}

func buildCard(idx int, p models.Product, photos map[string]models.PhotoSet, expanded models.ExpandState, path string) CardView {
	key := utils.ProductKey(p)
	card := CardView{
		Index:       idx,
		Key:         key,
		Name:        p.Name,
		Alt:         p.Name,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Description: p.Description,
		Expanded:    expanded.IsExpanded(idx),
		ToggleHref:  expanded.Toggle(idx).Href(path),
	}
	if card.ImageURL == "" {
		card.ImageURL = utils.NoImageURL
	}
	if card.Alt == "" {
		card.Alt = "Produto"
	}

	card.ExpandHint = HintCollapsed
	if card.Expanded {
		card.ExpandHint = HintExpanded
		card.Specifications = p.Specifications
	}

	if set, ok := photos[key]; ok {
		card.Thumbs = thumbsFor(set)
	}
	return card
}

func thumbsFor(set models.PhotoSet) []Thumb {
	var thumbs []Thumb
	if set.WhiteBackground != "" {
		thumbs = append(thumbs, Thumb{URL: set.WhiteBackground, Alt: "fundo branco"})
	}
	if set.Ambient != "" {
		thumbs = append(thumbs, Thumb{URL: set.Ambient, Alt: "ambient"})
	}
	if set.Measures != "" {
		thumbs = append(thumbs, Thumb{URL: set.Measures, Alt: "medidas"})
	}
	return thumbs
}
