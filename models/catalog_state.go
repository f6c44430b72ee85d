package models

// CatalogSource records where the current product list came from
type CatalogSource string

const (
	SourceDemo     CatalogSource = "demo"
	SourcePrimary  CatalogSource = "primary"
	SourceFallback CatalogSource = "fallback"
)

// CatalogState is the view's state bundle.
// Error non-empty implies Products is the demo list and UsedDemo is true.
// Photos only holds keys of the current Products.
type CatalogState struct {
	Products   []Product           `json:"products"`
	Photos     map[string]PhotoSet `json:"photos"`
	Loading    bool                `json:"loading"`
	Error      string              `json:"error,omitempty"`
	UsedDemo   bool                `json:"usedDemo"`
	Source     CatalogSource       `json:"source"`
	Generation uint64              `json:"generation"` // bumped whenever Products is replaced
}

// DriveImage is an image file found in a shared Drive folder
type DriveImage struct {
	FileID string `json:"fileId"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

// ProductImages is the response of GET /catalog/produtos/{codigo}/imagens
type ProductImages struct {
	Code   string       `json:"codigo"`
	Images []DriveImage `json:"imagens"`
}
